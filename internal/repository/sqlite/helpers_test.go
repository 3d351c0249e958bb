package sqlite

import (
	"time"
	"webdesktop/internal/domain/models"
)

func testUser(name string) models.User {
	return models.User{Username: name, PasswordHash: "hash", CreatedAt: time.Now().UTC()}
}
