package dto

import (
	"time"
	"webdesktop/internal/domain/models"
)

type (
	UserDB struct {
		ID        int64     `db:"id"`
		Username  string    `db:"username"`
		Password  string    `db:"password"`
		CreatedAt time.Time `db:"created_at"`
	}
)

func UserDBToDomain(u UserDB) models.User {
	return models.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.Password,
		CreatedAt:    u.CreatedAt,
	}
}

func UserDBFromDomain(u models.User) UserDB {
	return UserDB{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.PasswordHash,
		CreatedAt: u.CreatedAt,
	}
}
