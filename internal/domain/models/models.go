package models

import (
	"time"
)

// MinPasswordLength is enforced on registration by both the desktop client and the backend.
const MinPasswordLength = 6

type (
	User struct {
		ID           int64  // Уникальный идентификатор
		Username     string // уникален в рамках хранилища
		PasswordHash string // bcrypt, никогда не отдается клиенту
		CreatedAt    time.Time
	}

	// Shortcut is a desktop icon owned by one user account.
	Shortcut struct {
		ID           int64
		UserID       int64
		Name         string
		Icon         string
		Action       string // open-window, open-url, open-app или пусто
		ActionParams []byte // непрозрачный JSON, сервер его не разбирает
		PositionX    int
		PositionY    int
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}
)
