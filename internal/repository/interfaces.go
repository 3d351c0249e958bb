package repository

import (
	"context"
	"webdesktop/internal/domain/models"
)

// Storage - основной интерфейс хранилища пользователей и ярлыков
type (
	Storage interface {
		// Пользователи
		UserCreate(ctx context.Context, user models.User) (models.User, error)
		UserGetByUsername(ctx context.Context, username string) (models.User, error)
		UserGetByID(ctx context.Context, id int64) (models.User, error)

		// Ярлыки, всегда в рамках одного пользователя
		ShortcutCreate(ctx context.Context, s models.Shortcut) (models.Shortcut, error)
		ShortcutListByUser(ctx context.Context, userID int64) ([]models.Shortcut, error)
		ShortcutUpdate(ctx context.Context, s models.Shortcut) (models.Shortcut, error)
		ShortcutDelete(ctx context.Context, userID, id int64) error

		// Управление соединением
		Ping(ctx context.Context) error
		Close() error
	}
)
