package shortcuts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"webdesktop/internal/domain/models"
)

//go:generate mockgen -source=shortcuts.go -destination=../../mocks/mock_shortcut_storage.go -package=mocks
type ShortcutStorage interface {
	ShortcutCreate(ctx context.Context, s models.Shortcut) (models.Shortcut, error)
	ShortcutListByUser(ctx context.Context, userID int64) ([]models.Shortcut, error)
	ShortcutUpdate(ctx context.Context, s models.Shortcut) (models.Shortcut, error)
	ShortcutDelete(ctx context.Context, userID, id int64) error
	Ping(ctx context.Context) error
}

// Service реализует бизнес-логику ярлыков рабочего стола. Все операции ограничены владельцем.
type Service struct {
	storage ShortcutStorage
	now     func() time.Time
}

func NewService(storage ShortcutStorage) *Service {
	return &Service{
		storage: storage,
		now:     time.Now,
	}
}

func (s *Service) List(ctx context.Context, userID int64) ([]models.Shortcut, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID: %d", models.ErrInvalidData, userID)
	}

	list, err := s.storage.ShortcutListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortcuts: %w", err)
	}
	return list, nil
}

func (s *Service) Create(ctx context.Context, sc models.Shortcut) (models.Shortcut, error) {
	if err := validate(sc); err != nil {
		return models.Shortcut{}, err
	}

	now := s.now().UTC()
	sc.ID = 0
	sc.CreatedAt = now
	sc.UpdatedAt = now

	created, err := s.storage.ShortcutCreate(ctx, sc)
	if err != nil {
		return models.Shortcut{}, fmt.Errorf("failed to create shortcut: %w", err)
	}
	return created, nil
}

// Update replaces every mutable field of the shortcut; ErrUnfound when it is missing or foreign.
func (s *Service) Update(ctx context.Context, sc models.Shortcut) (models.Shortcut, error) {
	if sc.ID <= 0 {
		return models.Shortcut{}, fmt.Errorf("%w: invalid shortcut ID: %d", models.ErrInvalidData, sc.ID)
	}
	if err := validate(sc); err != nil {
		return models.Shortcut{}, err
	}

	sc.UpdatedAt = s.now().UTC()

	updated, err := s.storage.ShortcutUpdate(ctx, sc)
	if err != nil {
		return models.Shortcut{}, fmt.Errorf("failed to update shortcut: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if userID <= 0 || id <= 0 {
		return fmt.Errorf("%w: invalid shortcut ID: %d", models.ErrInvalidData, id)
	}

	if err := s.storage.ShortcutDelete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete shortcut: %w", err)
	}
	return nil
}

// PingDataBase проверяет соединение с хранилищем
func (s *Service) PingDataBase(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func validate(sc models.Shortcut) error {
	if sc.UserID <= 0 {
		return fmt.Errorf("%w: invalid user ID: %d", models.ErrInvalidData, sc.UserID)
	}
	if strings.TrimSpace(sc.Name) == "" {
		return fmt.Errorf("%w: name is required", models.ErrInvalidData)
	}
	// Параметры действия хранятся как есть, но это должен быть JSON, иначе их не отдать клиенту
	if len(sc.ActionParams) > 0 && !json.Valid(sc.ActionParams) {
		return fmt.Errorf("%w: action_params must be valid JSON", models.ErrInvalidData)
	}
	return nil
}
