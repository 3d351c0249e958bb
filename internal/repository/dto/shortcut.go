package dto

import (
	"database/sql"
	"time"
	"webdesktop/internal/domain/models"
)

// ShortcutDB mirrors a row of the shortcuts table; icon and action_params are nullable.
type ShortcutDB struct {
	ID           int64          `db:"id"`
	UserID       int64          `db:"user_id"`
	Name         string         `db:"name"`
	Icon         sql.NullString `db:"icon"`
	Action       string         `db:"action"`
	ActionParams sql.NullString `db:"action_params"`
	PositionX    int            `db:"position_x"`
	PositionY    int            `db:"position_y"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ShortcutColumns is the column list ScanShortcut expects, in order.
const ShortcutColumns = "id, user_id, name, icon, action, action_params, position_x, position_y, created_at, updated_at"

func ScanShortcut(s Scanner) (ShortcutDB, error) {
	var row ShortcutDB
	err := s.Scan(
		&row.ID, &row.UserID, &row.Name, &row.Icon, &row.Action, &row.ActionParams,
		&row.PositionX, &row.PositionY, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

func ShortcutDBToDomain(s ShortcutDB) models.Shortcut {
	sc := models.Shortcut{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		Icon:      s.Icon.String,
		Action:    s.Action,
		PositionX: s.PositionX,
		PositionY: s.PositionY,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.ActionParams.Valid && s.ActionParams.String != "" {
		sc.ActionParams = []byte(s.ActionParams.String)
	}
	return sc
}

func ShortcutDBFromDomain(s models.Shortcut) ShortcutDB {
	return ShortcutDB{
		ID:           s.ID,
		UserID:       s.UserID,
		Name:         s.Name,
		Icon:         sql.NullString{String: s.Icon, Valid: s.Icon != ""},
		Action:       s.Action,
		ActionParams: sql.NullString{String: string(s.ActionParams), Valid: len(s.ActionParams) > 0},
		PositionX:    s.PositionX,
		PositionY:    s.PositionY,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
