package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/repository/dto"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	storagePingTimeout = 5 * time.Second
	// SQLite serialises writers anyway; one connection also keeps ":memory:" databases shared.
	storageMaxOpenConnections = 1
)

type SQLiteStorage struct {
	db *sql.DB
}

// NewStorage opens (or creates) the database file at path and applies the schema.
func NewStorage(ctx context.Context, path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(storageMaxOpenConnections)

	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`PRAGMA foreign_keys = ON`,
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS shortcuts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users (id),
			name TEXT NOT NULL,
			icon TEXT,
			action TEXT NOT NULL DEFAULT '',
			action_params TEXT,
			position_x INTEGER NOT NULL DEFAULT 0,
			position_y INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS shortcuts_user_id_idx ON shortcuts (user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if user.Username == "" || user.PasswordHash == "" {
		return models.User{}, models.ErrInvalidData
	}

	row := dto.UserDBFromDomain(user)
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password, created_at) VALUES (?, ?, ?)",
		row.Username, row.Password, row.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("%w: username %q", models.ErrConflict, user.Username)
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user id: %w", err)
	}
	row.ID = id
	return dto.UserDBToDomain(row), nil
}

func (s *SQLiteStorage) UserGetByUsername(ctx context.Context, username string) (models.User, error) {
	return s.getUser(ctx, "SELECT id, username, password, created_at FROM users WHERE username = ?", username)
}

func (s *SQLiteStorage) UserGetByID(ctx context.Context, id int64) (models.User, error) {
	return s.getUser(ctx, "SELECT id, username, password, created_at FROM users WHERE id = ?", id)
}

func (s *SQLiteStorage) getUser(ctx context.Context, query string, arg any) (models.User, error) {
	var row dto.UserDB
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&row.ID, &row.Username, &row.Password, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: user", models.ErrUnfound)
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return dto.UserDBToDomain(row), nil
}

func (s *SQLiteStorage) ShortcutCreate(ctx context.Context, sc models.Shortcut) (models.Shortcut, error) {
	row := dto.ShortcutDBFromDomain(sc)
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO shortcuts (user_id, name, icon, action, action_params, position_x, position_y, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.UserID, row.Name, row.Icon, row.Action, row.ActionParams,
		row.PositionX, row.PositionY, row.CreatedAt.UTC(), row.UpdatedAt.UTC(),
	)
	if err != nil {
		return models.Shortcut{}, fmt.Errorf("failed to insert shortcut: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Shortcut{}, fmt.Errorf("failed to get shortcut id: %w", err)
	}
	return s.getShortcut(ctx, sc.UserID, id)
}

func (s *SQLiteStorage) getShortcut(ctx context.Context, userID, id int64) (models.Shortcut, error) {
	row, err := dto.ScanShortcut(s.db.QueryRowContext(ctx,
		"SELECT "+dto.ShortcutColumns+" FROM shortcuts WHERE id = ? AND user_id = ?",
		id, userID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Shortcut{}, fmt.Errorf("%w: shortcut %d", models.ErrUnfound, id)
		}
		return models.Shortcut{}, fmt.Errorf("failed to get shortcut: %w", err)
	}
	return dto.ShortcutDBToDomain(row), nil
}

func (s *SQLiteStorage) ShortcutListByUser(ctx context.Context, userID int64) ([]models.Shortcut, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+dto.ShortcutColumns+" FROM shortcuts WHERE user_id = ? ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query shortcuts: %w", err)
	}
	defer rows.Close()

	result := make([]models.Shortcut, 0)
	for rows.Next() {
		row, err := dto.ScanShortcut(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shortcut: %w", err)
		}
		result = append(result, dto.ShortcutDBToDomain(row))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return result, nil
}

func (s *SQLiteStorage) ShortcutUpdate(ctx context.Context, sc models.Shortcut) (models.Shortcut, error) {
	row := dto.ShortcutDBFromDomain(sc)
	res, err := s.db.ExecContext(ctx, `
		UPDATE shortcuts
		SET name = ?, icon = ?, action = ?, action_params = ?, position_x = ?, position_y = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		row.Name, row.Icon, row.Action, row.ActionParams, row.PositionX, row.PositionY, row.UpdatedAt.UTC(),
		row.ID, row.UserID,
	)
	if err != nil {
		return models.Shortcut{}, fmt.Errorf("failed to update shortcut: %w", err)
	}

	if err := requireAffected(res, sc.ID); err != nil {
		return models.Shortcut{}, err
	}
	return s.getShortcut(ctx, sc.UserID, sc.ID)
}

func (s *SQLiteStorage) ShortcutDelete(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM shortcuts WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete shortcut: %w", err)
	}
	return requireAffected(res, id)
}

func requireAffected(res sql.Result, id int64) error {
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: shortcut %d", models.ErrUnfound, id)
	}
	return nil
}

func (s *SQLiteStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
