package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/repository/dto"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	storageMaxOpenConnections     = 5
	storageMaxIdleConnections     = 2
	storageConnectionsMaxIdleTime = 2 * time.Minute
	storageConnectionsLifetime    = 30 * time.Minute
	storagePingTimeout            = 5 * time.Second
)

const (
	pgErrCodeUniqueViolation = "23505"
)

type PostgresStorage struct {
	db *sql.DB
}

func NewStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	initConnectionPools(db)

	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := &PostgresStorage{db: db}
	if err := p.WithinTx(ctx, p.createTables); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return p, nil
}

func initConnectionPools(db *sql.DB) {
	db.SetMaxOpenConns(storageMaxOpenConnections)
	db.SetMaxIdleConns(storageMaxIdleConnections)
	db.SetConnMaxIdleTime(storageConnectionsMaxIdleTime)
	db.SetConnMaxLifetime(storageConnectionsLifetime)
}

// createTables applies the schema; DDL in Postgres is transactional, so a failure leaves
// nothing half-created.
func (p *PostgresStorage) createTables(ctx context.Context) error {
	db := p.conn(ctx)
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS shortcuts (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id),
			name TEXT NOT NULL,
			icon TEXT,
			action TEXT NOT NULL DEFAULT '',
			action_params TEXT,
			position_x INTEGER NOT NULL DEFAULT 0,
			position_y INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create shortcuts table: %w", err)
	}

	_, err = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS shortcuts_user_id_idx ON shortcuts (user_id)`)
	if err != nil {
		return fmt.Errorf("failed to create shortcuts index: %w", err)
	}
	return nil
}

func (p *PostgresStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if user.Username == "" || user.PasswordHash == "" {
		return models.User{}, models.ErrInvalidData
	}

	row := dto.UserDBFromDomain(user)
	err := p.conn(ctx).QueryRowContext(ctx, `
		INSERT INTO users (username, password, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`,
		row.Username, row.Password, row.CreatedAt,
	).Scan(&row.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return models.User{}, fmt.Errorf("%w: username %q", models.ErrConflict, user.Username)
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return dto.UserDBToDomain(row), nil
}

func (p *PostgresStorage) UserGetByUsername(ctx context.Context, username string) (models.User, error) {
	return p.getUser(ctx, "SELECT id, username, password, created_at FROM users WHERE username = $1", username)
}

func (p *PostgresStorage) UserGetByID(ctx context.Context, id int64) (models.User, error) {
	return p.getUser(ctx, "SELECT id, username, password, created_at FROM users WHERE id = $1", id)
}

func (p *PostgresStorage) getUser(ctx context.Context, query string, arg any) (models.User, error) {
	var row dto.UserDB
	err := p.conn(ctx).QueryRowContext(ctx, query, arg).Scan(&row.ID, &row.Username, &row.Password, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: user", models.ErrUnfound)
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return dto.UserDBToDomain(row), nil
}

func (p *PostgresStorage) ShortcutCreate(ctx context.Context, s models.Shortcut) (models.Shortcut, error) {
	row := dto.ShortcutDBFromDomain(s)
	created, err := dto.ScanShortcut(p.conn(ctx).QueryRowContext(ctx, `
		INSERT INTO shortcuts (user_id, name, icon, action, action_params, position_x, position_y, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+dto.ShortcutColumns,
		row.UserID, row.Name, row.Icon, row.Action, row.ActionParams,
		row.PositionX, row.PositionY, row.CreatedAt, row.UpdatedAt,
	))
	if err != nil {
		return models.Shortcut{}, fmt.Errorf("failed to insert shortcut: %w", err)
	}
	return dto.ShortcutDBToDomain(created), nil
}

func (p *PostgresStorage) ShortcutListByUser(ctx context.Context, userID int64) ([]models.Shortcut, error) {
	rows, err := p.conn(ctx).QueryContext(ctx,
		"SELECT "+dto.ShortcutColumns+" FROM shortcuts WHERE user_id = $1 ORDER BY id",
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

func (p *PostgresStorage) ShortcutUpdate(ctx context.Context, s models.Shortcut) (models.Shortcut, error) {
	row := dto.ShortcutDBFromDomain(s)
	updated, err := dto.ScanShortcut(p.conn(ctx).QueryRowContext(ctx, `
		UPDATE shortcuts
		SET name = $1, icon = $2, action = $3, action_params = $4, position_x = $5, position_y = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
		RETURNING `+dto.ShortcutColumns,
		row.Name, row.Icon, row.Action, row.ActionParams, row.PositionX, row.PositionY, row.UpdatedAt,
		row.ID, row.UserID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Shortcut{}, fmt.Errorf("%w: shortcut %d", models.ErrUnfound, s.ID)
		}
		return models.Shortcut{}, fmt.Errorf("failed to update shortcut: %w", err)
	}
	return dto.ShortcutDBToDomain(updated), nil
}

func (p *PostgresStorage) ShortcutDelete(ctx context.Context, userID, id int64) error {
	result, err := p.conn(ctx).ExecContext(ctx,
		"DELETE FROM shortcuts WHERE id = $1 AND user_id = $2",
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete shortcut: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: shortcut %d", models.ErrUnfound, id)
	}
	return nil
}

func (p *PostgresStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
