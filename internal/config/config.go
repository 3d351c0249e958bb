package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	envServerAddress   = "SERVER_ADDRESS"
	envDatabaseDSN     = "DATABASE_DSN"
	envJWTSecretKey    = "JWT_SECRET_KEY"
	envJWTAccessExpire = "JWT_ACCESS_EXPIRE"
	envLogLevel        = "LOG_LEVEL"
)

const (
	defaultServerAddress   = "localhost:3000"
	defaultDatabaseDSN     = "webdesktop.db"
	defaultJWTAccessExpire = time.Hour
	defaultLogLevel        = "info"
	minJWTSecretBytes      = 32
)

// DSNMemory selects the in-memory repository.
const DSNMemory = "memory"

type StorageKind int

const (
	StorageSQLite StorageKind = iota
	StoragePostgres
	StorageMemory
)

type Config struct {
	ServerAddress   string
	DatabaseDSN     string
	JWTSecretKey    string // base64, минимум 32 байта после декодирования
	JWTAccessExpire time.Duration
	LogLevel        string

	// выставляется, если ключ сгенерирован автоматически
	GeneratedSecret bool
}

// NewConfig собирает конфиг: значения по умолчанию, затем флаги, затем переменные окружения.
func NewConfig(args []string) (*Config, error) {
	cfg := &Config{
		ServerAddress:   defaultServerAddress,
		DatabaseDSN:     defaultDatabaseDSN,
		JWTAccessExpire: defaultJWTAccessExpire,
		LogLevel:        defaultLogLevel,
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Server address")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Database DSN: postgres://..., memory or sqlite file path")
	fs.StringVar(&cfg.JWTSecretKey, "jwt-secret", cfg.JWTSecretKey, "JWT secret key (base64)")
	fs.DurationVar(&cfg.JWTAccessExpire, "jwt-access-expire", cfg.JWTAccessExpire, "JWT access token expiration")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	applyEnv(envServerAddress, &cfg.ServerAddress)
	applyEnv(envDatabaseDSN, &cfg.DatabaseDSN)
	applyEnv(envJWTSecretKey, &cfg.JWTSecretKey)
	applyEnv(envLogLevel, &cfg.LogLevel)
	if err := applyEnvDuration(envJWTAccessExpire, &cfg.JWTAccessExpire); err != nil {
		return nil, err
	}

	if err := cfg.validateJWTSecret(); err != nil {
		return nil, err
	}
	if cfg.JWTAccessExpire <= 0 {
		return nil, fmt.Errorf("JWT access expiration must be positive, got %s", cfg.JWTAccessExpire)
	}
	cfg.normalizeServerAddress()

	return cfg, nil
}

// StorageKind определяет хранилище по схеме DSN.
func (c *Config) StorageKind() StorageKind {
	dsn := strings.TrimSpace(c.DatabaseDSN)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return StoragePostgres
	case dsn == DSNMemory:
		return StorageMemory
	default:
		return StorageSQLite
	}
}

func applyEnv(key string, target *string) {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		*target = val
	}
}

func applyEnvDuration(key string, target *time.Duration) error {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = d
	return nil
}

func (c *Config) validateJWTSecret() error {
	if c.JWTSecretKey == "" {
		// Generate random key for development
		key := make([]byte, minJWTSecretBytes)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("failed to generate JWT secret key: %w", err)
		}
		c.JWTSecretKey = base64.StdEncoding.EncodeToString(key)
		c.GeneratedSecret = true
		return nil
	}

	key, err := base64.StdEncoding.DecodeString(c.JWTSecretKey)
	if err != nil {
		return errors.New("JWT secret key must be base64 encoded")
	}
	if len(key) < minJWTSecretBytes {
		return fmt.Errorf("JWT secret key must be at least %d bytes long", minJWTSecretBytes)
	}
	return nil
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}
