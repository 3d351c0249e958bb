package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
	"webdesktop/internal/domain/models"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=../../mocks/mock_user_storage.go -package=mocks
type UserStorage interface {
	UserCreate(ctx context.Context, user models.User) (models.User, error)
	UserGetByUsername(ctx context.Context, username string) (models.User, error)
}

var (
	ErrUserNotFound  = fmt.Errorf("%w: user not found", models.ErrUnfound)
	ErrWrongPassword = fmt.Errorf("%w: wrong password", models.ErrUnauthorized)
)

type Authentication struct {
	storage    UserStorage
	secretKey  []byte
	accessExp  time.Duration
	bcryptCost int
	now        func() time.Time
}

func NewAuthentication(userStorage UserStorage, secretKey string, accessExp time.Duration) (*Authentication, error) {
	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil || len(key) < 32 {
		return nil, fmt.Errorf("invalid JWT secret key: must be at least 32 bytes when decoded")
	}
	if accessExp <= 0 {
		return nil, fmt.Errorf("invalid JWT access expiration: %s", accessExp)
	}

	return &Authentication{
		storage:    userStorage,
		secretKey:  key,
		accessExp:  accessExp,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}, nil
}

// Register stores a new account with a bcrypt hash of the password. It does not log the user in.
func (a *Authentication) Register(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("%w: username is required", models.ErrInvalidData)
	}
	if len(password) < models.MinPasswordLength {
		return models.User{}, fmt.Errorf("%w: password must be at least %d characters", models.ErrInvalidData, models.MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.storage.UserCreate(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and issues a signed access token.
func (a *Authentication) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.storage.UserGetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrWrongPassword
	}

	token, err := a.jwtGenerate(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ParseToken validates signature and expiry and returns the identity encoded in the token.
func (a *Authentication) ParseToken(tokenString string) (models.User, error) {
	claims := &models.TokenClaims{}
	parser := jwt.Parser{}
	token, err := parser.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return a.secretKey, nil
		})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}

	if !token.Valid || claims.UserID <= 0 {
		return models.User{}, fmt.Errorf("%w: token is not valid", models.ErrUnauthorized)
	}

	return models.User{ID: claims.UserID, Username: claims.Username}, nil
}

func (a *Authentication) jwtGenerate(user models.User) (string, error) {
	now := a.now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.accessExp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   user.ID,
		Username: user.Username,
	}
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	jwtToken, err := newToken.SignedString(a.secretKey)
	if err != nil {
		return "", err
	}

	return jwtToken, nil
}
