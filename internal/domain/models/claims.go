package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// TokenClaims is the payload of the bearer token: {id, username} plus expiry.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}
