// Package auth parses access tokens issued by the platform's external
// authentication service. Token issuing, registration and credential
// storage live outside this core; only verification happens here.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"staffhub_backend/internal/config"
	"staffhub_backend/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims carried by the access token: the acting party's ID and role.
type Claims struct {
	ActorID string          `json:"actor_id"`
	Role    models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// ParseToken verifies the signature and expiry of an access token.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.GetConfig().JWT.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// NewToken signs a token for the given actor. Used by tests and local
// tooling; production tokens come from the auth service with the same
// shared secret.
func NewToken(actorID string, role models.UserRole, ttl time.Duration) (string, error) {
	claims := &Claims{
		ActorID: actorID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetConfig().JWT.Secret))
}
