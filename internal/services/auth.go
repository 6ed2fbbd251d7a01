package services

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/modaiq/stylerec/internal/config"
)

// AuthService validates bearer tokens for the API group. Authentication is
// optional and off by default; the engine itself has no notion of callers
// beyond the opaque user id.
type AuthService struct {
	secret []byte
}

func NewAuthService(cfg *config.AuthConfig) *AuthService {
	return &AuthService{secret: []byte(cfg.JWTSecret)}
}

func (s *AuthService) ValidateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
