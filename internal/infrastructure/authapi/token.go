package authapi

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

// TokenVerifier validates tokens issued by the auth service without a round
// trip: the services share an HS256 secret, so expiry and identity claims
// can be checked locally during session hydration.
type TokenVerifier struct {
	secret string
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: secret}
}

// Verify parses and validates the token, returning the embedded profile.
func (v *TokenVerifier) Verify(token string) (*domain.Profile, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(v.secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("invalid token: missing subject")
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return &domain.Profile{ID: sub, Name: name, Email: email}, nil
}
