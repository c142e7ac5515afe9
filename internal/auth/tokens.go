// Package auth выпускает и проверяет сессионные токены и хэши паролей.
package auth

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const issuer = "team-member-service"

var ErrInvalidToken = errors.New("invalid token")

// Claims — полезная нагрузка сессионного токена.
type Claims struct {
	UserID string `json:"user_id"`
	jwtlib.RegisteredClaims
}

// Tokens подписывает и разбирает HS256 токены.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue выпускает токен для пользователя и возвращает время его истечения.
func (t *Tokens) Issue(userID string) (string, time.Time, error) {
	now := t.now().UTC()
	expires := now.Add(t.ttl)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expires),
		},
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Parse проверяет подпись, срок действия и издателя и возвращает user_id.
func (t *Tokens) Parse(token string) (string, error) {
	parsed, err := jwtlib.ParseWithClaims(token, &Claims{}, func(*jwtlib.Token) (any, error) {
		return t.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}),
		jwtlib.WithIssuer(issuer),
		jwtlib.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
