package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/vibast-solutions/ms-go-user/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every session token failure: bad signature,
// malformed payload, expiry. Callers get a single kind so the response does
// not reveal which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

type SessionClaims struct {
	UserID   uint64 `json:"userId"`
	UserType string `json:"type"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies self-contained session tokens. There is no
// server-side session store; a token cannot be revoked before its expiry.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(cfg *config.Config) *TokenCodec {
	return &TokenCodec{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.SessionTokenTTL,
	}
}

func (c *TokenCodec) Issue(userID uint64, userType string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *TokenCodec) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
