package service

import (
	"strings"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-user/app/entity"
	"github.com/vibast-solutions/ms-go-user/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(ttl time.Duration) *TokenCodec {
	return NewTokenCodec(&config.Config{
		JWTSecret:       "test-secret",
		SessionTokenTTL: ttl,
	})
}

func TestTokenCodecRoundtrip(t *testing.T) {
	codec := newTestCodec(15 * time.Minute)

	token, err := codec.Issue(42, entity.UserTypeIndividual)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, entity.UserTypeIndividual, claims.UserType)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenCodecExpired(t *testing.T) {
	codec := newTestCodec(-time.Minute)

	token, err := codec.Issue(42, entity.UserTypeIndividual)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodecTampered(t *testing.T) {
	codec := newTestCodec(15 * time.Minute)

	token, err := codec.Issue(42, entity.UserTypeIndividual)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("x", len(parts[2]))

	_, err = codec.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodecWrongSecret(t *testing.T) {
	token, err := newTestCodec(15 * time.Minute).Issue(42, entity.UserTypeIndividual)
	require.NoError(t, err)

	other := NewTokenCodec(&config.Config{
		JWTSecret:       "other-secret",
		SessionTokenTTL: 15 * time.Minute,
	})
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodecMalformed(t *testing.T) {
	codec := newTestCodec(15 * time.Minute)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
