package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iptv-backend/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Generate(7, "admin@iptv.local")
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "admin@iptv.local", claims.Email)
}

func TestTokenExpiredIsDistinguished(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Generate(1, "admin@iptv.local")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, utils.ErrExpiredToken)
}

func TestTokenInvalid(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)

	// signed with a different secret
	other := NewTokenService("other-secret", time.Hour)
	token, err := other.Generate(1, "admin@iptv.local")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}
