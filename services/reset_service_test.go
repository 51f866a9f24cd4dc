package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iptv-backend/models"
	"iptv-backend/utils"
)

type mailRecorder struct {
	to    []string
	links []string
}

func (m *mailRecorder) send(recipientEmail, resetLink string) error {
	m.to = append(m.to, recipientEmail)
	m.links = append(m.links, resetLink)
	return nil
}

func TestRequestReset(t *testing.T) {
	db := openTestDB(t)
	seedAdmin(t, db, "admin@iptv.local", "secret-pass")
	mails := &mailRecorder{}
	svc := NewResetService(db, "https://example.com", mails.send)

	t.Run("known email issues a token and sends mail", func(t *testing.T) {
		require.NoError(t, svc.RequestReset("admin@iptv.local"))

		var row models.PasswordResetToken
		require.NoError(t, db.Where("email = ?", "admin@iptv.local").First(&row).Error)
		assert.False(t, row.Used)
		assert.True(t, row.ExpiresAt.After(time.Now()))
		assert.Len(t, row.Token, 64)

		require.Len(t, mails.to, 1)
		assert.Equal(t, "admin@iptv.local", mails.to[0])
		assert.Contains(t, mails.links[0], row.Token)
	})

	t.Run("unknown email is silently accepted", func(t *testing.T) {
		require.NoError(t, svc.RequestReset("ghost@iptv.local"))

		var count int64
		db.Model(&models.PasswordResetToken{}).Where("email = ?", "ghost@iptv.local").Count(&count)
		assert.Zero(t, count)
		assert.Len(t, mails.to, 1) // no new mail
	})
}

func TestCompleteReset(t *testing.T) {
	db := openTestDB(t)
	seedAdmin(t, db, "admin@iptv.local", "old-password")
	mails := &mailRecorder{}
	svc := NewResetService(db, "https://example.com", mails.send)
	auth := NewAuthService(db)

	require.NoError(t, svc.RequestReset("admin@iptv.local"))
	var row models.PasswordResetToken
	require.NoError(t, db.First(&row).Error)

	t.Run("consumes the token exactly once", func(t *testing.T) {
		require.NoError(t, svc.CompleteReset(row.Token, "brand-new-pass"))

		_, err := auth.Login("admin@iptv.local", "brand-new-pass")
		assert.NoError(t, err)

		// second use always fails
		err = svc.CompleteReset(row.Token, "another-pass")
		assert.ErrorIs(t, err, utils.ErrInvalidOrExpired)
	})

	t.Run("expired token fails even when unused", func(t *testing.T) {
		expired := models.PasswordResetToken{
			Email:     "admin@iptv.local",
			Token:     "deadbeef",
			ExpiresAt: time.Now().Add(-time.Minute),
			Used:      false,
		}
		require.NoError(t, db.Create(&expired).Error)

		err := svc.CompleteReset("deadbeef", "whatever-pass")
		assert.ErrorIs(t, err, utils.ErrInvalidOrExpired)
	})

	t.Run("unknown token fails", func(t *testing.T) {
		err := svc.CompleteReset("no-such-token", "whatever-pass")
		assert.ErrorIs(t, err, utils.ErrInvalidOrExpired)
	})

	t.Run("short password rejected before lookup", func(t *testing.T) {
		err := svc.CompleteReset(row.Token, "short")
		var vErr *utils.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}
