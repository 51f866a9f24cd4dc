package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"iptv-backend/models"
	"iptv-backend/utils"
)

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := models.Admin{Email: email, Password: string(hash)}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func TestLogin(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)
	seedAdmin(t, db, "admin@iptv.local", "secret-pass")

	t.Run("valid credentials", func(t *testing.T) {
		admin, err := svc.Login("admin@iptv.local", "secret-pass")
		require.NoError(t, err)
		assert.Equal(t, "admin@iptv.local", admin.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("admin@iptv.local", "wrong")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		_, err := svc.Login("nobody@iptv.local", "secret-pass")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		_, err := svc.Login("", "")
		var vErr *utils.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestChangePassword(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)
	admin := seedAdmin(t, db, "admin@iptv.local", "old-password")

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(admin.ID, "nope", "new-password-1")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("too short new password", func(t *testing.T) {
		err := svc.ChangePassword(admin.ID, "old-password", "short")
		var vErr *utils.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(admin.ID, "old-password", "new-password-1"))

		_, err := svc.Login("admin@iptv.local", "new-password-1")
		assert.NoError(t, err)
		_, err = svc.Login("admin@iptv.local", "old-password")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}

func TestChangeEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)
	admin := seedAdmin(t, db, "admin@iptv.local", "secret-pass")
	seedAdmin(t, db, "taken@iptv.local", "other-pass")

	t.Run("requires the password", func(t *testing.T) {
		_, err := svc.ChangeEmail(admin.ID, "new@iptv.local", "wrong")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := svc.ChangeEmail(admin.ID, "not-an-email", "secret-pass")
		var vErr *utils.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.ChangeEmail(admin.ID, "taken@iptv.local", "secret-pass")
		var cErr *utils.ConflictError
		assert.ErrorAs(t, err, &cErr)
	})

	t.Run("success", func(t *testing.T) {
		updated, err := svc.ChangeEmail(admin.ID, "new@iptv.local", "secret-pass")
		require.NoError(t, err)
		assert.Equal(t, "new@iptv.local", updated.Email)
	})
}
