package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"iptv-backend/models"
	"iptv-backend/utils"
)

const resetTokenTTL = time.Hour

// ResetMailer lets tests swap out the SMTP dispatch.
type ResetMailer func(recipientEmail, resetLink string) error

type ResetService struct {
	db          *gorm.DB
	frontendURL string
	mailer      ResetMailer
}

func NewResetService(db *gorm.DB, frontendURL string, mailer ResetMailer) *ResetService {
	if mailer == nil {
		mailer = utils.SendPasswordResetEmail
	}
	return &ResetService{db: db, frontendURL: frontendURL, mailer: mailer}
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// RequestReset issues a token for a known email and stays silent about
// unknown ones. The caller returns a generic message either way.
func (s *ResetService) RequestReset(email string) error {
	if email == "" {
		return utils.NewValidationError("email")
	}

	var admin models.Admin
	if err := s.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := generateTokenHex(32)
	if err != nil {
		return err
	}

	row := models.PasswordResetToken{
		Email:     admin.Email,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
		Used:      false,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return err
	}

	link := fmt.Sprintf("%s/admin/reset-password?token=%s", s.frontendURL, token)
	return s.mailer(admin.Email, link)
}

// CompleteReset consumes the token and overwrites the admin's hash in one
// transaction, so a token can never succeed twice.
func (s *ResetService) CompleteReset(token, newPassword string) error {
	if token == "" {
		return utils.ErrInvalidOrExpired
	}
	if len(newPassword) < 8 {
		return utils.NewValidationError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var row models.PasswordResetToken
		err := tx.Where("token = ? AND used = ? AND expires_at > ?", token, false, time.Now()).
			First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrInvalidOrExpired
			}
			return err
		}

		var admin models.Admin
		if err := tx.Where("email = ?", row.Email).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrInvalidOrExpired
			}
			return err
		}

		if err := tx.Model(&admin).Update("password", string(hash)).Error; err != nil {
			return err
		}
		return tx.Model(&row).Update("used", true).Error
	})
}
