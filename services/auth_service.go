package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"iptv-backend/models"
	"iptv-backend/utils"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Login verifies the credential pair and returns the matching admin.
// Unknown email and wrong password produce the same error so the response
// never reveals whether an account exists.
func (s *AuthService) Login(email, password string) (*models.Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, utils.NewValidationError("email", "password")
	}

	var admin models.Admin
	if err := s.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, utils.ErrInvalidCredentials
	}
	return &admin, nil
}

func (s *AuthService) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// ChangePassword re-hashes after verifying the current password.
func (s *AuthService) ChangePassword(adminID uint, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return utils.NewValidationError("new_password")
	}

	var admin models.Admin
	if err := s.db.First(&admin, adminID).Error; err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(currentPassword)) != nil {
		return utils.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&admin).Update("password", string(hash)).Error
}

// ChangeEmail requires the current password; duplicate emails surface as a
// conflict through the unique index.
func (s *AuthService) ChangeEmail(adminID uint, newEmail, password string) (*models.Admin, error) {
	newEmail = strings.TrimSpace(strings.ToLower(newEmail))
	if newEmail == "" || !strings.Contains(newEmail, "@") {
		return nil, utils.NewValidationError("email")
	}

	var admin models.Admin
	if err := s.db.First(&admin, adminID).Error; err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := s.db.Model(&admin).Update("email", newEmail).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.NewConflictError("email '%s' is already in use", newEmail)
		}
		return nil, err
	}
	admin.Email = newEmail
	return &admin, nil
}
