package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"iptv-backend/utils"
)

// AdminClaims is the identity carried by a session token.
type AdminClaims struct {
	AdminID uint   `json:"aid"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies stateless session tokens. Verification
// needs nothing but the secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Generate(adminID uint, email string) (string, error) {
	claims := AdminClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature and expiry. Expired tokens are reported as
// utils.ErrExpiredToken so callers can tell them apart from garbage.
func (s *TokenService) Parse(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, utils.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.ErrExpiredToken
		}
		return nil, utils.ErrInvalidToken
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, utils.ErrInvalidToken
	}
	return claims, nil
}
