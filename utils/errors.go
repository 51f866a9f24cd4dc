package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Sentinel errors used by services; controllers map them to HTTP statuses
// through RespondError.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOrExpired   = errors.New("invalid or expired token")
	ErrMissingToken       = errors.New("missing token")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrFileTooLarge       = errors.New("file too large")
)

// ValidationError reports the request fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid field(s): " + strings.Join(e.Fields, ", ")
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ConflictError reports a duplicate unique key (slug, email, tab name, ...).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsDuplicateKey reports whether err is the storage layer's unique-constraint
// violation, for MySQL and for the sqlite dialect used in tests.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// RespondError translates a service error into the JSON error envelope.
func RespondError(c *gin.Context, err error) {
	var vErr *ValidationError
	var cErr *ConflictError

	switch {
	case errors.As(err, &vErr):
		JSONError(c, http.StatusBadRequest, vErr.Error())
	case errors.As(err, &cErr):
		JSONError(c, http.StatusBadRequest, cErr.Error())
	case errors.Is(err, ErrInvalidOrExpired):
		JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnsupportedMedia), errors.Is(err, ErrFileTooLarge):
		JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrExpiredToken),
		errors.Is(err, ErrInvalidToken):
		JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		JSONError(c, http.StatusNotFound, ErrNotFound.Error())
	default:
		if gin.Mode() != gin.ReleaseMode {
			JSONError(c, http.StatusInternalServerError, "internal error: "+err.Error())
			return
		}
		JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
