package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)
	return w
}

func TestRespondErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", NewValidationError("title"), http.StatusBadRequest},
		{"conflict", NewConflictError("duplicate slug"), http.StatusBadRequest},
		{"invalid or expired reset token", ErrInvalidOrExpired, http.StatusBadRequest},
		{"file too large", ErrFileTooLarge, http.StatusBadRequest},
		{"unsupported media", ErrUnsupportedMedia, http.StatusBadRequest},
		{"bad credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"missing token", ErrMissingToken, http.StatusUnauthorized},
		{"expired token", ErrExpiredToken, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respond(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	err := NewValidationError("tab_id", "title")
	assert.Contains(t, err.Error(), "tab_id")
	assert.Contains(t, err.Error(), "title")
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(errors.New("Error 1062: Duplicate entry 'x' for key 'slug'")))
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: blogs.slug")))
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
}
