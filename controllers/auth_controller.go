package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"iptv-backend/middleware"
	"iptv-backend/services"
	"iptv-backend/utils"
)

type AuthController struct {
	auth   *services.AuthService
	tokens *services.TokenService
	resets *services.ResetService
}

func NewAuthController(auth *services.AuthService, tokens *services.TokenService, resets *services.ResetService) *AuthController {
	return &AuthController{auth: auth, tokens: tokens, resets: resets}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type changeEmailPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPayload struct {
	Email string `json:"email"`
}

type resetPayload struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	admin, err := ac.auth.Login(payload.Email, payload.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	token, err := ac.tokens.Generate(admin.ID, admin.Email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{"id": admin.ID, "email": admin.Email},
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	identity, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.RespondError(c, utils.ErrMissingToken)
		return
	}

	admin, err := ac.auth.GetByID(identity.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admin)
}

func (ac *AuthController) ChangePassword(c *gin.Context) {
	identity, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.RespondError(c, utils.ErrMissingToken)
		return
	}

	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ac.auth.ChangePassword(identity.ID, payload.CurrentPassword, payload.NewPassword); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "password updated"})
}

func (ac *AuthController) ChangeEmail(c *gin.Context) {
	identity, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.RespondError(c, utils.ErrMissingToken)
		return
	}

	var payload changeEmailPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	admin, err := ac.auth.ChangeEmail(identity.ID, payload.Email, payload.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admin)
}

// ForgotPassword always answers with the same generic message so the
// response never reveals whether an account exists.
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var payload forgotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email required")
		return
	}

	if err := ac.resets.RequestReset(email); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "If this email exists, a reset link was sent."})
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var payload resetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ac.resets.CompleteReset(payload.Token, payload.Password); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "password has been reset"})
}
