package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"iptv-backend/utils"
)

// parseIDParam reads a numeric :id path parameter; on failure it writes the
// validation error response and reports false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, utils.NewValidationError(name))
		return 0, false
	}
	return uint(id), true
}
