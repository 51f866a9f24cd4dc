package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"iptv-backend/services"
	"iptv-backend/utils"
)

const identityKey = "admin_identity"

// AdminIdentity is the verified identity attached to authenticated requests.
type AdminIdentity struct {
	ID    uint
	Email string
}

// AuthRequired checks a JWT from the Authorization header or the
// admin_token cookie. Responses distinguish missing, expired and invalid
// tokens, all as 401.
func AuthRequired(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if authz := c.GetHeader("Authorization"); strings.HasPrefix(authz, "Bearer ") {
			token = strings.TrimPrefix(authz, "Bearer ")
		}
		if token == "" {
			token, _ = c.Cookie("admin_token")
		}
		if token == "" {
			utils.RespondError(c, utils.ErrMissingToken)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			utils.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(identityKey, AdminIdentity{ID: claims.AdminID, Email: claims.Email})
		c.Next()
	}
}

// CurrentAdmin returns the identity set by AuthRequired. Handlers call this
// explicitly instead of reaching into raw context values.
func CurrentAdmin(c *gin.Context) (AdminIdentity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return AdminIdentity{}, false
	}
	identity, ok := v.(AdminIdentity)
	return identity, ok
}
