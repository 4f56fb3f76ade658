package middlewares

import (
	"net/http"
	"strings"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and, when minRole is given,
// rejects callers below that tier. Ownership checks stay in the
// services; this gate is only the coarse role filter.
func AuthMiddleware(secret string, minRole ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		role, ok := entity.ParseRole(claims.Role)
		if !ok || claims.UserID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid claims"})
			c.Abort()
			return
		}

		utils.SetPrincipal(c, entity.Principal{UserID: claims.UserID, Role: role})

		if len(minRole) > 0 && !role.AtLeast(minRole[0]) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
