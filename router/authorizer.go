package router

import (
	"net/http"

	"ministrysms/controllers"
	"ministrysms/models"

	"github.com/gin-gonic/gin"
)

// Authorizer blocks access to protected routes when the account is not
// approved and active.
func Authorizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := controllers.GetUserLogged(c)
		if !ok {
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}

		if user.Status == models.USER_STATUS_PENDING {
			controllers.RespondError(c, "account awaiting admin approval", http.StatusForbidden)
			c.Abort()
			return
		}
		if user.Status == models.USER_STATUS_DISABLED || !user.IsActive {
			controllers.RespondError(c, "account disabled", http.StatusForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
