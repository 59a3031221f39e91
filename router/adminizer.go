package router

import (
	"net/http"

	"ministrysms/controllers"

	"github.com/gin-gonic/gin"
)

// Adminizer blocks access when the account is not an admin. IsAdmin is the
// single capability flag checked by every admin-gated route.
func Adminizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := controllers.GetUserLogged(c)
		if !ok {
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if !user.IsAdmin {
			controllers.RespondError(c, "Admin access required.", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
