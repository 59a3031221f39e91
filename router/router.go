package router

import (
	"ministrysms/controllers"
	"ministrysms/middleware"
	"ministrysms/tools"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares at composition time:
// public account routes, authenticated smsapp routes, and admin routes.
func Initialize(r *gin.Engine) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Accounts (public)
	accounts := r.Group("/accounts")
	accounts.POST("/signup", Logger(), controllers.SignUp)
	accounts.POST("/login", Logger(), controllers.Login)
	accounts.GET("/logout", Logger(), controllers.Logout)
	accounts.POST("/reset-pin", Logger(), controllers.RequestPinReset)
	accounts.POST("/verify-pin", Logger(), controllers.VerifyPin)
	accounts.POST("/set-new-password", Logger(), controllers.SetNewPassword)

	// Accounts (admin moderation)
	moderation := accounts.Group("")
	moderation.Use(controllers.AuthRequired())
	moderation.Use(Authorizer())
	moderation.Use(Adminizer())
	moderation.POST("/user-status", Logger(), controllers.UserStatus)
	moderation.GET("/admin-users-list", Logger(), controllers.AdminUsersList)

	// SMS app (token required + active account)
	smsapp := r.Group("/smsapp")
	smsapp.Use(controllers.AuthRequired())
	smsapp.Use(Authorizer())
	smsapp.GET("/", Logger(), controllers.Dashboard)
	smsapp.POST("/", Logger(), controllers.SendBroadcast)
	smsapp.GET("/get_pastors", Logger(), controllers.GetPastors)

	// SMS app (admin)
	admin := smsapp.Group("")
	admin.Use(Adminizer())
	admin.POST("/upload", Logger(), controllers.UploadContacts)
	admin.GET("/check-balance", Logger(), controllers.CheckBalance)

	tools.Log().Info("routes initialized")
}
