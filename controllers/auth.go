package controllers

import (
	"net/http"
	"time"

	dbpkg "ministrysms/db"
	"ministrysms/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Identifier string `json:"identifier" form:"identifier"`
	Password   string `json:"password" form:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login accepts username or email as identifier.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Identifier == "" || req.Password == "" {
		RespondError(c, "identifier and password are required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("username = ? OR email = ?", req.Identifier, req.Identifier).First(&user).Error; err != nil {
		RespondError(c, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		RespondError(c, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if user.Status == models.USER_STATUS_PENDING {
		RespondError(c, "Account awaiting admin approval", http.StatusForbidden)
		return
	}
	if user.Status == models.USER_STATUS_DISABLED || !user.IsActive {
		RespondError(c, "Account disabled", http.StatusForbidden)
		return
	}

	signed, err := signAccessToken(user.ID, time.Now())
	if err != nil {
		RespondError(c, "failed to sign token", http.StatusInternalServerError)
		return
	}

	user.Password = ""
	RespondSuccess(c, gin.H{
		"message":      "Logged in successfully!",
		"token":        signed,
		"user":         user,
		"redirect_url": "/smsapp/",
	})
}

// Logout exists for the frontend's sake: tokens are stateless, so there is
// no server-side session to destroy. Clients drop the token and follow the
// redirect.
func Logout(c *gin.Context) {
	RespondSuccess(c, gin.H{"redirect_url": "/accounts/login"})
}
