package controllers

import (
	"net/http"

	dbpkg "ministrysms/db"
	"ministrysms/models"
	"ministrysms/tools"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// SignUp creates a staff account. New accounts stay pending/inactive until
// an admin approves them; no session is issued here.
func SignUp(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	user := models.User{}
	if err := c.Bind(&user); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	missing := user.MissingFields()
	if missing != "" {
		RespondError(c, "Missing field "+missing, http.StatusBadRequest)
		return
	}

	if !tools.ValidateEmail(user.Email) {
		RespondError(c, "Invalid email address", http.StatusBadRequest)
		return
	}

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		RespondError(c, "Email already registered", http.StatusBadRequest)
		return
	}
	if err := db.Where("username = ?", user.Username).First(&existing).Error; err == nil {
		RespondError(c, "Username already taken", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, "failed to hash password", http.StatusInternalServerError)
		return
	}
	user.Password = string(hashed)

	user.Status = models.USER_STATUS_PENDING
	user.IsActive = false
	user.IsAdmin = false

	tx := db.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	user.Password = ""
	RespondSuccess(c, gin.H{
		"message":      "Account created successfully! An administrator must approve it before you can log in.",
		"user":         user,
		"redirect_url": "/accounts/login",
	})
}
