package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	dbpkg "ministrysms/db"
	"ministrysms/models"
	"ministrysms/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// POST /accounts/reset-pin (public)
// Body: { "email": "..." }
// Generates a 6-digit code, stores its hash and mails it to the account.
// An unknown email is reported as such (kept from the original flow).
func RequestPinReset(c *gin.Context) {
	type Request struct {
		Email string `json:"email" form:"email"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		RespondError(c, "email is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, "Email not found", http.StatusNotFound)
		return
	}

	code := tools.RandomNumbers(6)
	reset := models.PinReset{
		UserID:   user.ID,
		CodeHash: tools.EncryptTextSHA512(code),
	}
	if err := db.Create(&reset).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if err := mailer().SendPinCode(user.Email, code); err != nil {
		tools.Log().Error("pin reset mail failed",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		RespondError(c, "Failed to send reset code", http.StatusBadGateway)
		return
	}

	RespondSuccess(c, gin.H{
		"message":      fmt.Sprintf("6-digit code sent to %s", user.Email),
		"redirect_url": "/accounts/verify-pin",
	})
}

// POST /accounts/verify-pin (public)
// Body: { "code": "123456" }
// A matching unverified code inside the 10-minute window is consumed
// (verified flips true) and a short-lived reset token is returned; that
// token is the password-reset subject for set-new-password.
// An expired code is NOT marked verified.
func VerifyPin(c *gin.Context) {
	type Request struct {
		Code string `json:"code" form:"code"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.Code = strings.TrimSpace(req.Code)
	if req.Code == "" {
		RespondError(c, "code is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	codeHash := tools.EncryptTextSHA512(req.Code)

	var pin models.PinReset
	if err := db.
		Where("code_hash = ? AND verified = ?", codeHash, false).
		Order("id desc").
		First(&pin).Error; err != nil {
		RespondError(c, "Invalid code", http.StatusBadRequest)
		return
	}

	if pin.IsExpired(time.Now()) {
		RespondError(c, "Code expired", http.StatusBadRequest)
		return
	}

	if err := db.Model(&pin).Update("verified", true).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	resetToken, err := signResetToken(pin.UserID, pin.ID, time.Now())
	if err != nil {
		RespondError(c, "failed to sign reset token", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"message":      "Code verified! You can now reset your password.",
		"reset_token":  resetToken,
		"redirect_url": "/accounts/set-new-password",
	})
}

// POST /accounts/set-new-password (public)
// Body: { "reset_token": "...", "new_password": "..." }
// Requires the reset token issued by verify-pin; without a valid one there
// is no pending reset for this caller.
func SetNewPassword(c *gin.Context) {
	type Request struct {
		ResetToken  string `json:"reset_token" form:"reset_token"`
		NewPassword string `json:"new_password" form:"new_password"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.ResetToken = strings.TrimSpace(req.ResetToken)
	req.NewPassword = strings.TrimSpace(req.NewPassword)

	if req.ResetToken == "" {
		RespondError(c, "No pending password reset", http.StatusForbidden)
		return
	}
	if tools.CheckPassword(req.NewPassword) != "" {
		RespondError(c, "Password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	claims, err := parseToken(req.ResetToken)
	if err != nil {
		RespondError(c, "No pending password reset", http.StatusForbidden)
		return
	}
	if purpose, _ := claims["purpose"].(string); purpose != resetTokenPurpose {
		RespondError(c, "No pending password reset", http.StatusForbidden)
		return
	}
	userID, ok := claimUserID(claims)
	if !ok {
		RespondError(c, "No pending password reset", http.StatusForbidden)
		return
	}
	pinID, ok := claimPinID(claims)
	if !ok {
		RespondError(c, "No pending password reset", http.StatusForbidden)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	// The verified row the token was issued for must still exist; it is
	// deleted below, so a reset token only works once.
	var pin models.PinReset
	if err := db.
		Where("id = ? AND user_id = ? AND verified = ?", pinID, userID, true).
		First(&pin).Error; err != nil {
		RespondError(c, "No pending password reset", http.StatusForbidden)
		return
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		RespondError(c, "user not found", http.StatusNotFound)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, "failed to hash password", http.StatusInternalServerError)
		return
	}

	tx := db.Begin()
	if err := tx.Model(&user).Update("password", string(hashed)).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Where("user_id = ?", userID).Delete(models.PinReset{}).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	tx.Commit()

	RespondSuccess(c, gin.H{
		"message":      "Password reset successfully!",
		"redirect_url": "/accounts/login",
	})
}
