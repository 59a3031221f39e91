package controllers

import (
	"net/http"
	"strings"
	"time"

	dbpkg "ministrysms/db"
	"ministrysms/models"
	"ministrysms/tools"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GET /smsapp/
// Dashboard data: categories, the last 20 dispatch logs, and the gateway
// balance for admins.
func Dashboard(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var categories []models.Category
	if err := db.Order("name asc").Find(&categories).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var logs []models.SMSLog
	if err := db.Order("sent_at desc").Limit(20).Find(&logs).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	payload := gin.H{
		"categories": categories,
		"sms_logs":   logs,
	}
	if user.IsAdmin {
		payload["balance"] = celcomClient().GetBalance(c.Request.Context())
	}

	RespondSuccess(c, payload)
}

type broadcastRequest struct {
	Category   string   `json:"category"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

// POST /smsapp/
// Sends one broadcast and always writes an SMSLog row once input validation
// passes, whatever the gateway said. Gateway failures are data in the
// response ({"status": "error", ...}), never a 5xx.
func SendBroadcast(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data"})
		return
	}

	if strings.TrimSpace(req.Category) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Please select a category."})
		return
	}
	if len(req.Recipients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Please select at least one recipient."})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Message cannot be empty."})
		return
	}

	result := celcomClient().SendSMS(c.Request.Context(), req.Message, req.Recipients, conf.Sms.SenderID)

	status := result.Status
	if status == "" {
		status = models.SMS_STATUS_UNKNOWN
	}

	now := time.Now()
	senderID := user.ID
	entry := models.SMSLog{
		MessageID:  uuid.NewString(),
		SenderID:   &senderID,
		Recipients: strings.Join(req.Recipients, ", "),
		Message:    req.Message,
		Status:     status,
		SentAt:     &now,
	}
	if err := db.Create(&entry).Error; err != nil {
		// the broadcast already happened; log the miss and keep going
		tools.Log().Error("failed to persist SMS log",
			zap.String("message_id", entry.MessageID),
			zap.Error(err),
		)
	}

	message := result.Message
	if message == "" {
		message = "SMS sent successfully"
	}

	c.JSON(http.StatusOK, gin.H{"status": status, "message": message})
}

// GET /smsapp/check-balance (admin)
func CheckBalance(c *gin.Context) {
	result := celcomClient().GetBalance(c.Request.Context())
	RespondSuccess(c, gin.H{"balance": result})
}
