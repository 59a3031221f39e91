package controllers

import (
	"net/http"

	dbpkg "ministrysms/db"
	"ministrysms/models"
	"ministrysms/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type userStatusRequest struct {
	UserID int64  `json:"user_id" form:"user_id"`
	Action string `json:"action" form:"action"`
}

// POST /accounts/user-status (admin)
// Actions: approve, enable, disable, reject.
// disable refuses admin targets; reject hard-deletes the account and drops
// its reference from the dispatch log.
func UserStatus(c *gin.Context) {
	acting, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req userStatusRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID <= 0 {
		RespondError(c, "user_id is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var target models.User
	if err := db.First(&target, req.UserID).Error; err != nil {
		RespondError(c, "user not found", http.StatusNotFound)
		return
	}

	switch req.Action {
	case "approve", "enable":
		if err := db.Model(&target).Updates(map[string]any{
			"status":    models.USER_STATUS_APPROVED,
			"is_active": true,
		}).Error; err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}

	case "disable":
		if target.IsAdmin {
			RespondError(c, "Cannot disable an admin account", http.StatusForbidden)
			return
		}
		if err := db.Model(&target).Updates(map[string]any{
			"status":    models.USER_STATUS_DISABLED,
			"is_active": false,
		}).Error; err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}

	case "reject":
		tx := db.Begin()
		if err := tx.Model(&models.SMSLog{}).
			Where("sender_id = ?", target.ID).
			Update("sender_id", nil).Error; err != nil {
			tx.Rollback()
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		if err := tx.Delete(&target).Error; err != nil {
			tx.Rollback()
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}

	default:
		RespondError(c, "unknown action", http.StatusBadRequest)
		return
	}

	tools.Log().Info("user moderated",
		zap.Int64("admin_id", acting.ID),
		zap.Int64("target_id", req.UserID),
		zap.String("action", req.Action),
	)

	RespondSuccess(c, gin.H{"message": "Action applied", "action": req.Action})
}

// GET /accounts/admin-users-list (admin)
func AdminUsersList(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var users []models.User
	if err := db.Order("id asc").Find(&users).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	type row struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Status   string `json:"status"`
	}
	rows := make([]row, 0, len(users))
	for _, u := range users {
		rows = append(rows, row{
			ID:       u.ID,
			Username: u.Username,
			Status:   models.StatusLabel(u.Status),
		})
	}

	RespondSuccess(c, gin.H{"users": rows})
}
