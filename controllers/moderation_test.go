package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"ministrysms/config"
	"ministrysms/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB, r *gin.Engine) string {
	t.Helper()
	createUser(t, db, "admin", "admin@example.com", "secret1", models.USER_STATUS_APPROVED, true, true)
	return loginToken(t, r, "admin", "secret1")
}

func TestApproveActivatesAccount(t *testing.T) {
	db, r := newTestServer(t, config.Configuration{})
	admin := seedAdmin(t, db, r)
	target := createUser(t, db, "pending", "pending@example.com", "secret1", models.USER_STATUS_PENDING, false, false)

	w := doJSON(t, r, http.MethodPost, "/accounts/user-status", gin.H{
		"user_id": target.ID, "action": "approve",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("approve: status %d body %s", w.Code, w.Body.String())
	}

	var updated models.User
	if err := db.First(&updated, target.ID).Error; err != nil {
		t.Fatalf("reload target: %v", err)
	}
	if updated.Status != models.USER_STATUS_APPROVED || !updated.IsActive {
		t.Errorf("after approve: status=%d active=%v, want approved/active", updated.Status, updated.IsActive)
	}

	loginToken(t, r, "pending", "secret1")
}

func TestDisableAdminIsProtected(t *testing.T) {
	db, r := newTestServer(t, config.Configuration{})
	admin := seedAdmin(t, db, r)
	other := createUser(t, db, "admin2", "admin2@example.com", "secret1", models.USER_STATUS_APPROVED, true, true)

	w := doJSON(t, r, http.MethodPost, "/accounts/user-status", gin.H{
		"user_id": other.ID, "action": "disable",
	}, admin)
	if w.Code != http.StatusForbidden {
		t.Fatalf("disable admin: status %d, want 403", w.Code)
	}

	var unchanged models.User
	if err := db.First(&unchanged, other.ID).Error; err != nil {
		t.Fatalf("reload target: %v", err)
	}
	if unchanged.Status != models.USER_STATUS_APPROVED || !unchanged.IsActive {
		t.Error("protected admin account state must not change")
	}
}

func TestDisableRegularAccount(t *testing.T) {
	db, r := newTestServer(t, config.Configuration{})
	admin := seedAdmin(t, db, r)
	target := createUser(t, db, "member", "member@example.com", "secret1", models.USER_STATUS_APPROVED, true, false)

	w := doJSON(t, r, http.MethodPost, "/accounts/user-status", gin.H{
		"user_id": target.ID, "action": "disable",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("disable: status %d body %s", w.Code, w.Body.String())
	}

	var updated models.User
	db.First(&updated, target.ID)
	if updated.Status != models.USER_STATUS_DISABLED || updated.IsActive {
		t.Errorf("after disable: status=%d active=%v, want disabled/inactive", updated.Status, updated.IsActive)
	}
}

func TestRejectDeletesAccountAndKeepsLogs(t *testing.T) {
	db, r := newTestServer(t, config.Configuration{})
	admin := seedAdmin(t, db, r)
	target := createUser(t, db, "reject", "reject@example.com", "secret1", models.USER_STATUS_PENDING, false, false)

	now := time.Now()
	senderID := target.ID
	log := models.SMSLog{
		MessageID:  "test-msg-1",
		SenderID:   &senderID,
		Recipients: "0700111222",
		Message:    "hello",
		Status:     models.SMS_STATUS_OK,
		SentAt:     &now,
	}
	if err := db.Create(&log).Error; err != nil {
		t.Fatalf("seed log: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/accounts/user-status", gin.H{
		"user_id": target.ID, "action": "reject",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("reject: status %d body %s", w.Code, w.Body.String())
	}

	var gone models.User
	if err := db.First(&gone, target.ID).Error; !gorm.IsRecordNotFoundError(err) {
		t.Errorf("rejected account should be hard-deleted, got err=%v", err)
	}

	var kept models.SMSLog
	if err := db.First(&kept, log.ID).Error; err != nil {
		t.Fatalf("audit log must survive: %v", err)
	}
	if kept.SenderID != nil {
		t.Error("log sender_id should be nulled on account deletion")
	}
}

func TestModerationRequiresAdmin(t *testing.T) {
	db, r := newTestServer(t, config.Configuration{})
	createUser(t, db, "plain", "plain@example.com", "secret1", models.USER_STATUS_APPROVED, true, false)
	token := loginToken(t, r, "plain", "secret1")

	w := doJSON(t, r, http.MethodPost, "/accounts/user-status", gin.H{
		"user_id": 1, "action": "approve",
	}, token)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-admin moderation: status = %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/accounts/admin-users-list", nil, token)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-admin list: status = %d, want 403", w.Code)
	}
}

func TestModerationUnknownTargetAndAction(t *testing.T) {
	db, r := newTestServer(t, config.Configuration{})
	admin := seedAdmin(t, db, r)

	w := doJSON(t, r, http.MethodPost, "/accounts/user-status", gin.H{
		"user_id": 9999, "action": "approve",
	}, admin)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown target: status = %d, want 404", w.Code)
	}

	target := createUser(t, db, "x", "x@example.com", "secret1", models.USER_STATUS_PENDING, false, false)
	w = doJSON(t, r, http.MethodPost, "/accounts/user-status", gin.H{
		"user_id": target.ID, "action": "explode",
	}, admin)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown action: status = %d, want 400", w.Code)
	}
}

func TestAdminUsersList(t *testing.T) {
	db, r := newTestServer(t, config.Configuration{})
	admin := seedAdmin(t, db, r)
	createUser(t, db, "one", "one@example.com", "secret1", models.USER_STATUS_PENDING, false, false)
	createUser(t, db, "two", "two@example.com", "secret1", models.USER_STATUS_DISABLED, false, false)

	w := doJSON(t, r, http.MethodGet, "/accounts/admin-users-list", nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d body %s", w.Code, w.Body.String())
	}
	out := decodeJSON(t, w)
	users, _ := out["users"].([]any)
	if len(users) != 3 {
		t.Fatalf("users = %d, want 3", len(users))
	}
	first, _ := users[0].(map[string]any)
	if first["username"] != "admin" || first["status"] != "approved" {
		t.Errorf("first row = %v, want admin/approved", first)
	}
}
