package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"ministrysms/config"
	"ministrysms/controllers"
	dbpkg "ministrysms/db"
	"ministrysms/models"
	"ministrysms/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T, cfg config.Configuration) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	dbpkg.Migrate(database)

	controllers.SetConfiguration(cfg)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r)
	return database, r
}

func createUser(t *testing.T, db *gorm.DB, username, email, password string, status int, active, admin bool) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Status:   status,
		IsActive: active,
		IsAdmin:  admin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func loginToken(t *testing.T, r *gin.Engine, identifier, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/accounts/login", gin.H{
		"identifier": identifier,
		"password":   password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", identifier, w.Code, w.Body.String())
	}
	out := decodeJSON(t, w)
	token, _ := out["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in %v", identifier, out)
	}
	return token
}

func backdatePin(t *testing.T, db *gorm.DB, pin *models.PinReset, age time.Duration) {
	t.Helper()
	past := time.Now().Add(-age)
	if err := db.Model(pin).Update("created_at", &past).Error; err != nil {
		t.Fatalf("backdate pin: %v", err)
	}
}
