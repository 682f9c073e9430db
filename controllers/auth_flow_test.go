package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-backend/config"
	"storefront-backend/controllers"
	"storefront-backend/migrations"
	"storefront-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	cfg := &config.Config{
		GinMode:          gin.TestMode,
		JWTSecret:        "test-secret",
		JWTExpireHours:   1,
		CORSAllowOrigins: "http://localhost:3000",
		AdminEmail:       "admin@example.com",
		AdminPassword:    "admin-password",
	}

	migrations.AutoMigrate(db, cfg)

	ctrl := routes.Controllers{
		Auth:        controllers.NewAuthController(db, cfg),
		User:        controllers.NewUserController(db),
		UserManager: controllers.NewUserManagerController(db),
		Role:        controllers.NewRoleController(db),
		Permission:  controllers.NewPermissionController(db),
		Category:    controllers.NewCategoryController(db),
		Product:     controllers.NewProductController(db),
		Cart:        controllers.NewCartController(db),
		Order:       controllers.NewOrderController(db),
		Address:     controllers.NewAddressController(db),
	}

	return routes.SetupRoutes(cfg, db, ctrl), db
}

func doJSON(router *gin.Engine, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "session_token", Value: cookie})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == "session_token" && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/auth/login", gin.H{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login %s: %s", email, w.Body.String())
	return sessionCookie(t, w)
}

type userRolePayload struct {
	Success bool `json:"success"`
	Data    struct {
		Roles   []string `json:"roles"`
		IsAdmin bool     `json:"isAdmin"`
	} `json:"data"`
}

func TestRegisterLoginPromoteFlow(t *testing.T) {
	router, _ := newTestServer(t)

	// Register alice; she gets the seeded customer role
	w := doJSON(router, http.MethodPost, "/auth/register", gin.H{
		"username":  "alice",
		"email":     "alice@example.com",
		"password":  "password123",
		"full_name": "Alice Example",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// A second registration with the same email fails and creates nothing
	w = doJSON(router, http.MethodPost, "/auth/register", gin.H{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password fails with the generic message
	w = doJSON(router, http.MethodPost, "/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	aliceCookie := login(t, router, "alice@example.com", "password123")

	// Fresh session resolves to the customer role only
	w = doJSON(router, http.MethodGet, "/user-role", nil, aliceCookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payload userRolePayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, []string{"customer"}, payload.Data.Roles)
	assert.False(t, payload.Data.IsAdmin)

	// Alice cannot reach the promotion endpoint herself
	w = doJSON(router, http.MethodPost, "/make-admin", gin.H{"email": "alice@example.com"}, aliceCookie)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The seeded admin promotes her; repeating the call stays a no-op
	adminCookie := login(t, router, "admin@example.com", "admin-password")
	for i := 0; i < 2; i++ {
		w = doJSON(router, http.MethodPost, "/make-admin", gin.H{"email": "alice@example.com"}, adminCookie)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	// Alice's original session sees the new role without re-login
	w = doJSON(router, http.MethodGet, "/user-role", nil, aliceCookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.ElementsMatch(t, []string{"customer", "admin"}, payload.Data.Roles)
	assert.True(t, payload.Data.IsAdmin)
}

func TestMakeAdminValidation(t *testing.T) {
	router, _ := newTestServer(t)
	adminCookie := login(t, router, "admin@example.com", "admin-password")

	w := doJSON(router, http.MethodPost, "/make-admin", gin.H{}, adminCookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/make-admin", gin.H{"email": "ghost@example.com"}, adminCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserRoleEndpointAuthStates(t *testing.T) {
	router, db := newTestServer(t)

	// Unauthenticated
	w := doJSON(router, http.MethodGet, "/user-role", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Authenticated but user row deleted after token issuance
	w = doJSON(router, http.MethodPost, "/auth/register", gin.H{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	bobCookie := login(t, router, "bob@example.com", "password123")

	var bobID uint
	require.NoError(t, db.Raw("SELECT id FROM users WHERE email = ?", "bob@example.com").Scan(&bobID).Error)

	adminCookie := login(t, router, "admin@example.com", "admin-password")
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/admin/users/%d", bobID), nil, adminCookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/user-role", nil, bobCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminPrefixGuard(t *testing.T) {
	router, _ := newTestServer(t)

	// No cookie: redirect to the login entry point, not a JSON error
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// Valid admin session passes all three layers
	adminCookie := login(t, router, "admin@example.com", "admin-password")
	w = doJSON(router, http.MethodGet, "/admin/users", nil, adminCookie)
	assert.Equal(t, http.StatusOK, w.Code)

	// Garbage cookie passes the guard but fails verification with 401
	w = doJSON(router, http.MethodGet, "/admin/users", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDetachRoleEndpoint(t *testing.T) {
	router, db := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/auth/register", gin.H{
		"username": "carol",
		"email":    "carol@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var carolID, customerRoleID uint
	require.NoError(t, db.Raw("SELECT id FROM users WHERE email = ?", "carol@example.com").Scan(&carolID).Error)
	require.NoError(t, db.Raw("SELECT id FROM roles WHERE name = ?", "customer").Scan(&customerRoleID).Error)

	adminCookie := login(t, router, "admin@example.com", "admin-password")

	w = doJSON(router, http.MethodPost, "/users/detach-role", gin.H{
		"user_id": carolID,
		"role_id": customerRoleID,
	}, adminCookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Second detach: the assignment is gone
	w = doJSON(router, http.MethodPost, "/users/detach-role", gin.H{
		"user_id": carolID,
		"role_id": customerRoleID,
	}, adminCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	carolCookie := login(t, router, "carol@example.com", "password123")
	var payload userRolePayload
	w = doJSON(router, http.MethodGet, "/user-role", nil, carolCookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Empty(t, payload.Data.Roles)
}

func TestAssignPermissionEndpoint(t *testing.T) {
	router, db := newTestServer(t)
	adminCookie := login(t, router, "admin@example.com", "admin-password")

	var roleID, permissionID uint
	require.NoError(t, db.Raw("SELECT id FROM roles WHERE name = ?", "customer").Scan(&roleID).Error)
	require.NoError(t, db.Raw("SELECT id FROM permissions WHERE name = ?", "orders.read").Scan(&permissionID).Error)

	w := doJSON(router, http.MethodPost, "/roles/assign-permission", gin.H{
		"role_id":       roleID,
		"permission_id": permissionID,
	}, adminCookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Duplicate attachment is rejected
	w = doJSON(router, http.MethodPost, "/roles/assign-permission", gin.H{
		"role_id":       roleID,
		"permission_id": permissionID,
	}, adminCookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/roles/assign-permission", gin.H{
		"role_id":       roleID,
		"permission_id": uint(999999),
	}, adminCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
