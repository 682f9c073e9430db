package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-backend/authz"
	"storefront-backend/config"
	"storefront-backend/utilities"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentIdentity(c))
	})
	return router
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpireHours: 1}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := newAuthedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := newAuthedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: utilities.SessionCookieName, Value: "garbage"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	cfg := testConfig()
	router := newAuthedRouter(cfg)

	token, err := utilities.GenerateToken(1, "alice@example.com", "Alice", "other-secret", 1)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: utilities.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsCookieAndBearer(t *testing.T) {
	cfg := testConfig()
	router := newAuthedRouter(cfg)

	token, err := utilities.GenerateToken(42, "alice@example.com", "Alice", cfg.JWTSecret, cfg.JWTExpireHours)
	require.NoError(t, err)

	// Cookie transport
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: utilities.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")

	// Bearer transport
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentIdentityRoundTrip(t *testing.T) {
	cfg := testConfig()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var got authz.Identity
	router.GET("/probe", AuthMiddleware(cfg), func(c *gin.Context) {
		got = CurrentIdentity(c)
		c.Status(http.StatusOK)
	})

	token, err := utilities.GenerateToken(7, "bob@example.com", "Bob", cfg.JWTSecret, cfg.JWTExpireHours)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: utilities.SecureSessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, authz.Identity{ID: 7, Email: "bob@example.com", FullName: "Bob"}, got)
}
