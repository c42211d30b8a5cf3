package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpsbank/internal/infrastructure/auth"
	"corpsbank/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- helpers ---

func newTestEngine(t *testing.T, sessions *auth.SessionService) *gin.Engine {
	t.Helper()

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m := NewAdminAuthMiddleware(sessions, "corpsbank_session", log)

	engine := gin.New()
	engine.GET("/protected", m.RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("admin_user"))
	})
	return engine
}

// =====================================================================
// TestAdminAuthMiddleware_RequireAdmin
// =====================================================================

func TestAdminAuthMiddleware_ValidCookie(t *testing.T) {
	sessions := auth.NewSessionService("test-secret", 60)
	engine := newTestEngine(t, sessions)

	token, err := sessions.Generate("admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "corpsbank_session", Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}

func TestAdminAuthMiddleware_ValidBearerToken(t *testing.T) {
	sessions := auth.NewSessionService("test-secret", 60)
	engine := newTestEngine(t, sessions)

	token, err := sessions.Generate("admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthMiddleware_MissingToken(t *testing.T) {
	engine := newTestEngine(t, auth.NewSessionService("test-secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddleware_TokenSignedWithOtherSecret(t *testing.T) {
	engine := newTestEngine(t, auth.NewSessionService("test-secret", 60))

	other := auth.NewSessionService("other-secret", 60)
	token, err := other.Generate("admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "corpsbank_session", Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	engine := newTestEngine(t, auth.NewSessionService("test-secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddleware_ExpiredToken(t *testing.T) {
	// Negative lifetime produces an already-expired token.
	sessions := auth.NewSessionService("test-secret", -1)
	engine := newTestEngine(t, sessions)

	token, err := sessions.Generate("admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "corpsbank_session", Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
