package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"corpsbank/internal/infrastructure/auth"
	"corpsbank/internal/interfaces/http/handlers/testutil"
	"corpsbank/internal/shared/config"
)

// --- helpers ---

func newTestAuthHandler(t *testing.T, password string) *AuthHandler {
	t.Helper()

	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	adminCfg := config.AdminConfig{
		Username:     "admin",
		PasswordHash: hash,
		BcryptCost:   bcrypt.MinCost,
	}
	sessionCfg := config.SessionConfig{
		JWTSecret:  "test-secret",
		ExpMinutes: 60,
		CookieName: "corpsbank_session",
	}
	sessions := auth.NewSessionService(sessionCfg.JWTSecret, sessionCfg.ExpMinutes)

	return NewAuthHandler(adminCfg, sessionCfg, sessions, hasher, testutil.NewMockLogger())
}

// =====================================================================
// TestAuthHandler_Login
// =====================================================================

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := newTestAuthHandler(t, "hunter2")

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/login", LoginRequest{
		Username: "admin",
		Password: "hunter2",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "corpsbank_session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	handler := newTestAuthHandler(t, "hunter2")

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/login", LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandler_Login_UnknownUsername(t *testing.T) {
	handler := newTestAuthHandler(t, "hunter2")

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/login", LoginRequest{
		Username: "root",
		Password: "hunter2",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := newTestAuthHandler(t, "hunter2")

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/login", map[string]string{"username": "admin"})
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestAuthHandler_Logout
// =====================================================================

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler := newTestAuthHandler(t, "hunter2")

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/logout", nil)
	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "corpsbank_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
