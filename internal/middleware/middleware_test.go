package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopde/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func signedToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "user-1",
		"email": "admin@shopde.example.com",
		"exp":   time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
}

func TestSessionAuth(t *testing.T) {
	logger := zerolog.Nop()
	verifier := auth.NewVerifier(testSecret)
	guard := SessionAuth(verifier, "/api/admin", logger)

	t.Run("Admin request without token is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
		w := httptest.NewRecorder()

		guard(okHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("Admin request with expired token is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, -time.Hour))
		w := httptest.NewRecorder()

		guard(okHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Admin request with foreign signature is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", time.Hour))
		w := httptest.NewRecorder()

		guard(okHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Admin request with valid token passes and carries the session", func(t *testing.T) {
		var seen *auth.Session
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(SessionKey).(*auth.Session)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, time.Hour))
		w := httptest.NewRecorder()

		guard(inner).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "user-1", seen.UserID)
		assert.Equal(t, "admin@shopde.example.com", seen.Email)
	})

	t.Run("Public request passes without any token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		guard(okHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})
}

func TestCORS(t *testing.T) {
	t.Run("Headers are added", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		CORS(okHandler()).ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Preflight short-circuits with 204", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
		w := httptest.NewRecorder()

		CORS(okHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestLogging(t *testing.T) {
	logger := zerolog.Nop()

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestRecovery(t *testing.T) {
	logger := zerolog.Nop()

	handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
