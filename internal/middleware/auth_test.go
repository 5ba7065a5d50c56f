package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/jwt"
)

func TestNeedAuth(t *testing.T) {
	jwtService := jwt.New("test-secret", time.Hour)
	auth := NewAuth(jwtService)

	var gotUserId domain.UserId
	var gotOk bool
	protected := auth.NeedAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserId, gotOk = GetUserId(r)
		w.WriteHeader(http.StatusOK)
	}))

	token, err := jwtService.NewToken(42)
	require.NoError(t, err)

	t.Run("valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, gotOk)
		assert.Equal(t, domain.UserId(42), gotUserId)
	})

	t.Run("valid bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.UserId(42), gotUserId)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		otherToken, err := jwtService.NewToken(7)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		req.Header.Set("Authorization", "Bearer "+otherToken)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.UserId(42), gotUserId)
	})
}

func TestGetUserIdWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUserId(req)
	assert.False(t, ok)
}
