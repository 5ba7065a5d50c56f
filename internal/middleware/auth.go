package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/jwt"
	"github.com/flowspace-dev/flowspace/internal/utils"
)

// Key to store the authenticated user id in the request context
type key int

const userIdKey key = 0

type Auth struct {
	jwtService jwt.JwtService
}

func NewAuth(jwtService jwt.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires a valid access token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userId, err := a.extractUserId(r)
			if err != nil {
				utils.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUserId(r.Context(), userId)))
		})
	}
}

// extractUserId reads the token from the accessToken cookie (browser
// clients) or the Authorization header (API clients) and validates it.
func (a *Auth) extractUserId(r *http.Request) (domain.UserId, error) {
	var tokenString string
	if accessCookie, err := r.Cookie("accessToken"); err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return 0, apperr.Unauthorized("Not authenticated")
	}

	return a.jwtService.UserId(tokenString)
}

// ContextWithUserId attaches the authenticated user id to the context.
func ContextWithUserId(ctx context.Context, userId domain.UserId) context.Context {
	return context.WithValue(ctx, userIdKey, userId)
}

// GetUserId retrieves the authenticated user id set by NeedAuth.
// The second return is false when the request never passed the middleware.
func GetUserId(r *http.Request) (domain.UserId, bool) {
	userId, ok := r.Context().Value(userIdKey).(domain.UserId)
	return userId, ok
}
