package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/flowspace-dev/flowspace/internal/middleware/ratelimiter"
	"github.com/flowspace-dev/flowspace/internal/utils"
)

func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			if !rl.Allow(identity) {
				http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GlobalRateLimit(rl *ratelimiter.UserRateLimiter) func(http.Handler) http.Handler {
	return RateLimit(rl, func(r *http.Request) (string, error) { return "global", nil })
}

// GetUserIdentity keys rate limits by the authenticated user. Only usable
// behind NeedAuth.
func GetUserIdentity(r *http.Request) (string, error) {
	userId, ok := GetUserId(r)
	if !ok {
		return "", fmt.Errorf("can't get user id")
	}
	return fmt.Sprintf("user_%d", userId), nil
}

// GetIP extracts the client IP from RemoteAddr. Forwarding headers are not
// trusted; the gateway is the only hop in front of this service.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}

	return ip, nil
}
