package jwt

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/logger"
)

type JwtService interface {
	NewToken(userId domain.UserId) (string, error)
	UserId(jwtStr string) (domain.UserId, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

// NewToken issues an HS256 access token whose subject is the user id.
func (j *Jwt) NewToken(userId domain.UserId) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userId, 10),
		"exp": time.Now().Add(j.ttl).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", fmt.Errorf("can't create token")
	}

	return tokenString, nil
}

// UserId validates the token and extracts the subject claim.
func (j *Jwt) UserId(jwtStr string) (domain.UserId, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &apperr.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return 0, apperr.Unauthorized("Invalid token signature")
	}
	if !token.Valid {
		return 0, apperr.Unauthorized("Invalid access token")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return 0, apperr.Unauthorized("Invalid token claims")
	}
	userId, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, apperr.Unauthorized("Invalid token claims")
	}

	return userId, nil
}
