package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/config"
	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/middleware"
	"github.com/flowspace-dev/flowspace/internal/service"
)

type Handler struct {
	auth     service.AuthService
	board    service.BoardService
	card     service.CardService
	invite   service.InviteService
	activity service.ActivityService
	cfg      *config.Config
}

func New(auth service.AuthService, board service.BoardService, card service.CardService, invite service.InviteService, activity service.ActivityService, cfg *config.Config) *Handler {
	return &Handler{auth, board, card, invite, activity, cfg}
}

// actor returns the authenticated user id. The auth middleware guarantees
// it is present on protected routes.
func actor(r *http.Request) (domain.UserId, error) {
	userId, ok := middleware.GetUserId(r)
	if !ok {
		return 0, apperr.Unauthorized("Not authenticated")
	}
	return userId, nil
}

// parseInt64Param parses an integer path parameter and returns a meaningful error
func parseInt64Param(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, apperr.BadRequest(fmt.Sprintf("invalid %s: must be an integer", paramName))
	}
	return val, nil
}
