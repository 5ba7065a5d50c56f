package handler

import (
	"net/http"
	"strconv"

	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/utils"
)

// GetActivity handles GET /api/activity
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v) // malformed limit falls back to default
	}

	activities, err := h.activity.Feed(userId, limit)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if activities == nil {
		activities = []domain.Activity{}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"activities": activities})
}
