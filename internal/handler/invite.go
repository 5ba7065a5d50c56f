package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/utils"
)

// CreateInvite handles POST /api/invite
func (h *Handler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var reqBody struct {
		BoardId domain.BoardId `json:"boardId" validate:"required"`
		Email   string         `json:"email" validate:"required"`
		Role    domain.Role    `json:"role" validate:"required"`
	}
	if err := utils.DecodeValidate(r.Body, &reqBody); err != nil {
		utils.WriteError(w, err)
		return
	}

	invite, link, err := h.invite.Create(userId, reqBody.BoardId, reqBody.Email, reqBody.Role)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"token":      invite.Token,
		"inviteLink": link,
	})
}

// AcceptInvite handles POST /api/invite/{token}/accept
func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.invite.Accept(userId, mux.Vars(r)["token"])
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"board":   board,
	})
}

// ListBoardInvites handles GET /api/invite/board/{boardId}
func (h *Handler) ListBoardInvites(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	boardId, err := parseInt64Param(mux.Vars(r)["boardId"], "board id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	invites, err := h.invite.ListForBoard(userId, boardId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if invites == nil {
		invites = []domain.Invite{}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"invites": invites})
}

// RevokeInvite handles DELETE /api/invite/{token}
func (h *Handler) RevokeInvite(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.invite.Revoke(userId, mux.Vars(r)["token"]); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}
