package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/utils"
)

// CreateBoard handles POST /api/boards
func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var reqBody struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description"`
		Columns     []string `json:"columns"`
	}
	if err := utils.DecodeValidate(r.Body, &reqBody); err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Create(userId, reqBody.Title, reqBody.Description, reqBody.Columns)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{"board": board})
}

// ListBoards handles GET /api/boards
func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	boards, err := h.board.List(userId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if boards == nil {
		boards = []domain.Board{}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"boards": boards})
}

// GetBoard handles GET /api/boards/{id}
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	boardId, err := parseInt64Param(mux.Vars(r)["id"], "board id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Get(userId, boardId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"board": board})
}

// DeleteBoard handles DELETE /api/boards/{id}
func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	boardId, err := parseInt64Param(mux.Vars(r)["id"], "board id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.board.Delete(userId, boardId); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// AddColumn handles POST /api/boards/{id}/columns
func (h *Handler) AddColumn(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	boardId, err := parseInt64Param(mux.Vars(r)["id"], "board id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var reqBody struct {
		Title string `json:"title" validate:"required"`
	}
	if err := utils.DecodeValidate(r.Body, &reqBody); err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.AddColumn(userId, boardId, reqBody.Title)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{"board": board})
}
