package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/lib/pq"

	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/utils"
)

// CreateCard handles POST /api/cards/{boardId}/cards
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
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

	var reqBody struct {
		ColumnId    domain.ColumnId `json:"columnId" validate:"required"`
		Title       string          `json:"title" validate:"required"`
		Description string          `json:"description"`
		Tags        []string        `json:"tags"`
		DueDate     *time.Time      `json:"dueDate"`
	}
	if err := utils.DecodeValidate(r.Body, &reqBody); err != nil {
		utils.WriteError(w, err)
		return
	}

	card := domain.Card{
		BoardId:     boardId,
		ColumnId:    reqBody.ColumnId,
		Title:       reqBody.Title,
		Description: reqBody.Description,
		Tags:        pq.StringArray(reqBody.Tags),
		DueDate:     reqBody.DueDate,
	}
	created, err := h.card.Create(userId, card)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{"card": created})
}

// ListCards handles GET /api/cards/{boardId}/cards
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
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

	cards, err := h.card.List(userId, boardId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if cards == nil {
		cards = []domain.Card{}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"cards": cards})
}

// UpdateCard handles PUT /api/cards/{id}
func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	cardId, err := parseInt64Param(mux.Vars(r)["id"], "card id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var reqBody struct {
		Title       *string          `json:"title"`
		Description *string          `json:"description"`
		ColumnId    *domain.ColumnId `json:"columnId"`
		Tags        *[]string        `json:"tags"`
		DueDate     *time.Time       `json:"dueDate"`
	}
	if err := utils.Decode(r.Body, &reqBody); err != nil {
		utils.WriteError(w, err)
		return
	}

	upd := domain.CardUpdate{
		Title:       reqBody.Title,
		Description: reqBody.Description,
		ColumnId:    reqBody.ColumnId,
		DueDate:     reqBody.DueDate,
	}
	if reqBody.Tags != nil {
		tags := pq.StringArray(*reqBody.Tags)
		upd.Tags = &tags
	}

	card, err := h.card.Update(userId, cardId, upd)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"card": card})
}

// DeleteCard handles DELETE /api/cards/{id}
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userId, err := actor(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	cardId, err := parseInt64Param(mux.Vars(r)["id"], "card id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.card.Delete(userId, cardId); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}
