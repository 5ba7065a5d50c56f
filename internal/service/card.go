package service

import (
	"fmt"
	"strings"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
)

// to mock service in tests
type CardService interface {
	Create(actor domain.UserId, card domain.Card) (domain.Card, error)
	List(actor domain.UserId, boardId domain.BoardId) ([]domain.Card, error)
	Update(actor domain.UserId, cardId domain.CardId, upd domain.CardUpdate) (domain.Card, error)
	Delete(actor domain.UserId, cardId domain.CardId) error
}

type CardStorage interface {
	CreateCard(card domain.Card, creatorId domain.UserId) (domain.Card, error)
	Card(id domain.CardId) (domain.Card, error)
	CardsForBoard(boardId domain.BoardId) ([]domain.Card, error)
	UpdateCard(id domain.CardId, upd domain.CardUpdate, actorId domain.UserId) (domain.Card, error)
	DeleteCard(id domain.CardId) error
}

type Card struct {
	storage  CardStorage
	boards   BoardStorage
	activity ActivityStorage
}

func NewCard(storage CardStorage, boards BoardStorage, activity ActivityStorage) CardService {
	return &Card{storage, boards, activity}
}

// Create requires a write role on the card's board. Creator and
// last-modifier are both set to the actor.
func (c *Card) Create(actor domain.UserId, card domain.Card) (domain.Card, error) {
	card.Title = strings.TrimSpace(card.Title)
	if card.Title == "" {
		return domain.Card{}, apperr.BadRequest("Card title is required")
	}
	if card.ColumnId == 0 {
		return domain.Card{}, apperr.BadRequest("columnId is required")
	}

	role, err := c.boards.MemberRole(card.BoardId, actor)
	if err != nil {
		return domain.Card{}, err
	}
	if !role.CanWrite() {
		return domain.Card{}, apperr.Forbidden("Viewers cannot create cards")
	}

	created, err := c.storage.CreateCard(card, actor)
	if err != nil {
		return domain.Card{}, err
	}

	record(c.activity, domain.Activity{
		User:       domain.UserRef{Id: actor},
		BoardId:    created.BoardId,
		EntityType: domain.EntityCard,
		EntityId:   created.Id,
		Action:     fmt.Sprintf("created card %q", created.Title),
	})

	return created, nil
}

func (c *Card) List(actor domain.UserId, boardId domain.BoardId) ([]domain.Card, error) {
	if _, err := c.boards.MemberRole(boardId, actor); err != nil {
		return nil, err
	}
	return c.storage.CardsForBoard(boardId)
}

// Update leaves the creator untouched and stamps the actor as
// last-modifier.
func (c *Card) Update(actor domain.UserId, cardId domain.CardId, upd domain.CardUpdate) (domain.Card, error) {
	card, err := c.storage.Card(cardId)
	if err != nil {
		return domain.Card{}, err
	}

	role, err := c.boards.MemberRole(card.BoardId, actor)
	if err != nil {
		return domain.Card{}, err
	}
	if !role.CanWrite() {
		return domain.Card{}, apperr.Forbidden("Viewers cannot update cards")
	}

	updated, err := c.storage.UpdateCard(cardId, upd, actor)
	if err != nil {
		return domain.Card{}, err
	}

	record(c.activity, domain.Activity{
		User:       domain.UserRef{Id: actor},
		BoardId:    updated.BoardId,
		EntityType: domain.EntityCard,
		EntityId:   updated.Id,
		Action:     fmt.Sprintf("updated card %q", updated.Title),
	})

	return updated, nil
}

func (c *Card) Delete(actor domain.UserId, cardId domain.CardId) error {
	card, err := c.storage.Card(cardId)
	if err != nil {
		return err
	}

	role, err := c.boards.MemberRole(card.BoardId, actor)
	if err != nil {
		return err
	}
	if !role.CanWrite() {
		return apperr.Forbidden("Viewers cannot delete cards")
	}

	if err := c.storage.DeleteCard(cardId); err != nil {
		return err
	}

	record(c.activity, domain.Activity{
		User:       domain.UserRef{Id: actor},
		BoardId:    card.BoardId,
		EntityType: domain.EntityCard,
		EntityId:   card.Id,
		Action:     fmt.Sprintf("deleted card %q", card.Title),
	})

	return nil
}
