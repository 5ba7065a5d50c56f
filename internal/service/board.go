package service

import (
	"fmt"
	"strings"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
)

// to mock service in tests
type BoardService interface {
	Create(actor domain.UserId, title, description string, columns []string) (domain.Board, error)
	Get(actor domain.UserId, boardId domain.BoardId) (domain.Board, error)
	List(actor domain.UserId) ([]domain.Board, error)
	Delete(actor domain.UserId, boardId domain.BoardId) error
	AddColumn(actor domain.UserId, boardId domain.BoardId, title string) (domain.Board, error)
}

type BoardStorage interface {
	CreateBoard(board domain.Board) (domain.Board, error)
	Board(id domain.BoardId) (domain.Board, error)
	BoardsForUser(userId domain.UserId) ([]domain.Board, error)
	DeleteBoard(id domain.BoardId) error
	AddColumn(boardId domain.BoardId, title string) (domain.Board, error)
	MemberRole(boardId domain.BoardId, userId domain.UserId) (domain.Role, error)
	AddMember(boardId domain.BoardId, userId domain.UserId, role domain.Role) error
}

type Board struct {
	storage  BoardStorage
	activity ActivityStorage
}

func NewBoard(storage BoardStorage, activity ActivityStorage) BoardService {
	return &Board{storage, activity}
}

// Create makes the actor the owner and sole member. With no explicit
// columns the board gets the standard four; a board never ends up
// column-less.
func (b *Board) Create(actor domain.UserId, title, description string, columns []string) (domain.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Board{}, apperr.BadRequest("Board title is required")
	}

	board := domain.Board{
		Title:       title,
		Description: description,
		OwnerId:     actor,
		Columns:     domain.DefaultColumns(),
	}
	if len(columns) > 0 {
		board.Columns = board.Columns[:0]
		for i, colTitle := range columns {
			board.Columns = append(board.Columns, domain.Column{Title: colTitle, Order: i})
		}
	}

	created, err := b.storage.CreateBoard(board)
	if err != nil {
		return domain.Board{}, err
	}

	record(b.activity, domain.Activity{
		User:       domain.UserRef{Id: actor},
		BoardId:    created.Id,
		EntityType: domain.EntityBoard,
		EntityId:   created.Id,
		Action:     fmt.Sprintf("created board %q", created.Title),
	})

	return created, nil
}

// Get is membership-gated: non-members get a 403 even with a valid id.
func (b *Board) Get(actor domain.UserId, boardId domain.BoardId) (domain.Board, error) {
	if _, err := b.storage.MemberRole(boardId, actor); err != nil {
		return domain.Board{}, err
	}
	return b.storage.Board(boardId)
}

func (b *Board) List(actor domain.UserId) ([]domain.Board, error) {
	return b.storage.BoardsForUser(actor)
}

func (b *Board) Delete(actor domain.UserId, boardId domain.BoardId) error {
	role, err := b.storage.MemberRole(boardId, actor)
	if err != nil {
		return err
	}
	if role != domain.RoleOwner {
		return apperr.Forbidden("Only the owner can delete a board")
	}
	return b.storage.DeleteBoard(boardId)
}

func (b *Board) AddColumn(actor domain.UserId, boardId domain.BoardId, title string) (domain.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Board{}, apperr.BadRequest("Column title is required")
	}

	role, err := b.storage.MemberRole(boardId, actor)
	if err != nil {
		return domain.Board{}, err
	}
	if !role.CanWrite() {
		return domain.Board{}, apperr.Forbidden("Viewers cannot modify the board")
	}

	return b.storage.AddColumn(boardId, title)
}
