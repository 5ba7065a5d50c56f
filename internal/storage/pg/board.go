package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
)

// CreateBoard persists the board, its columns and the owner membership in
// one transaction and returns the fully populated board.
func (s *Storage) CreateBoard(board domain.Board) (domain.Board, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Board{}, err
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	var boardId domain.BoardId
	err = tx.QueryRow(
		"INSERT INTO boards (title, description, owner_id) VALUES ($1, $2, $3) RETURNING id",
		board.Title, board.Description, board.OwnerId,
	).Scan(&boardId)
	if err != nil {
		return domain.Board{}, err
	}

	for _, col := range board.Columns {
		_, err = tx.Exec(
			"INSERT INTO board_columns (board_id, title, ord) VALUES ($1, $2, $3)",
			boardId, col.Title, col.Order,
		)
		if err != nil {
			return domain.Board{}, err
		}
	}

	_, err = tx.Exec(
		"INSERT INTO board_members (board_id, user_id, role) VALUES ($1, $2, $3)",
		boardId, board.OwnerId, domain.RoleOwner,
	)
	if err != nil {
		return domain.Board{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Board{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.Board(boardId)
}

// Board returns the board with columns ordered and members populated with
// user projections.
func (s *Storage) Board(id domain.BoardId) (domain.Board, error) {
	var b domain.Board
	err := s.db.QueryRow(
		"SELECT id, title, description, owner_id, created, updated FROM boards WHERE id = $1", id,
	).Scan(&b.Id, &b.Title, &b.Description, &b.OwnerId, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Board{}, notFoundOr(err, "Board not found")
	}

	if b.Columns, err = s.boardColumns(id); err != nil {
		return domain.Board{}, err
	}
	if b.Members, err = s.boardMembers(id); err != nil {
		return domain.Board{}, err
	}
	return b, nil
}

func (s *Storage) boardColumns(id domain.BoardId) ([]domain.Column, error) {
	rows, err := s.db.Query("SELECT id, title, ord FROM board_columns WHERE board_id = $1 ORDER BY ord", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []domain.Column
	for rows.Next() {
		var c domain.Column
		if err := rows.Scan(&c.Id, &c.Title, &c.Order); err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, rows.Err()
}

func (s *Storage) boardMembers(id domain.BoardId) ([]domain.Member, error) {
	rows, err := s.db.Query(`
		SELECT u.id, u.name, u.email, u.avatar_url, m.role, m.joined
		FROM board_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.board_id = $1
		ORDER BY m.joined`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.User.Id, &m.User.Name, &m.User.Email, &m.User.AvatarUrl, &m.Role, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// BoardsForUser returns exactly the boards where userId appears in the
// member list, populated like Board.
func (s *Storage) BoardsForUser(userId domain.UserId) ([]domain.Board, error) {
	rows, err := s.db.Query(`
		SELECT b.id, b.title, b.description, b.owner_id, b.created, b.updated
		FROM boards b
		JOIN board_members m ON m.board_id = b.id
		WHERE m.user_id = $1
		ORDER BY b.created`, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(&b.Id, &b.Title, &b.Description, &b.OwnerId, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range boards {
		if boards[i].Columns, err = s.boardColumns(boards[i].Id); err != nil {
			return nil, err
		}
		if boards[i].Members, err = s.boardMembers(boards[i].Id); err != nil {
			return nil, err
		}
	}
	return boards, nil
}

// DeleteBoard removes the board; columns, cards, invites and activities go
// with it via ON DELETE CASCADE.
func (s *Storage) DeleteBoard(id domain.BoardId) error {
	res, err := s.db.Exec("DELETE FROM boards WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Board not found")
	}
	return nil
}

// AddColumn appends a column after the current last one.
func (s *Storage) AddColumn(boardId domain.BoardId, title string) (domain.Board, error) {
	_, err := s.db.Exec(`
		INSERT INTO board_columns (board_id, title, ord)
		SELECT $1, $2, COALESCE(MAX(ord), -1) + 1 FROM board_columns WHERE board_id = $1`,
		boardId, title)
	if err != nil {
		return domain.Board{}, err
	}
	return s.Board(boardId)
}

// MemberRole returns the caller's role on the board. Board absence and
// non-membership surface as distinct errors so handlers can map 404 vs 403.
func (s *Storage) MemberRole(boardId domain.BoardId, userId domain.UserId) (domain.Role, error) {
	var role domain.Role
	err := s.db.QueryRow(
		"SELECT role FROM board_members WHERE board_id = $1 AND user_id = $2",
		boardId, userId,
	).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if err := s.db.QueryRow("SELECT EXISTS (SELECT 1 FROM boards WHERE id = $1)", boardId).Scan(&exists); err != nil {
			return "", err
		}
		if !exists {
			return "", apperr.NotFound("Board not found")
		}
		return "", apperr.Forbidden("Not a member of this board")
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

// AddMember inserts a membership entry; adding an existing member is a
// no-op and the existing role is kept.
func (s *Storage) AddMember(boardId domain.BoardId, userId domain.UserId, role domain.Role) error {
	_, err := s.db.Exec(`
		INSERT INTO board_members (board_id, user_id, role) VALUES ($1, $2, $3)
		ON CONFLICT (board_id, user_id) DO NOTHING`,
		boardId, userId, role)
	return err
}
