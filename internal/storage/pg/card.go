package pg

import (
	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
)

// cardSelect joins creator and last-modifier projections in one pass.
const cardSelect = `
	SELECT c.id, c.board_id, c.column_id, c.title, c.description, c.tags, c.due_date,
		cu.id, cu.name, cu.email, cu.avatar_url,
		uu.id, uu.name, uu.email, uu.avatar_url,
		c.created, c.updated
	FROM cards c
	JOIN users cu ON cu.id = c.created_by
	JOIN users uu ON uu.id = c.updated_by`

type cardScanner interface {
	Scan(dest ...any) error
}

func scanCard(row cardScanner) (domain.Card, error) {
	var c domain.Card
	err := row.Scan(
		&c.Id, &c.BoardId, &c.ColumnId, &c.Title, &c.Description, &c.Tags, &c.DueDate,
		&c.CreatedBy.Id, &c.CreatedBy.Name, &c.CreatedBy.Email, &c.CreatedBy.AvatarUrl,
		&c.UpdatedBy.Id, &c.UpdatedBy.Name, &c.UpdatedBy.Email, &c.UpdatedBy.AvatarUrl,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// CreateCard persists the card with creator = last-modifier = creatorId.
func (s *Storage) CreateCard(card domain.Card, creatorId domain.UserId) (domain.Card, error) {
	var id domain.CardId
	err := s.db.QueryRow(`
		INSERT INTO cards (board_id, column_id, title, description, tags, due_date, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id`,
		card.BoardId, card.ColumnId, card.Title, card.Description, card.Tags, card.DueDate, creatorId,
	).Scan(&id)
	if err != nil {
		return domain.Card{}, err
	}
	return s.Card(id)
}

func (s *Storage) Card(id domain.CardId) (domain.Card, error) {
	row := s.db.QueryRow(cardSelect+" WHERE c.id = $1", id)
	c, err := scanCard(row)
	if err != nil {
		return domain.Card{}, notFoundOr(err, "Card not found")
	}
	return c, nil
}

func (s *Storage) CardsForBoard(boardId domain.BoardId) ([]domain.Card, error) {
	rows, err := s.db.Query(cardSelect+" WHERE c.board_id = $1 ORDER BY c.created", boardId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// UpdateCard applies a partial update. The creator column is never touched;
// updated_by always becomes actorId.
func (s *Storage) UpdateCard(id domain.CardId, upd domain.CardUpdate, actorId domain.UserId) (domain.Card, error) {
	var updatedId domain.CardId
	err := s.db.QueryRow(`
		UPDATE cards SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			column_id = COALESCE($4, column_id),
			tags = COALESCE($5, tags),
			due_date = COALESCE($6, due_date),
			updated_by = $7,
			updated = now()
		WHERE id = $1
		RETURNING id`,
		id, upd.Title, upd.Description, upd.ColumnId, upd.Tags, upd.DueDate, actorId,
	).Scan(&updatedId)
	if err != nil {
		return domain.Card{}, notFoundOr(err, "Card not found")
	}
	return s.Card(updatedId)
}

func (s *Storage) DeleteCard(id domain.CardId) error {
	res, err := s.db.Exec("DELETE FROM cards WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Card not found")
	}
	return nil
}
