package pg

import (
	"github.com/flowspace-dev/flowspace/internal/domain"
)

// SaveActivity appends one audit entry. Entries are never updated.
func (s *Storage) SaveActivity(a domain.Activity) error {
	_, err := s.db.Exec(`
		INSERT INTO activities (user_id, board_id, entity_type, entity_id, action)
		VALUES ($1, $2, $3, $4, $5)`,
		a.User.Id, a.BoardId, a.EntityType, a.EntityId, a.Action)
	return err
}

// ActivitiesForUser returns the newest-first feed across all boards the
// user is a member of, acting users populated with projections.
func (s *Storage) ActivitiesForUser(userId domain.UserId, limit int) ([]domain.Activity, error) {
	rows, err := s.db.Query(`
		SELECT a.id, a.board_id, a.entity_type, a.entity_id, a.action, a.created,
			u.id, u.name, u.email, u.avatar_url
		FROM activities a
		JOIN users u ON u.id = a.user_id
		JOIN board_members m ON m.board_id = a.board_id AND m.user_id = $1
		ORDER BY a.created DESC, a.id DESC
		LIMIT $2`, userId, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		err := rows.Scan(
			&a.Id, &a.BoardId, &a.EntityType, &a.EntityId, &a.Action, &a.CreatedAt,
			&a.User.Id, &a.User.Name, &a.User.Email, &a.User.AvatarUrl,
		)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
