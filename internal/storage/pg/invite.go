package pg

import (
	"fmt"
	"time"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
)

const inviteSelect = `
	SELECT i.token, i.board_id, i.email, i.role, i.status, i.expires_at, i.created,
		u.id, u.name, u.email, u.avatar_url
	FROM invites i
	JOIN users u ON u.id = i.invited_by`

type inviteScanner interface {
	Scan(dest ...any) error
}

func scanInvite(row inviteScanner) (domain.Invite, error) {
	var i domain.Invite
	err := row.Scan(
		&i.Token, &i.BoardId, &i.Email, &i.Role, &i.Status, &i.ExpiresAt, &i.CreatedAt,
		&i.InvitedBy.Id, &i.InvitedBy.Name, &i.InvitedBy.Email, &i.InvitedBy.AvatarUrl,
	)
	return i, err
}

func (s *Storage) SaveInvite(invite domain.Invite) error {
	_, err := s.db.Exec(`
		INSERT INTO invites (token, board_id, email, role, status, invited_by, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		invite.Token, invite.BoardId, invite.Email, invite.Role, invite.Status, invite.InvitedBy.Id, invite.ExpiresAt)
	return err
}

func (s *Storage) Invite(token string) (domain.Invite, error) {
	row := s.db.QueryRow(inviteSelect+" WHERE i.token = $1", token)
	i, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, notFoundOr(err, "Invite not found")
	}
	return i, nil
}

// InvitesForBoard returns the board's invites, newest first, with the
// inviter populated. Pending invites past expiry are reported as expired.
func (s *Storage) InvitesForBoard(boardId domain.BoardId) ([]domain.Invite, error) {
	rows, err := s.db.Query(inviteSelect+" WHERE i.board_id = $1 ORDER BY i.created DESC", boardId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()
	var invites []domain.Invite
	for rows.Next() {
		i, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		if i.Status == domain.InvitePending && i.ExpiredAt(now) {
			i.Status = domain.InviteExpired
		}
		invites = append(invites, i)
	}
	return invites, rows.Err()
}

// AcceptInvite atomically transitions the invite pending → accepted and adds
// userId to the board members. The conditional UPDATE serializes concurrent
// accepts of the same token: exactly one caller observes an affected row,
// later callers get a conflict. Adding an existing member is a no-op.
func (s *Storage) AcceptInvite(token string, userId domain.UserId) (domain.Invite, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Invite{}, err
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	res, err := tx.Exec(`
		UPDATE invites SET status = $2
		WHERE token = $1 AND status = $3 AND expires_at > now()`,
		token, domain.InviteAccepted, domain.InvitePending)
	if err != nil {
		return domain.Invite{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Invite{}, err
	}
	if affected == 0 {
		// Distinguish missing, consumed and expired for the caller.
		invite, err := s.Invite(token)
		if err != nil {
			return domain.Invite{}, err
		}
		if invite.Status == domain.InvitePending && invite.ExpiredAt(time.Now()) {
			return domain.Invite{}, apperr.Conflict("Invite expired")
		}
		return domain.Invite{}, apperr.Conflict(fmt.Sprintf("Invite already %s", invite.Status))
	}

	var boardId domain.BoardId
	var role domain.Role
	if err := tx.QueryRow("SELECT board_id, role FROM invites WHERE token = $1", token).Scan(&boardId, &role); err != nil {
		return domain.Invite{}, err
	}

	_, err = tx.Exec(`
		INSERT INTO board_members (board_id, user_id, role) VALUES ($1, $2, $3)
		ON CONFLICT (board_id, user_id) DO NOTHING`,
		boardId, userId, role)
	if err != nil {
		return domain.Invite{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Invite{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.Invite(token)
}

// RevokeInvite transitions pending → revoked; any other state is a conflict.
func (s *Storage) RevokeInvite(token string) error {
	res, err := s.db.Exec(
		"UPDATE invites SET status = $2 WHERE token = $1 AND status = $3",
		token, domain.InviteRevoked, domain.InvitePending)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		invite, err := s.Invite(token)
		if err != nil {
			return err
		}
		return apperr.Conflict(fmt.Sprintf("Invite already %s", invite.Status))
	}
	return nil
}
