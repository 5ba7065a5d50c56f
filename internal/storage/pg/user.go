package pg

import (
	"database/sql"

	"github.com/flowspace-dev/flowspace/internal/apperr"
	"github.com/flowspace-dev/flowspace/internal/domain"
)

const userColumns = "id, name, email, pass_hash, avatar_url, created, updated"

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.Id, &u.Name, &u.Email, &u.PassHash, &u.AvatarUrl, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (s *Storage) SaveUser(user domain.User) (domain.UserId, error) {
	var id domain.UserId
	err := s.db.QueryRow(
		"INSERT INTO users (name, email, pass_hash, avatar_url) VALUES ($1, $2, $3, $4) RETURNING id",
		user.Name, user.Email, user.PassHash, user.AvatarUrl,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperr.Conflict("Email already in use")
		}
		return 0, err
	}
	return id, nil
}

func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = $1", email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, notFoundOr(err, "User not found")
	}
	return u, nil
}

func (s *Storage) User(id domain.UserId) (domain.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = $1", id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, notFoundOr(err, "User not found")
	}
	return u, nil
}

// UpdateUser applies a partial profile update and returns the new state.
func (s *Storage) UpdateUser(id domain.UserId, upd domain.UserUpdate) (domain.User, error) {
	row := s.db.QueryRow(`
		UPDATE users SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			avatar_url = COALESCE($4, avatar_url),
			updated = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, upd.Name, upd.Email, upd.AvatarUrl)
	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, apperr.Conflict("Email already in use")
		}
		return domain.User{}, notFoundOr(err, "User not found")
	}
	return u, nil
}
