package domain

import (
	"fmt"
	"net/url"
	"time"
)

type User struct {
	Id        UserId    `json:"id"`
	Name      string    `json:"name"`
	Email     Email     `json:"email"`
	PassHash  string    `json:"-"`
	AvatarUrl string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserRef is the projection of a user embedded in populated references
// (card createdBy/updatedBy, invite invitedBy, activity userId).
// It never carries credentials.
type UserRef struct {
	Id        UserId `json:"id"`
	Name      string `json:"name"`
	Email     Email  `json:"email"`
	AvatarUrl string `json:"avatarUrl"`
}

func (u User) Ref() UserRef {
	return UserRef{Id: u.Id, Name: u.Name, Email: u.Email, AvatarUrl: u.AvatarUrl}
}

type Credentials struct {
	Email    Email
	Password Password
}

// UserUpdate carries a partial profile mutation. Nil fields are left
// untouched.
type UserUpdate struct {
	Name      *string
	Email     *string
	AvatarUrl *string
}

// DefaultAvatarUrl derives a stable avatar for a new user from its name.
func DefaultAvatarUrl(seed string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", url.QueryEscape(seed))
}
