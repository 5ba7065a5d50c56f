package domain

import "time"

// InviteTTL is the fixed offset from creation after which an invite can no
// longer be accepted.
const InviteTTL = 7 * 24 * time.Hour

// Invite grants Role on BoardId to whoever redeems Token. The token is the
// sole identifier and must be unguessable.
type Invite struct {
	Token     string       `json:"token"`
	BoardId   BoardId      `json:"boardId"`
	Email     Email        `json:"email"`
	Role      Role         `json:"role"`
	Status    InviteStatus `json:"status"`
	InvitedBy UserRef      `json:"invitedBy"`
	ExpiresAt time.Time    `json:"expiresAt"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (i *Invite) ExpiredAt(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
