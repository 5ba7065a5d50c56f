package domain

type (
	UserId   = int64
	BoardId  = int64
	ColumnId = int64
	CardId   = int64

	Email    = string
	Password = string
)

// Role of a board member. Owner is assigned at board creation and never
// changes; invites may only grant editor or viewer.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleEditor || r == RoleViewer
}

// Grantable reports whether an invite may carry this role.
func (r Role) Grantable() bool {
	return r == RoleEditor || r == RoleViewer
}

func (r Role) CanWrite() bool {
	return r == RoleOwner || r == RoleEditor
}

func (r Role) CanInvite() bool {
	return r == RoleOwner || r == RoleEditor
}

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteExpired  InviteStatus = "expired"
	InviteRevoked  InviteStatus = "revoked"
)
