package domain

import "time"

type Column struct {
	Id    ColumnId `json:"id"`
	Title string   `json:"title"`
	Order int      `json:"order"`
}

type Member struct {
	User     UserRef   `json:"userId"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

type Board struct {
	Id          BoardId   `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerId     UserId    `json:"ownerId"`
	Columns     []Column  `json:"columns"`
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MemberRole returns the role of userId on the board and whether the user
// is a member at all.
func (b *Board) MemberRole(userId UserId) (Role, bool) {
	for _, m := range b.Members {
		if m.User.Id == userId {
			return m.Role, true
		}
	}
	return "", false
}

// DefaultColumns is the column set a board gets when the creator does not
// supply one. A board always has at least one column.
func DefaultColumns() []Column {
	return []Column{
		{Title: "To Do", Order: 0},
		{Title: "In Progress", Order: 1},
		{Title: "Review", Order: 2},
		{Title: "Done", Order: 3},
	}
}
