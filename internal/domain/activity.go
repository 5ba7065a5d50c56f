package domain

import "time"

type EntityType string

const (
	EntityCard   EntityType = "card"
	EntityBoard  EntityType = "board"
	EntityInvite EntityType = "invite"
)

// Activity is an append-only audit entry. Entries are never updated or
// deleted; they disappear only when their board is deleted.
type Activity struct {
	Id         int64      `json:"id"`
	User       UserRef    `json:"userId"`
	BoardId    BoardId    `json:"boardId"`
	EntityType EntityType `json:"entityType"`
	EntityId   int64      `json:"entityId"`
	Action     string     `json:"action"`
	CreatedAt  time.Time  `json:"createdAt"`
}
