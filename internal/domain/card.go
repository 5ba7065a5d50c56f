package domain

import (
	"time"

	"github.com/lib/pq"
)

type Card struct {
	Id          CardId         `json:"id"`
	BoardId     BoardId        `json:"boardId"`
	ColumnId    ColumnId       `json:"columnId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tags        pq.StringArray `json:"tags"`
	DueDate     *time.Time     `json:"dueDate,omitempty"`
	CreatedBy   UserRef        `json:"createdBy"`
	UpdatedBy   UserRef        `json:"updatedBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CardUpdate carries a partial card mutation. Nil fields are left untouched.
// CreatedBy is never part of an update.
type CardUpdate struct {
	Title       *string
	Description *string
	ColumnId    *ColumnId
	Tags        *pq.StringArray
	DueDate     *time.Time
}
