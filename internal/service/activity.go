package service

import (
	"github.com/flowspace-dev/flowspace/internal/domain"
	"github.com/flowspace-dev/flowspace/internal/logger"
)

type ActivityService interface {
	Feed(userId domain.UserId, limit int) ([]domain.Activity, error)
}

type ActivityStorage interface {
	SaveActivity(a domain.Activity) error
	ActivitiesForUser(userId domain.UserId, limit int) ([]domain.Activity, error)
}

type Activity struct {
	storage      ActivityStorage
	defaultLimit int
	maxLimit     int
}

func NewActivity(storage ActivityStorage, defaultLimit, maxLimit int) *Activity {
	return &Activity{storage, defaultLimit, maxLimit}
}

// Feed returns the caller's visible activity, newest first. limit <= 0
// means the default page size.
func (s *Activity) Feed(userId domain.UserId, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	return s.storage.ActivitiesForUser(userId, limit)
}

// record appends an audit entry, best-effort: a failed write is logged and
// swallowed so it never blocks the primary mutation.
func record(storage ActivityStorage, a domain.Activity) {
	if err := storage.SaveActivity(a); err != nil {
		logger.Log.Error("failed to log activity",
			"action", a.Action, "board", a.BoardId, "user", a.User.Id, "error", err)
	}
}
