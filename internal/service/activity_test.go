package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowspace-dev/flowspace/internal/domain"
)

func TestActivityFeedLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero resolves to default", 0, 50},
		{"negative resolves to default", -5, 50},
		{"in range passes through", 10, 10},
		{"above max is clamped", 1000, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit int
			storage := &MockActivityStorage{
				MockActivitiesForUser: func(userId domain.UserId, limit int) ([]domain.Activity, error) {
					gotLimit = limit
					return nil, nil
				},
			}
			svc := NewActivity(storage, 50, 200)

			_, err := svc.Feed(7, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

func TestRecordIsBestEffort(t *testing.T) {
	// A failing activity write must not propagate to the caller.
	storage := &MockActivityStorage{
		MockSaveActivity: func(a domain.Activity) error {
			return errors.New("db down")
		},
	}

	svc := NewBoard(&MockBoardStorage{}, storage)
	board, err := svc.Create(7, "Roadmap", "", nil)
	assert.NoError(t, err)
	assert.NotZero(t, board.Id)
}
