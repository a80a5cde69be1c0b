package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/config"
	"github.com/fachebot/chat-tldr-bot/internal/credential"
	"github.com/fachebot/chat-tldr-bot/internal/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMessageStore struct {
	mock.Mock
}

func (m *mockMessageStore) DeleteBefore(ctx context.Context, cutoffDate time.Time) (int, error) {
	args := m.Called(ctx, cutoffDate)
	return args.Int(0), args.Error(1)
}

func newTestScheduler(store messageStore, cfg *config.Tldr, now time.Time) *Scheduler {
	s := NewScheduler(store, ratelimit.NewCooldown(time.Minute), credential.NewIntentTable(30*time.Minute), cfg)
	s.now = func() time.Time { return now }
	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s
}

func TestRunCleanup_DeletesBeforeRetentionCutoff(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	store := new(mockMessageStore)
	store.On("DeleteBefore", mock.Anything, now.Add(-72*time.Hour)).Return(42, nil).Once()

	s := newTestScheduler(store, &config.Tldr{RetentionHours: 72, CleanupCron: "0 * * * *"}, now)
	s.runCleanup()

	store.AssertExpectations(t)
}

func TestRunCleanup_DefaultRetention(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	store := new(mockMessageStore)
	store.On("DeleteBefore", mock.Anything, now.Add(-168*time.Hour)).Return(0, nil).Once()

	s := newTestScheduler(store, &config.Tldr{CleanupCron: "0 * * * *"}, now)
	s.runCleanup()

	store.AssertExpectations(t)
}

func TestRunCleanup_DeleteFailureDoesNotPanic(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	store := new(mockMessageStore)
	store.On("DeleteBefore", mock.Anything, mock.Anything).Return(0, errors.New("db locked")).Once()

	s := newTestScheduler(store, &config.Tldr{RetentionHours: 168, CleanupCron: "0 * * * *"}, now)
	assert.NotPanics(t, func() { s.runCleanup() })
}

func TestStart_InvalidCronRejected(t *testing.T) {
	store := new(mockMessageStore)
	s := NewScheduler(store, ratelimit.NewCooldown(time.Minute), credential.NewIntentTable(30*time.Minute),
		&config.Tldr{CleanupCron: "not a cron"})

	err := s.Start()
	require.Error(t, err)
}
