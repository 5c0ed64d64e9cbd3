package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-judge/internal/adapter/memory"
	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/override"
	"mesa-judge/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type funcJob struct {
	name string
	fn   func(ctx context.Context) error
}

func (f funcJob) Name() string                  { return f.name }
func (f funcJob) Run(ctx context.Context) error { return f.fn(ctx) }

func TestAddJob_InvalidSchedule(t *testing.T) {
	s := New(context.Background(), discard, time.UTC, time.Second)
	err := s.AddJob("every day at noon", funcJob{name: "x", fn: func(context.Context) error { return nil }})
	assert.Error(t, err)
}

func TestRunNow_PassesDeadlineAndError(t *testing.T) {
	s := New(context.Background(), discard, time.UTC, time.Minute)
	boom := errors.New("boom")

	err := s.RunNow(funcJob{name: "x", fn: func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return boom
	}})
	assert.ErrorIs(t, err, boom)
}

func TestScheduledJobRuns(t *testing.T) {
	s := New(context.Background(), discard, time.UTC, time.Second)
	ran := make(chan struct{}, 1)
	require.NoError(t, s.AddJob("@every 1s", funcJob{name: "tick", fn: func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}}))
	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestPurgeOverridesJob(t *testing.T) {
	repo := memory.NewOverrideRepository()
	created := time.Date(2024, 5, 9, 10, 0, 0, 0, time.UTC)
	current := created
	store := override.NewStore(repo, time.UTC, override.WithClock(func() time.Time { return current }))
	ctx := context.Background()

	_, err := store.Set(ctx, "c1", domain.ClassificationStop, domain.ClassificationCheck, "")
	require.NoError(t, err)
	current = created.AddDate(0, 0, 1)

	s := New(ctx, discard, time.UTC, time.Second)
	require.NoError(t, s.RunNow(PurgeOverridesJob{Store: store, Logger: discard}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestJudgmentRunJob(t *testing.T) {
	uc := mocks.NewMockJudgmentUseCase(t)
	uc.EXPECT().Run(mock.Anything).Return(&domain.Report{}, nil)

	s := New(context.Background(), discard, time.UTC, time.Second)
	assert.NoError(t, s.RunNow(JudgmentRunJob{UseCase: uc}))
}
