// Package breaker guards outbound ports with a circuit breaker so a failing
// database is not hammered by every request and scheduled run.
package breaker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/port"
)

// Settings configures a RecordSource breaker.
type Settings struct {
	// Failures is the number of consecutive failures that opens the breaker.
	Failures uint32
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration
}

// RecordSource wraps a port.RecordSource with a circuit breaker. Unknown
// campaigns and cancelled requests do not count as failures.
type RecordSource struct {
	next port.RecordSource
	cb   *gobreaker.CircuitBreaker
}

var _ port.RecordSource = (*RecordSource)(nil)

// NewRecordSource returns next guarded by a breaker named name.
func NewRecordSource(name string, next port.RecordSource, s Settings, logger *slog.Logger) *RecordSource {
	if s.Failures == 0 {
		s.Failures = 5
	}
	st := gobreaker.Settings{Name: name}
	st.Timeout = s.Timeout
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= s.Failures
	}
	st.IsSuccessful = func(err error) bool {
		return err == nil ||
			errors.Is(err, port.ErrCampaignNotFound) ||
			errors.Is(err, context.Canceled)
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		logger.Warn("circuit breaker state changed",
			slog.String("breaker", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()))
	}
	return &RecordSource{next: next, cb: gobreaker.NewCircuitBreaker(st)}
}

// State reports the breaker state.
func (r *RecordSource) State() gobreaker.State {
	return r.cb.State()
}

// ListCampaigns implements port.RecordSource.
func (r *RecordSource) ListCampaigns(ctx context.Context, since time.Time) ([]domain.Campaign, error) {
	v, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.ListCampaigns(ctx, since)
	})
	if err != nil {
		return nil, wrap(err)
	}
	return v.([]domain.Campaign), nil
}

// GetCampaign implements port.RecordSource.
func (r *RecordSource) GetCampaign(ctx context.Context, key string, since time.Time) (*domain.Campaign, error) {
	v, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.GetCampaign(ctx, key, since)
	})
	if err != nil {
		return nil, wrap(err)
	}
	return v.(*domain.Campaign), nil
}

func wrap(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(port.ErrSourceUnavailable, err)
	}
	return err
}
