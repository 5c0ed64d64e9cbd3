// Package override reconciles manual reclassifications with computed
// judgments. An override is valid until the end of the calendar day it was
// created on, measured in the store's reference timezone.
package override

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/port"
)

// Store wraps an OverrideRepository with expiry and no-op semantics.
type Store struct {
	repo   port.OverrideRepository
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger

	// locks serialises writes per campaign key.
	locks sync.Map
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for best-effort purges.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore returns a store over repo whose days are measured in loc.
func NewStore(repo port.OverrideRepository, loc *time.Location, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		loc:    loc,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the reference timezone.
func (s *Store) Location() *time.Location {
	return s.loc
}

// Expired reports whether o is past the end of its creation day. The cutoff
// is derived from CreatedAt rather than the stored ExpiresAt so a change of
// reference timezone takes effect immediately.
func (s *Store) Expired(o domain.Override, now time.Time) bool {
	return now.After(domain.OverrideCutoff(o.CreatedAt, s.loc))
}

// Effective returns the campaign's active override, or nil. An expired
// override found on the way is deleted.
func (s *Store) Effective(ctx context.Context, campaignKey string) (*domain.Override, error) {
	o, err := s.repo.Get(ctx, campaignKey)
	if err != nil {
		return nil, fmt.Errorf("get override %s: %w", campaignKey, err)
	}
	if o == nil {
		return nil, nil
	}
	if s.Expired(*o, s.now()) {
		s.purge(ctx, *o)
		return nil, nil
	}
	return o, nil
}

// Set records an override of the computed classification. Requesting the
// classification the rules already produced clears any override instead,
// and returns nil.
func (s *Store) Set(ctx context.Context, campaignKey string, computed, class domain.Classification, memo string) (*domain.Override, error) {
	unlock := s.lock(campaignKey)
	defer unlock()

	if class == computed {
		if err := s.repo.Delete(ctx, campaignKey); err != nil {
			return nil, fmt.Errorf("clear override %s: %w", campaignKey, err)
		}
		return nil, nil
	}

	now := s.now()
	o := domain.Override{
		ID:                     uuid.NewString(),
		CampaignKey:            campaignKey,
		OriginalClassification: computed,
		NewClassification:      class,
		CreatedAt:              now,
		ExpiresAt:              domain.OverrideCutoff(now, s.loc),
		Memo:                   memo,
	}
	if err := s.repo.Upsert(ctx, o); err != nil {
		return nil, fmt.Errorf("store override %s: %w", campaignKey, err)
	}
	return &o, nil
}

// Clear removes the campaign's override.
func (s *Store) Clear(ctx context.Context, campaignKey string) error {
	unlock := s.lock(campaignKey)
	defer unlock()

	if err := s.repo.Delete(ctx, campaignKey); err != nil {
		return fmt.Errorf("clear override %s: %w", campaignKey, err)
	}
	return nil
}

// Apply merges active overrides into results. The computed classification
// is kept in ComputedClassification and the override is attached, so the
// merge never loses what the rules decided.
func (s *Store) Apply(ctx context.Context, results []domain.JudgmentResult) ([]domain.JudgmentResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	now := s.now()
	active := make(map[string]domain.Override, len(all))
	for _, o := range all {
		if s.Expired(o, now) {
			s.purge(ctx, o)
			continue
		}
		active[o.CampaignKey] = o
	}

	out := make([]domain.JudgmentResult, len(results))
	for i, r := range results {
		if o, ok := active[r.CampaignKey]; ok {
			r.Classification = o.NewClassification
			r.Override = &o
		}
		out[i] = r
	}
	return out, nil
}

// PurgeExpired deletes every override that expired before now.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("purge expired overrides: %w", err)
	}
	return n, nil
}

// purge deletes an expired override unless a newer one replaced it in the
// meantime. Failures are logged, the caller already treats it as absent.
func (s *Store) purge(ctx context.Context, o domain.Override) {
	unlock := s.lock(o.CampaignKey)
	defer unlock()

	cur, err := s.repo.Get(ctx, o.CampaignKey)
	if err == nil && cur != nil && cur.ID == o.ID {
		err = s.repo.Delete(ctx, o.CampaignKey)
	}
	if err != nil {
		s.logger.Warn("failed to purge expired override",
			slog.String("campaign", o.CampaignKey), slog.Any("error", err))
	}
}

func (s *Store) lock(key string) func() {
	v, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
