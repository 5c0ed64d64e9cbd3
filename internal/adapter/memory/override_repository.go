// Package memory provides in-process implementations of the outbound ports.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"mesa-judge/internal/core/domain"
)

// OverrideRepository implements port.OverrideRepository with a map. State
// is lost on restart; use it for tests and single-instance deployments.
type OverrideRepository struct {
	mu   sync.RWMutex
	data map[string]domain.Override
}

// NewOverrideRepository returns an empty repository.
func NewOverrideRepository() *OverrideRepository {
	return &OverrideRepository{data: make(map[string]domain.Override)}
}

// Get returns the override for the campaign or nil.
func (r *OverrideRepository) Get(_ context.Context, campaignKey string) (*domain.Override, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.data[campaignKey]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// List returns all overrides ordered by campaign key.
func (r *OverrideRepository) List(_ context.Context) ([]domain.Override, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Override, 0, len(r.data))
	for _, o := range r.data {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CampaignKey < out[j].CampaignKey })
	return out, nil
}

// Upsert stores o, replacing any previous override for the campaign.
func (r *OverrideRepository) Upsert(_ context.Context, o domain.Override) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[o.CampaignKey] = o
	return nil
}

// Delete removes the campaign's override.
func (r *OverrideRepository) Delete(_ context.Context, campaignKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, campaignKey)
	return nil
}

// DeleteExpired removes overrides that expired before now.
func (r *OverrideRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k, o := range r.data {
		if o.ExpiresAt.Before(now) {
			delete(r.data, k)
			n++
		}
	}
	return n, nil
}
