package port

import (
	"context"
	"time"

	"mesa-judge/internal/core/domain"
)

// OverrideRepository persists manual overrides keyed by campaign. It is an
// outbound port; implementations must be safe for concurrent use. Upsert
// replaces any existing override for the same campaign in full.
type OverrideRepository interface {
	// Get returns the override for the campaign, or nil when none is stored.
	Get(ctx context.Context, campaignKey string) (*domain.Override, error)
	// List returns every stored override, expired ones included.
	List(ctx context.Context) ([]domain.Override, error)
	// Upsert stores o, replacing the campaign's previous override.
	Upsert(ctx context.Context, o domain.Override) error
	// Delete removes the campaign's override. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, campaignKey string) error
	// DeleteExpired removes overrides whose ExpiresAt is before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
