package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/port"
)

// OverrideRepository implements port.OverrideRepository on the overrides
// table. Each campaign has at most one row.
type OverrideRepository struct {
	pool *pgxpool.Pool
}

var _ port.OverrideRepository = (*OverrideRepository)(nil)

// NewOverrideRepository returns a new repository instance.
func NewOverrideRepository(pool *pgxpool.Pool) *OverrideRepository {
	return &OverrideRepository{pool: pool}
}

const overrideColumns = `id::text, campaign_key, original_classification, new_classification, created_at, expires_at, memo`

func scanOverride(row pgx.CollectableRow) (domain.Override, error) {
	var o domain.Override
	err := row.Scan(
		&o.ID,
		&o.CampaignKey,
		&o.OriginalClassification,
		&o.NewClassification,
		&o.CreatedAt,
		&o.ExpiresAt,
		&o.Memo,
	)
	return o, err
}

// Get returns the campaign's override or nil.
func (r *OverrideRepository) Get(ctx context.Context, campaignKey string) (*domain.Override, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+overrideColumns+` FROM overrides WHERE campaign_key = $1`, campaignKey)
	if err != nil {
		return nil, err
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOverride)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns all overrides ordered by campaign key.
func (r *OverrideRepository) List(ctx context.Context) ([]domain.Override, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+overrideColumns+` FROM overrides ORDER BY campaign_key`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanOverride)
}

// Upsert inserts o or replaces the campaign's existing row in full.
func (r *OverrideRepository) Upsert(ctx context.Context, o domain.Override) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO overrides
            (campaign_key, id, original_classification, new_classification, memo, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (campaign_key) DO UPDATE SET
            id = EXCLUDED.id,
            original_classification = EXCLUDED.original_classification,
            new_classification = EXCLUDED.new_classification,
            memo = EXCLUDED.memo,
            created_at = EXCLUDED.created_at,
            expires_at = EXCLUDED.expires_at`,
		o.CampaignKey,
		o.ID,
		string(o.OriginalClassification),
		string(o.NewClassification),
		o.Memo,
		o.CreatedAt,
		o.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("upsert override: %w", err)
	}
	return nil
}

// Delete removes the campaign's override.
func (r *OverrideRepository) Delete(ctx context.Context, campaignKey string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM overrides WHERE campaign_key = $1`, campaignKey)
	return err
}

// DeleteExpired removes overrides that expired before now.
func (r *OverrideRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM overrides WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
