package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/port"
)

// RecordRepository implements port.RecordSource using pgxpool for PostgreSQL.
type RecordRepository struct {
	pool *pgxpool.Pool
}

var _ port.RecordSource = (*RecordRepository)(nil)

// NewRecordRepository returns a new repository instance.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

const recordsQuery = `
        SELECT
            c.key,
            c.display_name,
            c.media_channel,
            r.date,
            r.spend,
            r.revenue,
            r.cv,
            r.mcv
        FROM campaigns c
        LEFT JOIN daily_records r
               ON r.campaign_key = c.key
              AND r.date >= $1::date`

// campaignRow is one campaign joined with at most one of its records.
type campaignRow struct {
	Key          string
	DisplayName  string
	MediaChannel string
	Date         *time.Time
	Spend        *float64
	Revenue      *float64
	CV           *float64
	MCV          *float64
}

func scanCampaignRow(row pgx.CollectableRow) (campaignRow, error) {
	var cr campaignRow
	err := row.Scan(
		&cr.Key,
		&cr.DisplayName,
		&cr.MediaChannel,
		&cr.Date,
		&cr.Spend,
		&cr.Revenue,
		&cr.CV,
		&cr.MCV,
	)
	return cr, err
}

// ListCampaigns returns every campaign with its records dated on or after
// the calendar date of since. Campaigns without records are included with
// an empty history.
func (r *RecordRepository) ListCampaigns(ctx context.Context, since time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, recordsQuery+`
        ORDER BY c.key, r.date`, since.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	raw, err := pgx.CollectRows(rows, scanCampaignRow)
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return groupCampaigns(raw), nil
}

// GetCampaign returns one campaign with its records dated on or after the
// calendar date of since.
func (r *RecordRepository) GetCampaign(ctx context.Context, key string, since time.Time) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, recordsQuery+`
        WHERE c.key = $2
        ORDER BY r.date`, since.Format(time.DateOnly), key)
	if err != nil {
		return nil, fmt.Errorf("query campaign %s: %w", key, err)
	}
	raw, err := pgx.CollectRows(rows, scanCampaignRow)
	if err != nil {
		return nil, fmt.Errorf("scan campaign %s: %w", key, err)
	}
	campaigns := groupCampaigns(raw)
	if len(campaigns) == 0 {
		return nil, port.ErrCampaignNotFound
	}
	return &campaigns[0], nil
}

// groupCampaigns folds rows ordered by campaign key into campaigns. NULL
// metrics are stored as 0.
func groupCampaigns(rows []campaignRow) []domain.Campaign {
	var out []domain.Campaign
	for _, row := range rows {
		if len(out) == 0 || out[len(out)-1].Key != row.Key {
			out = append(out, domain.Campaign{
				Key:          row.Key,
				DisplayName:  row.DisplayName,
				MediaChannel: row.MediaChannel,
			})
		}
		if row.Date == nil {
			continue
		}
		c := &out[len(out)-1]
		c.Records = append(c.Records, domain.NewDailyRecord(
			*row.Date,
			orZero(row.Spend),
			orZero(row.Revenue),
			orZero(row.CV),
			orZero(row.MCV),
		))
	}
	return out
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// isNoRows reports whether err means the query matched nothing.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
