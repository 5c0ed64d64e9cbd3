package port

import (
	"context"
	"errors"
	"time"

	"mesa-judge/internal/core/domain"
)

var (
	// ErrCampaignNotFound is returned when a campaign key is unknown.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrSourceUnavailable is returned while the record source is known to
	// be down and calls are being shed.
	ErrSourceUnavailable = errors.New("record source unavailable")
)

// RecordSource supplies campaigns with their daily records. Values are
// expected to be sanitised already: garbled numbers arrive as 0.
type RecordSource interface {
	// ListCampaigns returns every campaign with records dated on or after
	// since.
	ListCampaigns(ctx context.Context, since time.Time) ([]domain.Campaign, error)
	// GetCampaign returns one campaign with records dated on or after
	// since, or ErrCampaignNotFound.
	GetCampaign(ctx context.Context, key string, since time.Time) (*domain.Campaign, error)
}
