// Package redisadapter stores overrides in Redis. Each override is a JSON value
// under prefix+campaignKey that Redis evicts shortly after it expires.
package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/port"
)

const scanCount = 100

// OverrideRepository implements port.OverrideRepository on a Redis client.
type OverrideRepository struct {
	client redis.UniversalClient
	prefix string
}

var _ port.OverrideRepository = (*OverrideRepository)(nil)

// NewOverrideRepository returns a repository that namespaces keys with prefix.
func NewOverrideRepository(client redis.UniversalClient, prefix string) *OverrideRepository {
	return &OverrideRepository{client: client, prefix: prefix}
}

// record is the stored representation of an override.
type record struct {
	ID                     string    `json:"id"`
	CampaignKey            string    `json:"campaign_key"`
	OriginalClassification string    `json:"original_classification"`
	NewClassification      string    `json:"new_classification"`
	CreatedAt              time.Time `json:"created_at"`
	ExpiresAt              time.Time `json:"expires_at"`
	Memo                   string    `json:"memo,omitempty"`
}

func encode(o domain.Override) ([]byte, error) {
	return json.Marshal(record{
		ID:                     o.ID,
		CampaignKey:            o.CampaignKey,
		OriginalClassification: string(o.OriginalClassification),
		NewClassification:      string(o.NewClassification),
		CreatedAt:              o.CreatedAt,
		ExpiresAt:              o.ExpiresAt,
		Memo:                   o.Memo,
	})
}

func decode(data []byte) (domain.Override, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return domain.Override{}, err
	}
	return domain.Override{
		ID:                     r.ID,
		CampaignKey:            r.CampaignKey,
		OriginalClassification: domain.Classification(r.OriginalClassification),
		NewClassification:      domain.Classification(r.NewClassification),
		CreatedAt:              r.CreatedAt,
		ExpiresAt:              r.ExpiresAt,
		Memo:                   r.Memo,
	}, nil
}

func (r *OverrideRepository) key(campaignKey string) string {
	return r.prefix + campaignKey
}

// Get returns the campaign's override or nil.
func (r *OverrideRepository) Get(ctx context.Context, campaignKey string) (*domain.Override, error) {
	data, err := r.client.Get(ctx, r.key(campaignKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	o, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode override %s: %w", campaignKey, err)
	}
	return &o, nil
}

// List returns every override under the prefix. Keys that vanish between
// SCAN and MGET are skipped.
func (r *OverrideRepository) List(ctx context.Context) ([]domain.Override, error) {
	var (
		out    []domain.Override
		cursor uint64
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanCount).Result()
		if err != nil {
			return nil, err
		}
		if len(keys) > 0 {
			values, err := r.client.MGet(ctx, keys...).Result()
			if err != nil {
				return nil, err
			}
			for i, v := range values {
				s, ok := v.(string)
				if !ok {
					continue
				}
				o, err := decode([]byte(s))
				if err != nil {
					return nil, fmt.Errorf("decode override %s: %w", keys[i], err)
				}
				out = append(out, o)
			}
		}
		if next == 0 {
			return out, nil
		}
		cursor = next
	}
}

// Upsert stores o. Redis expires the key one second after o.ExpiresAt;
// the exact cutoff is enforced by the override store.
func (r *OverrideRepository) Upsert(ctx context.Context, o domain.Override) error {
	data, err := encode(o)
	if err != nil {
		return err
	}
	return r.client.SetArgs(ctx, r.key(o.CampaignKey), data, redis.SetArgs{
		ExpireAt: o.ExpiresAt.Add(time.Second),
	}).Err()
}

// Delete removes the campaign's override.
func (r *OverrideRepository) Delete(ctx context.Context, campaignKey string) error {
	return r.client.Del(ctx, r.key(campaignKey)).Err()
}

// DeleteExpired removes overrides that expired before now but have not
// been evicted by Redis yet.
func (r *OverrideRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	all, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	var keys []string
	for _, o := range all {
		if o.ExpiresAt.Before(now) {
			keys = append(keys, r.key(o.CampaignKey))
		}
	}
	if len(keys) == 0 {
		return 0, nil
	}
	return r.client.Del(ctx, keys...).Result()
}
