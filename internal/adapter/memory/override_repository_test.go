package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-judge/internal/core/domain"
)

func TestOverrideRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewOverrideRepository()

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Upsert(ctx, domain.Override{CampaignKey: "b", NewClassification: domain.ClassificationStop, Memo: "first"}))
	require.NoError(t, repo.Upsert(ctx, domain.Override{CampaignKey: "a", NewClassification: domain.ClassificationCheck}))
	require.NoError(t, repo.Upsert(ctx, domain.Override{CampaignKey: "b", NewClassification: domain.ClassificationContinue}))

	got, err = repo.Get(ctx, "b")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ClassificationContinue, got.NewClassification)
	assert.Empty(t, got.Memo)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].CampaignKey)

	require.NoError(t, repo.Delete(ctx, "a"))
	require.NoError(t, repo.Delete(ctx, "missing"))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOverrideRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewOverrideRepository()
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(ctx, domain.Override{CampaignKey: "old", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Upsert(ctx, domain.Override{CampaignKey: "live", ExpiresAt: now.Add(time.Hour)}))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.Get(ctx, "live")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
