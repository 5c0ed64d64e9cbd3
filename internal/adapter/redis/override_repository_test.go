package redisadapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-judge/internal/core/domain"
)

var created = time.Date(2024, 5, 10, 1, 0, 0, 0, time.UTC)

func sample(key string, expires time.Time) domain.Override {
	return domain.Override{
		ID:                     "id-" + key,
		CampaignKey:            key,
		OriginalClassification: domain.ClassificationReplace,
		NewClassification:      domain.ClassificationContinue,
		CreatedAt:              created,
		ExpiresAt:              expires,
		Memo:                   "new creative on monday",
	}
}

func mustEncode(t *testing.T, o domain.Override) []byte {
	t.Helper()
	data, err := encode(o)
	require.NoError(t, err)
	return data
}

func TestOverrideRepository_UpsertAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewOverrideRepository(client, "override:")
	ctx := context.Background()

	o := sample("c1", created.Add(10*time.Hour))
	data := mustEncode(t, o)

	mock.ExpectSetArgs("override:c1", data, redis.SetArgs{ExpireAt: o.ExpiresAt.Add(time.Second)}).SetVal("OK")
	require.NoError(t, repo.Upsert(ctx, o))

	mock.ExpectGet("override:c1").SetVal(string(data))
	got, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, domain.ClassificationContinue, got.NewClassification)
	assert.True(t, got.ExpiresAt.Equal(o.ExpiresAt))
	assert.Equal(t, o.Memo, got.Memo)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideRepository_GetMissingAndErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewOverrideRepository(client, "override:")
	ctx := context.Background()

	mock.ExpectGet("override:none").RedisNil()
	got, err := repo.Get(ctx, "none")
	require.NoError(t, err)
	assert.Nil(t, got)

	boom := errors.New("connection reset")
	mock.ExpectGet("override:c1").SetErr(boom)
	_, err = repo.Get(ctx, "c1")
	assert.ErrorIs(t, err, boom)

	mock.ExpectGet("override:junk").SetVal("{not json")
	_, err = repo.Get(ctx, "junk")
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideRepository_ListPagesThroughScan(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewOverrideRepository(client, "override:")
	ctx := context.Background()

	a := sample("a", created.Add(time.Hour))
	b := sample("b", created.Add(2*time.Hour))

	mock.ExpectScan(0, "override:*", scanCount).SetVal([]string{"override:a", "override:gone"}, 7)
	mock.ExpectMGet("override:a", "override:gone").SetVal([]interface{}{string(mustEncode(t, a)), nil})
	mock.ExpectScan(7, "override:*", scanCount).SetVal([]string{"override:b"}, 0)
	mock.ExpectMGet("override:b").SetVal([]interface{}{string(mustEncode(t, b))})

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].CampaignKey)
	assert.Equal(t, "b", all[1].CampaignKey)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideRepository_DeleteAndDeleteExpired(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewOverrideRepository(client, "override:")
	ctx := context.Background()

	mock.ExpectDel("override:c1").SetVal(1)
	require.NoError(t, repo.Delete(ctx, "c1"))

	stale := sample("stale", created.Add(time.Hour))
	fresh := sample("fresh", created.Add(5*time.Hour))
	mock.ExpectScan(0, "override:*", scanCount).SetVal([]string{"override:stale", "override:fresh"}, 0)
	mock.ExpectMGet("override:stale", "override:fresh").
		SetVal([]interface{}{string(mustEncode(t, stale)), string(mustEncode(t, fresh))})
	mock.ExpectDel("override:stale").SetVal(1)

	n, err := repo.DeleteExpired(ctx, created.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, mock.ExpectationsWereMet())
}
