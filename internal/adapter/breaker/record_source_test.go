package breaker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/port"
	"mesa-judge/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRecordSource_OpensAfterConsecutiveFailures(t *testing.T) {
	next := mocks.NewMockRecordSource(t)
	boom := errors.New("connection refused")
	next.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return(nil, boom).Times(3)

	rs := NewRecordSource("records", next, Settings{Failures: 3, Timeout: time.Minute}, discard)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := rs.ListCampaigns(ctx, time.Time{})
		assert.ErrorIs(t, err, boom)
	}
	assert.Equal(t, gobreaker.StateOpen, rs.State())

	// The wrapped source is not called while open.
	_, err := rs.ListCampaigns(ctx, time.Time{})
	assert.ErrorIs(t, err, port.ErrSourceUnavailable)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestRecordSource_NotFoundIsNotAFailure(t *testing.T) {
	next := mocks.NewMockRecordSource(t)
	next.EXPECT().GetCampaign(mock.Anything, "missing", mock.Anything).Return(nil, port.ErrCampaignNotFound).Times(5)
	next.EXPECT().GetCampaign(mock.Anything, "c1", mock.Anything).Return(&domain.Campaign{Key: "c1"}, nil).Once()

	rs := NewRecordSource("records", next, Settings{Failures: 2, Timeout: time.Minute}, discard)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := rs.GetCampaign(ctx, "missing", time.Time{})
		assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	}
	assert.Equal(t, gobreaker.StateClosed, rs.State())

	c, err := rs.GetCampaign(ctx, "c1", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "c1", c.Key)
}
