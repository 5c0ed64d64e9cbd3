package judgment

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-judge/internal/core/domain"
)

func TestNewEngine_RejectsNegativeThreshold(t *testing.T) {
	cfg := domain.DefaultJudgmentConfig()
	cfg.LossThreshold7Days = -1
	_, err := NewEngine(cfg, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}

func TestEngine_EvaluateReplaceScenario(t *testing.T) {
	cfg := domain.DefaultJudgmentConfig()
	cfg.ReplaceNoReConsecutiveLossDays = 3
	engine, err := NewEngine(cfg, nil)
	require.NoError(t, err)

	// Three loss days on top of a losing week: spend 560000, revenue 504000.
	campaign := domain.Campaign{
		Key:         "cmp-1",
		DisplayName: "Summer sale",
		Records: []domain.DailyRecord{
			rec(1, 80000, 76000),
			rec(2, 80000, 73000),
			rec(3, 80000, 82000),
			rec(4, 80000, 81000),
			rec(5, 80000, 70000),
			rec(6, 80000, 62000),
			rec(7, 80000, 60000),
		},
	}
	res, err := engine.Evaluate(campaign)
	require.NoError(t, err)

	assert.Equal(t, domain.ClassificationReplace, res.Classification)
	assert.Equal(t, res.Classification, res.ComputedClassification)
	assert.False(t, res.IsCreativeRefreshed)
	assert.Equal(t, 3, res.ConsecutiveLossDays)
	assert.Equal(t, 0, res.ConsecutiveProfitDays)
	assert.InDelta(t, -56000, res.Profit7Days, 1e-9)
	assert.InDelta(t, -20000, res.TodayProfit, 1e-9)
	assert.InDelta(t, 90, res.ROAS7Days, 1e-9)
	assert.Equal(t, []domain.ReasonKind{
		domain.ReasonConsecutiveLoss,
		domain.ReasonLoss7DaysExceeded,
		domain.ReasonLowROAS,
	}, kinds(res.Reasons))
	assert.Nil(t, res.Override)
}

func TestEngine_EvaluateRefreshedContinue(t *testing.T) {
	engine, err := NewEngine(domain.DefaultJudgmentConfig(), nil)
	require.NoError(t, err)

	res, err := engine.Evaluate(domain.Campaign{
		Key:         "cmp-2",
		DisplayName: "Brand_Re_0501",
		Records: []domain.DailyRecord{
			rec(1, 10000, 13000),
			rec(2, 10000, 13000),
			rec(3, 10000, 13500),
		},
	})
	require.NoError(t, err)
	assert.True(t, res.IsCreativeRefreshed)
	assert.Equal(t, domain.ClassificationContinue, res.Classification)
	assert.Equal(t, 3, res.ConsecutiveProfitDays)
	assert.Len(t, res.Reasons, 3)
}

func TestEngine_EvaluateRejectsNonFinite(t *testing.T) {
	engine, err := NewEngine(domain.DefaultJudgmentConfig(), nil)
	require.NoError(t, err)

	bad := rec(1, 100, 100)
	bad.Revenue = math.NaN()
	_, err = engine.Evaluate(domain.Campaign{Key: "bad", Records: []domain.DailyRecord{bad}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRecord))
}

type prefixDetector struct{}

func (prefixDetector) IsCreativeRefreshed(name string) bool {
	return len(name) > 0 && name[0] == '*'
}

func TestEngine_CustomRefreshDetector(t *testing.T) {
	engine, err := NewEngine(domain.DefaultJudgmentConfig(), prefixDetector{})
	require.NoError(t, err)

	res, err := engine.Evaluate(domain.Campaign{Key: "k", DisplayName: "*Retro"})
	require.NoError(t, err)
	assert.True(t, res.IsCreativeRefreshed)

	res, err = engine.Evaluate(domain.Campaign{Key: "k", DisplayName: "Re campaign"})
	require.NoError(t, err)
	assert.False(t, res.IsCreativeRefreshed)
}
