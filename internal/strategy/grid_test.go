package strategy

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrajanyaSahu/binance-bot/internal/execution"
)

func TestBuildGridLevels(t *testing.T) {
	plan := BuildGrid("BTCUSDT", execution.Buy,
		decimal.NewFromInt(60000), decimal.NewFromInt(70000), 4,
		decimal.RequireFromString("0.001"))

	require.Len(t, plan.Levels, 5)
	want := []string{"60000", "62500", "65000", "67500", "70000"}
	for i, level := range plan.Levels {
		assert.Equal(t, want[i], level.String())
	}
	for i := 1; i < len(plan.Levels); i++ {
		assert.True(t, plan.Levels[i].GreaterThan(plan.Levels[i-1]), "levels must be strictly increasing")
	}
}

func TestBuildGridPinsUpperBound(t *testing.T) {
	lower := decimal.RequireFromString("0.1")
	upper := decimal.RequireFromString("0.2")
	plan := BuildGrid("DOGEUSDT", execution.Sell, lower, upper, 3, decimal.NewFromInt(100))

	require.Len(t, plan.Levels, 4)
	assert.True(t, plan.Levels[0].Equal(lower))
	assert.True(t, plan.Levels[3].Equal(upper))
	for _, level := range plan.Levels {
		assert.True(t, level.GreaterThanOrEqual(lower))
		assert.True(t, level.LessThanOrEqual(upper))
	}
}

func TestGridRunnerPlacesEveryLevel(t *testing.T) {
	exec := newStubExecutor()
	runner := NewGridRunner(exec, zerolog.Nop())

	plan := BuildGrid("BTCUSDT", execution.Buy,
		decimal.NewFromInt(60000), decimal.NewFromInt(70000), 4,
		decimal.RequireFromString("0.001"))
	results := runner.Run(context.Background(), plan)

	require.Len(t, results, 5)
	reqs := exec.requests()
	require.Len(t, reqs, 5)
	for i, req := range reqs {
		assert.Equal(t, execution.Limit, req.Type)
		assert.Equal(t, "GTC", req.TimeInForce)
		assert.True(t, req.Price.Equal(plan.Levels[i]))
	}
}

func TestGridRunnerContinuesPastFailedLevel(t *testing.T) {
	exec := newStubExecutor()
	exec.failAt[0] = "rejected"
	runner := NewGridRunner(exec, zerolog.Nop())

	plan := BuildGrid("BTCUSDT", execution.Sell,
		decimal.NewFromInt(60000), decimal.NewFromInt(70000), 2,
		decimal.RequireFromString("0.01"))
	results := runner.Run(context.Background(), plan)

	require.Len(t, results, 3)
	assert.False(t, results[0].OK())
	assert.True(t, results[1].OK())
	assert.True(t, results[2].OK())
}
