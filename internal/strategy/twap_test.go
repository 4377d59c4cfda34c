package strategy

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrajanyaSahu/binance-bot/internal/execution"
)

func TestBuildTWAPEqualSplit(t *testing.T) {
	plan := BuildTWAP("BTCUSDT", execution.Buy, decimal.NewFromInt(10), 5, 50*time.Second)

	require.Len(t, plan.Chunks, 5)
	for _, qty := range plan.Chunks {
		assert.Equal(t, "2", qty.String())
	}
	assert.Equal(t, 10*time.Second, plan.Interval)
	assert.True(t, plan.Total().Equal(decimal.NewFromInt(10)))
}

func TestBuildTWAPRemainderGoesToLastChunk(t *testing.T) {
	total := decimal.NewFromInt(1)
	plan := BuildTWAP("BTCUSDT", execution.Buy, total, 3, 0)

	require.Len(t, plan.Chunks, 3)
	assert.Equal(t, "0.33333333", plan.Chunks[0].String())
	assert.Equal(t, "0.33333333", plan.Chunks[1].String())
	assert.Equal(t, "0.33333334", plan.Chunks[2].String())
	assert.True(t, plan.Total().Equal(total), "chunk sum must equal the requested total exactly")
}

func TestTWAPRunnerSubmitsEveryChunk(t *testing.T) {
	exec := newStubExecutor()
	runner := NewTWAPRunner(exec, zerolog.Nop())

	plan := BuildTWAP("BTCUSDT", execution.Sell, decimal.NewFromInt(4), 4, 0)
	results := runner.Run(context.Background(), plan)

	require.Len(t, results, 4)
	reqs := exec.requests()
	require.Len(t, reqs, 4)
	for _, req := range reqs {
		assert.Equal(t, execution.Market, req.Type)
		assert.Equal(t, execution.Sell, req.Side)
		assert.Equal(t, "1", req.Qty.String())
	}
}

func TestTWAPRunnerContinuesPastFailedChunk(t *testing.T) {
	exec := newStubExecutor()
	exec.failAt[1] = "boom"
	runner := NewTWAPRunner(exec, zerolog.Nop())

	plan := BuildTWAP("BTCUSDT", execution.Buy, decimal.NewFromInt(3), 3, 0)
	results := runner.Run(context.Background(), plan)

	require.Len(t, results, 3)
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.True(t, results[2].OK())
	assert.Len(t, exec.requests(), 3)
}

func TestTWAPRunnerStopsOnCancel(t *testing.T) {
	exec := newStubExecutor()
	runner := NewTWAPRunner(exec, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan := BuildTWAP("BTCUSDT", execution.Buy, decimal.NewFromInt(4), 4, time.Hour)
	results := runner.Run(ctx, plan)

	// first chunk goes out, the canceled context stops the wait before the second
	require.Len(t, results, 1)
}
