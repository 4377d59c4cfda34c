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
	"github.com/PrajanyaSahu/binance-bot/internal/signal"
)

func TestBuildStopLimit(t *testing.T) {
	req := BuildStopLimit("BTCUSDT", execution.Buy,
		decimal.RequireFromString("0.001"),
		decimal.NewFromInt(65000), decimal.NewFromInt(64900))

	assert.Equal(t, execution.StopLimit, req.Type)
	assert.Equal(t, "65000", req.StopPrice.String())
	assert.Equal(t, "64900", req.Price.String())
	assert.Equal(t, "GTC", req.TimeInForce)
}

func TestTriggered(t *testing.T) {
	stop := decimal.NewFromInt(65000)

	assert.False(t, Triggered(execution.Buy, decimal.NewFromInt(64999), stop))
	assert.True(t, Triggered(execution.Buy, decimal.NewFromInt(65000), stop))
	assert.True(t, Triggered(execution.Buy, decimal.NewFromInt(65001), stop))

	assert.False(t, Triggered(execution.Sell, decimal.NewFromInt(65001), stop))
	assert.True(t, Triggered(execution.Sell, decimal.NewFromInt(65000), stop))
	assert.True(t, Triggered(execution.Sell, decimal.NewFromInt(64999), stop))
}

func TestWatcherPlacesLimitOnTrigger(t *testing.T) {
	exec := newStubExecutor()
	watcher := NewStopLimitWatcher(exec, zerolog.Nop())

	req := BuildStopLimit("BTCUSDT", execution.Buy,
		decimal.RequireFromString("0.001"),
		decimal.NewFromInt(65000), decimal.NewFromInt(64900))

	ticks := make(chan signal.Tick, 3)
	ticks <- signal.Tick{Symbol: "BTCUSDT", Price: 64000}
	ticks <- signal.Tick{Symbol: "BTCUSDT", Price: 64500}
	ticks <- signal.Tick{Symbol: "BTCUSDT", Price: 65050}

	result, fired := watcher.Run(context.Background(), req, ticks)
	require.True(t, fired)
	assert.True(t, result.OK())

	reqs := exec.requests()
	require.Len(t, reqs, 1, "no order before the trigger tick")
	assert.Equal(t, execution.Limit, reqs[0].Type)
	assert.Equal(t, "64900", reqs[0].Price.String())
	assert.True(t, reqs[0].StopPrice.IsZero(), "trigger is local, the order carries no stop price")
}

func TestWatcherStopsWhenContextEnds(t *testing.T) {
	exec := newStubExecutor()
	watcher := NewStopLimitWatcher(exec, zerolog.Nop())

	req := BuildStopLimit("BTCUSDT", execution.Sell,
		decimal.NewFromInt(1), decimal.NewFromInt(60000), decimal.NewFromInt(60100))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	ticks := make(chan signal.Tick)
	_, fired := watcher.Run(ctx, req, ticks)
	assert.False(t, fired)
	assert.Empty(t, exec.requests())
}

func TestWatcherStopsWhenStreamCloses(t *testing.T) {
	exec := newStubExecutor()
	watcher := NewStopLimitWatcher(exec, zerolog.Nop())

	req := BuildStopLimit("BTCUSDT", execution.Buy,
		decimal.NewFromInt(1), decimal.NewFromInt(65000), decimal.NewFromInt(64900))

	ticks := make(chan signal.Tick)
	close(ticks)
	_, fired := watcher.Run(context.Background(), req, ticks)
	assert.False(t, fired)
}
