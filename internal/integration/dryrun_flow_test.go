package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/PrajanyaSahu/binance-bot/internal/exchange"
	"github.com/PrajanyaSahu/binance-bot/internal/execution"
	"github.com/PrajanyaSahu/binance-bot/internal/risk"
	sig "github.com/PrajanyaSahu/binance-bot/internal/signal"
	"github.com/PrajanyaSahu/binance-bot/internal/strategy"
)

func TestDryRunTWAPFlow(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	exec := execution.NewSimulated(logger, nil)

	total := decimal.RequireFromString("0.01")
	plan := strategy.BuildTWAP("BTCUSDT", execution.Buy, total, 4, 0)

	limits := risk.FromConfig(1, 0)
	for _, qty := range plan.Chunks {
		req := execution.NewRequest("BTCUSDT", execution.Buy, execution.Market, qty)
		if err := limits.Check(req); err != nil {
			t.Fatalf("risk check rejected chunk: %v", err)
		}
	}

	results := strategy.NewTWAPRunner(exec, logger).Run(context.Background(), plan)
	if len(results) != 4 {
		t.Fatalf("expected 4 submissions, got %d", len(results))
	}

	submitted := decimal.Zero
	for _, result := range results {
		if result.Status != execution.StatusDryRun {
			t.Fatalf("expected DRY_RUN status, got %s", result.Status)
		}
		submitted = submitted.Add(result.Qty)
	}
	if !submitted.Equal(total) {
		t.Fatalf("submitted %s, want %s", submitted, total)
	}

	if len(exec.Ledger().Snapshot()) != 4 {
		t.Fatalf("expected 4 ledger entries")
	}
	if !strings.Contains(buf.String(), "dry-run") {
		t.Fatalf("expected dry-run log lines, got %s", buf.String())
	}
}

func TestDryRunStopLimitWatchFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feed := exchange.NewFeed(exchange.ProviderStub, "BTCUSDT", zerolog.Nop(),
		exchange.WithStubPrices(64900, 50),
		exchange.WithStubInterval(time.Millisecond),
	)
	ticks := make(chan sig.Tick, 8)
	go func() {
		_ = feed.Run(ctx, ticks)
	}()

	exec := execution.NewSimulated(zerolog.Nop(), nil)
	req := strategy.BuildStopLimit("BTCUSDT", execution.Buy,
		decimal.RequireFromString("0.001"),
		decimal.NewFromInt(65000), decimal.NewFromInt(64900))

	watcher := strategy.NewStopLimitWatcher(exec, zerolog.Nop())
	result, fired := watcher.Run(ctx, req, ticks)
	if !fired {
		t.Fatalf("expected the stub feed to reach the trigger")
	}
	if result.Status != execution.StatusDryRun {
		t.Fatalf("expected DRY_RUN result, got %s", result.Status)
	}
	if result.Type != execution.Limit {
		t.Fatalf("expected a limit order after the trigger, got %s", result.Type)
	}
}
