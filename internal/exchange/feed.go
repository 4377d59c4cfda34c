// Package exchange hosts the market data connectors used by the
// trigger-watching tools.
package exchange

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/PrajanyaSahu/binance-bot/internal/metrics"
	"github.com/PrajanyaSahu/binance-bot/internal/signal"
)

const (
	// ProviderStub emits deterministic synthetic ticks (useful for tests and dry-run watch sessions).
	ProviderStub = "stub"
	// ProviderBinance streams mark prices from the Binance futures websocket.
	ProviderBinance = "binance"
)

// Feed represents a pluggable price stream implementation.
type Feed struct {
	provider  string
	symbol    string
	log       zerolog.Logger
	stubStart float64
	stubStep  float64
	interval  time.Duration
}

// Option configures Feed construction parameters.
type Option func(*Feed)

// WithStubPrices overrides the synthetic price walk of the stub provider.
func WithStubPrices(start, step float64) Option {
	return func(f *Feed) {
		f.stubStart = start
		f.stubStep = step
	}
}

// WithStubInterval overrides the cadence of the stub provider.
func WithStubInterval(d time.Duration) Option {
	return func(f *Feed) {
		if d > 0 {
			f.interval = d
		}
	}
}

// NewFeed constructs a feed for one symbol backed by the requested provider.
func NewFeed(provider, symbol string, log zerolog.Logger, opts ...Option) *Feed {
	if provider == "" {
		provider = ProviderStub
	}
	f := &Feed{
		provider:  strings.ToLower(provider),
		symbol:    strings.ToUpper(symbol),
		log:       log,
		stubStart: 100.0,
		stubStep:  0.1,
		interval:  500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run pushes ticks onto the provided channel until the context is canceled.
func (f *Feed) Run(ctx context.Context, out chan<- signal.Tick) error {
	switch f.provider {
	case ProviderBinance:
		return f.runMarkPrice(ctx, out)
	default:
		return f.runStub(ctx, out)
	}
}

func (f *Feed) runStub(ctx context.Context, out chan<- signal.Tick) error {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	px := f.stubStart
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ts := <-ticker.C:
			px += f.stubStep
			tick := signal.Tick{Symbol: f.symbol, Price: px, Ts: ts}
			select {
			case out <- tick:
				metrics.TicksTotal.WithLabelValues(f.symbol).Inc()
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
