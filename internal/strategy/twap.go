// Package strategy builds and runs the multi-order execution plans: TWAP
// slicing, grid ladders, OCO pairs, and the stop-limit trigger watch.
package strategy

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/PrajanyaSahu/binance-bot/internal/execution"
)

// qtyPrecision bounds per-chunk rounding so slicing never over-orders.
const qtyPrecision = 8

// TWAPPlan is an ordered sequence of equal market-order slices with a
// fixed delay between submissions.
type TWAPPlan struct {
	Symbol   string
	Side     execution.Side
	Chunks   []decimal.Decimal
	Interval time.Duration
}

// Total returns the summed quantity across all chunks.
func (p TWAPPlan) Total() decimal.Decimal {
	total := decimal.Zero
	for _, qty := range p.Chunks {
		total = total.Add(qty)
	}
	return total
}

// BuildTWAP slices the total quantity into `chunks` equal parts, rounded
// down to 8 decimal places; the final chunk absorbs the remainder so the
// plan total is exactly the requested total. The inter-chunk interval is
// duration/chunks.
func BuildTWAP(symbol string, side execution.Side, total decimal.Decimal, chunks int, duration time.Duration) TWAPPlan {
	per := total.Div(decimal.NewFromInt(int64(chunks))).Truncate(qtyPrecision)
	remainder := total.Sub(per.Mul(decimal.NewFromInt(int64(chunks))))

	slices := make([]decimal.Decimal, chunks)
	for i := range slices {
		slices[i] = per
	}
	slices[chunks-1] = slices[chunks-1].Add(remainder)

	return TWAPPlan{
		Symbol:   symbol,
		Side:     side,
		Chunks:   slices,
		Interval: duration / time.Duration(chunks),
	}
}

// TWAPRunner submits plan chunks on a timer.
type TWAPRunner struct {
	exec execution.Executor
	log  zerolog.Logger
}

// NewTWAPRunner wires an executor and logger into a runner.
func NewTWAPRunner(exec execution.Executor, log zerolog.Logger) *TWAPRunner {
	return &TWAPRunner{exec: exec, log: log}
}

// Run submits one market order per chunk, waiting the plan interval
// between submissions except after the final chunk. A failed chunk is
// logged and the loop continues; cancellation stops before the next
// submission.
func (r *TWAPRunner) Run(ctx context.Context, plan TWAPPlan) []execution.OrderResult {
	r.log.Info().
		Str("sym", plan.Symbol).
		Str("side", string(plan.Side)).
		Str("total", plan.Total().String()).
		Int("chunks", len(plan.Chunks)).
		Dur("interval", plan.Interval).
		Msg("starting TWAP")

	results := make([]execution.OrderResult, 0, len(plan.Chunks))
	for i, qty := range plan.Chunks {
		req := execution.NewRequest(plan.Symbol, plan.Side, execution.Market, qty)
		r.log.Info().Int("chunk", i+1).Int("of", len(plan.Chunks)).Str("qty", qty.String()).Msg("TWAP chunk")

		result := r.exec.Submit(ctx, req)
		results = append(results, result)
		if !result.OK() {
			r.log.Error().Int("chunk", i+1).Str("err", result.Error).Msg("chunk failed, continuing")
		}

		if i == len(plan.Chunks)-1 || plan.Interval <= 0 {
			continue
		}
		timer := time.NewTimer(plan.Interval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			r.log.Warn().Int("submitted", len(results)).Msg("TWAP interrupted")
			return results
		}
	}
	return results
}
