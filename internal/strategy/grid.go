package strategy

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/PrajanyaSahu/binance-bot/internal/execution"
)

// GridPlan is a static ladder of limit orders at evenly spaced price
// levels between a lower and an upper bound, both inclusive.
type GridPlan struct {
	Symbol      string
	Side        execution.Side
	QtyPerOrder decimal.Decimal
	Levels      []decimal.Decimal
}

// BuildGrid computes steps+1 levels in arithmetic progression. The final
// level is pinned to the upper bound so division rounding never drifts
// the ladder past it.
func BuildGrid(symbol string, side execution.Side, lower, upper decimal.Decimal, steps int, qty decimal.Decimal) GridPlan {
	stepSize := upper.Sub(lower).Div(decimal.NewFromInt(int64(steps)))
	levels := make([]decimal.Decimal, steps+1)
	for i := 0; i < steps; i++ {
		levels[i] = lower.Add(stepSize.Mul(decimal.NewFromInt(int64(i))))
	}
	levels[steps] = upper

	return GridPlan{
		Symbol:      symbol,
		Side:        side,
		QtyPerOrder: qty,
		Levels:      levels,
	}
}

// GridRunner places the ladder without waiting for fills.
type GridRunner struct {
	exec execution.Executor
	log  zerolog.Logger
}

// NewGridRunner wires an executor and logger into a runner.
func NewGridRunner(exec execution.Executor, log zerolog.Logger) *GridRunner {
	return &GridRunner{exec: exec, log: log}
}

// Run submits one limit order per level. There is no fill monitoring and
// no re-placement after a fill; a failed level is logged and the
// remaining levels are still attempted.
func (r *GridRunner) Run(ctx context.Context, plan GridPlan) []execution.OrderResult {
	r.log.Info().
		Str("sym", plan.Symbol).
		Str("side", string(plan.Side)).
		Int("levels", len(plan.Levels)).
		Str("qty_per_order", plan.QtyPerOrder.String()).
		Msg("placing grid ladder")

	results := make([]execution.OrderResult, 0, len(plan.Levels))
	for i, level := range plan.Levels {
		if ctx.Err() != nil {
			r.log.Warn().Int("placed", len(results)).Msg("grid interrupted")
			return results
		}
		req := execution.NewRequest(plan.Symbol, plan.Side, execution.Limit, plan.QtyPerOrder)
		req.Price = level
		req.TimeInForce = "GTC"

		result := r.exec.Submit(ctx, req)
		results = append(results, result)
		if !result.OK() {
			r.log.Error().Int("level", i).Str("px", level.String()).Str("err", result.Error).Msg("grid level failed, continuing")
		}
	}
	return results
}
