package strategy

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/PrajanyaSahu/binance-bot/internal/execution"
	"github.com/PrajanyaSahu/binance-bot/internal/signal"
)

// BuildStopLimit constructs the conditional order: the exchange holds it
// until the stop trigger is touched, then works it as a limit order.
func BuildStopLimit(symbol string, side execution.Side, qty, stop, limit decimal.Decimal) execution.OrderRequest {
	req := execution.NewRequest(symbol, side, execution.StopLimit, qty)
	req.StopPrice = stop
	req.Price = limit
	req.TimeInForce = "GTC"
	return req
}

// StopLimitWatcher implements the local variant of the stop-limit order:
// instead of handing the trigger to the exchange, it watches a price
// stream and places a plain limit order once the stop level is touched.
type StopLimitWatcher struct {
	exec execution.Executor
	log  zerolog.Logger
}

// NewStopLimitWatcher wires an executor and logger into a watcher.
func NewStopLimitWatcher(exec execution.Executor, log zerolog.Logger) *StopLimitWatcher {
	return &StopLimitWatcher{exec: exec, log: log}
}

// Triggered reports whether a price touches the stop level for the given
// side: a BUY triggers at or above the stop, a SELL at or below it.
func Triggered(side execution.Side, price, stop decimal.Decimal) bool {
	if side == execution.Buy {
		return price.GreaterThanOrEqual(stop)
	}
	return price.LessThanOrEqual(stop)
}

// Run consumes ticks until the stop level is touched, then submits the
// limit leg of the request. The boolean reports whether the trigger fired
// before the context ended.
func (w *StopLimitWatcher) Run(ctx context.Context, req execution.OrderRequest, ticks <-chan signal.Tick) (execution.OrderResult, bool) {
	w.log.Info().
		Str("sym", req.Symbol).
		Str("side", string(req.Side)).
		Str("stop", req.StopPrice.String()).
		Str("limit", req.Price.String()).
		Msg("watching for stop trigger")

	for {
		select {
		case <-ctx.Done():
			w.log.Warn().Msg("stop-limit watch interrupted before trigger")
			return execution.OrderResult{}, false
		case tick, ok := <-ticks:
			if !ok {
				w.log.Warn().Msg("tick stream closed before trigger")
				return execution.OrderResult{}, false
			}
			price := decimal.NewFromFloat(tick.Price)
			w.log.Debug().Str("sym", tick.Symbol).Str("px", price.String()).Msg("tick")
			if !Triggered(req.Side, price, req.StopPrice) {
				continue
			}

			w.log.Info().Str("px", price.String()).Msg("stop price hit, placing limit order")
			limitReq := req
			limitReq.Type = execution.Limit
			limitReq.StopPrice = decimal.Decimal{}
			return w.exec.Submit(ctx, limitReq), true
		}
	}
}
