package strategy

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/PrajanyaSahu/binance-bot/internal/execution"
)

// OCOPair holds the two legs of a one-cancels-the-other emulation: a
// take-profit limit order on the given side and a stop-market order on
// the opposite side. Binance futures has no native cross-order atomicity
// for this pattern, so the legs are independent orders.
type OCOPair struct {
	TakeProfit execution.OrderRequest
	StopLoss   execution.OrderRequest
}

// BuildOCO constructs both legs from validated inputs.
func BuildOCO(symbol string, side execution.Side, qty, tp, sl decimal.Decimal) OCOPair {
	takeProfit := execution.NewRequest(symbol, side, execution.Limit, qty)
	takeProfit.Price = tp
	takeProfit.TimeInForce = "GTC"

	stopLoss := execution.NewRequest(symbol, side.Opposite(), execution.StopMarket, qty)
	stopLoss.StopPrice = sl

	return OCOPair{TakeProfit: takeProfit, StopLoss: stopLoss}
}

// OCORunner places and optionally watches an OCO pair.
type OCORunner struct {
	exec execution.Executor
	log  zerolog.Logger
}

// NewOCORunner wires an executor and logger into a runner.
func NewOCORunner(exec execution.Executor, log zerolog.Logger) *OCORunner {
	return &OCORunner{exec: exec, log: log}
}

// Place submits both legs sequentially. Each leg's outcome is logged
// independently; a failed take-profit leg does not stop the stop-loss
// leg, and there is no rollback of a leg that already went through.
func (r *OCORunner) Place(ctx context.Context, pair OCOPair) (tp, sl execution.OrderResult) {
	tp = r.exec.Submit(ctx, pair.TakeProfit)
	if !tp.OK() {
		r.log.Error().Str("err", tp.Error).Msg("take-profit leg failed, still placing stop leg")
	}
	sl = r.exec.Submit(ctx, pair.StopLoss)
	if !sl.OK() {
		r.log.Error().Str("err", sl.Error).Msg("stop-loss leg failed")
	}
	return tp, sl
}

// Watch polls both legs and cancels the sibling once one of them fills.
// It returns when a leg reaches a terminal state or the context ends.
// Poll errors are logged and the loop keeps going.
func (r *OCORunner) Watch(ctx context.Context, symbol string, tpID, slID int64, pollInterval time.Duration) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		tpState, err := r.exec.Query(ctx, symbol, tpID)
		if err != nil {
			r.log.Warn().Err(err).Msg("take-profit poll failed")
			continue
		}
		slState, err := r.exec.Query(ctx, symbol, slID)
		if err != nil {
			r.log.Warn().Err(err).Msg("stop-loss poll failed")
			continue
		}
		r.log.Debug().
			Str("tp_status", string(tpState.Status)).
			Str("sl_status", string(slState.Status)).
			Msg("OCO poll")

		switch {
		case tpState.Status == execution.StatusFilled:
			if err := r.exec.Cancel(ctx, symbol, slID); err != nil {
				r.log.Error().Err(err).Msg("failed to cancel stop leg")
				return err
			}
			r.log.Info().Msg("take-profit filled, canceled stop leg")
			return nil
		case slState.Status == execution.StatusFilled:
			if err := r.exec.Cancel(ctx, symbol, tpID); err != nil {
				r.log.Error().Err(err).Msg("failed to cancel take-profit leg")
				return err
			}
			r.log.Info().Msg("stop-loss filled, canceled take-profit leg")
			return nil
		case tpState.Status == execution.StatusCanceled && slState.Status == execution.StatusCanceled:
			r.log.Info().Msg("both legs canceled externally, stopping watch")
			return nil
		}
	}
}
