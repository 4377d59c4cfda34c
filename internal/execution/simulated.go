package execution

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/PrajanyaSahu/binance-bot/internal/metrics"
)

// ResultRecorder captures submission results for later inspection.
type ResultRecorder interface {
	Record(OrderResult)
}

// Simulated is the dry-run executor: it never opens a network connection.
// Every Submit logs the would-be order and synthesizes a DRY_RUN result
// echoing the request fields.
type Simulated struct {
	log      zerolog.Logger
	ledger   *Ledger
	recorder ResultRecorder
	nextID   atomic.Int64
}

// NewSimulated wraps a logger and an optional recorder for dry-run sessions.
func NewSimulated(log zerolog.Logger, recorder ResultRecorder) *Simulated {
	return &Simulated{
		log:      log,
		ledger:   NewLedger(16),
		recorder: recorder,
	}
}

// Ledger exposes the in-memory record of simulated submissions.
func (s *Simulated) Ledger() *Ledger { return s.ledger }

// Submit logs the simulated order and records a DRY_RUN result.
func (s *Simulated) Submit(_ context.Context, req OrderRequest) OrderResult {
	result := resultFrom(req, StatusDryRun)
	result.OrderID = s.nextID.Add(1)

	event := s.log.Info().
		Str("sym", req.Symbol).
		Str("side", string(req.Side)).
		Str("type", string(req.Type)).
		Str("qty", req.Qty.String())
	if !req.Price.IsZero() {
		event = event.Str("px", req.Price.String())
	}
	if !req.StopPrice.IsZero() {
		event = event.Str("stop", req.StopPrice.String())
	}
	event.Msg("dry-run: order not sent")

	s.ledger.Record(result)
	if s.recorder != nil {
		s.recorder.Record(result)
	}
	metrics.OrdersTotal.WithLabelValues(req.Symbol, string(req.Side), string(result.Status)).Inc()
	return result
}

// Query returns the recorded result for a simulated order ID.
func (s *Simulated) Query(_ context.Context, symbol string, orderID int64) (OrderResult, error) {
	for _, result := range s.ledger.Snapshot() {
		if result.Symbol == symbol && result.OrderID == orderID {
			return result, nil
		}
	}
	return OrderResult{}, fmt.Errorf("unknown simulated order %d for %s", orderID, symbol)
}

// Cancel logs the simulated cancellation.
func (s *Simulated) Cancel(_ context.Context, symbol string, orderID int64) error {
	s.log.Info().Str("sym", symbol).Int64("order_id", orderID).Msg("dry-run: cancel not sent")
	return nil
}
