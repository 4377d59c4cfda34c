// Package execution handles order construction and submission to the venue.
package execution

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side enumerates order directions.
type Side string

const (
	// Buy indicates a long order.
	Buy Side = "BUY"
	// Sell indicates a short order.
	Sell Side = "SELL"
)

// Opposite returns the other direction, used for stop-loss legs.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// OrderType enumerates the futures order types the tools submit.
type OrderType string

const (
	Market     OrderType = "MARKET"
	Limit      OrderType = "LIMIT"
	StopLimit  OrderType = "STOP"
	StopMarket OrderType = "STOP_MARKET"
)

// Status enumerates outcomes attached to an OrderResult.
type Status string

const (
	// StatusDryRun marks a simulated submission that never left the process.
	StatusDryRun Status = "DRY_RUN"
	// StatusNew marks a resting order accepted by the exchange.
	StatusNew Status = "NEW"
	// StatusFilled marks an order the exchange reports as fully executed.
	StatusFilled Status = "FILLED"
	// StatusCanceled marks an order canceled before completion.
	StatusCanceled Status = "CANCELED"
	// StatusError marks a submission that failed in transport or was rejected.
	StatusError Status = "ERROR"
)

// OrderRequest represents a placement request an executor can process.
// Price is used by LIMIT and STOP orders; StopPrice by STOP and
// STOP_MARKET. Unused fields stay zero.
type OrderRequest struct {
	Symbol      string          `json:"symbol"`
	Side        Side            `json:"side"`
	Type        OrderType       `json:"type"`
	Qty         decimal.Decimal `json:"qty"`
	Price       decimal.Decimal `json:"price,omitempty"`
	StopPrice   decimal.Decimal `json:"stop_price,omitempty"`
	TimeInForce string          `json:"time_in_force,omitempty"`
	ClientID    string          `json:"client_id"`
	ReduceOnly  bool            `json:"reduce_only,omitempty"`
}

// NewRequest builds a request with a fresh client order ID so individual
// submissions stay traceable in the exchange's reports.
func NewRequest(symbol string, side Side, typ OrderType, qty decimal.Decimal) OrderRequest {
	return OrderRequest{
		Symbol:   symbol,
		Side:     side,
		Type:     typ,
		Qty:      qty,
		ClientID: "bot-" + uuid.NewString(),
	}
}

// Notional returns qty*price, or zero for market orders with no price.
func (r OrderRequest) Notional() decimal.Decimal {
	return r.Qty.Mul(r.Price)
}

// OrderResult is the terminal record of one submission attempt. It echoes
// the request fields so the log line alone reconstructs the order.
type OrderResult struct {
	Status    Status          `json:"status"`
	Symbol    string          `json:"symbol"`
	Side      Side            `json:"side"`
	Type      OrderType       `json:"type"`
	Qty       decimal.Decimal `json:"qty"`
	Price     decimal.Decimal `json:"price,omitempty"`
	StopPrice decimal.Decimal `json:"stop_price,omitempty"`
	OrderID   int64           `json:"order_id,omitempty"`
	ClientID  string          `json:"client_id,omitempty"`
	Error     string          `json:"error,omitempty"`
	Ts        time.Time       `json:"ts"`
}

// OK reports whether the submission did not end in an error.
func (r OrderResult) OK() bool { return r.Status != StatusError }

// Executor abstracts the venue so call sites stay identical between
// dry-run and live trading. Implementations never retry: a failed
// submission surfaces as a StatusError result.
type Executor interface {
	Submit(ctx context.Context, req OrderRequest) OrderResult
	Query(ctx context.Context, symbol string, orderID int64) (OrderResult, error)
	Cancel(ctx context.Context, symbol string, orderID int64) error
}

func resultFrom(req OrderRequest, status Status) OrderResult {
	return OrderResult{
		Status:    status,
		Symbol:    req.Symbol,
		Side:      req.Side,
		Type:      req.Type,
		Qty:       req.Qty,
		Price:     req.Price,
		StopPrice: req.StopPrice,
		ClientID:  req.ClientID,
		Ts:        time.Now().UTC(),
	}
}
