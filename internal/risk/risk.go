// Package risk applies static per-order guard rails before submission.
package risk

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/PrajanyaSahu/binance-bot/internal/execution"
)

// Limits caps the size of any single order. Zero values disable a check.
type Limits struct {
	MaxOrderQty         decimal.Decimal
	MaxNotionalPerTrade decimal.Decimal
}

// FromConfig converts the float config leaves into decimal limits.
func FromConfig(maxQty, maxNotional float64) Limits {
	return Limits{
		MaxOrderQty:         decimal.NewFromFloat(maxQty),
		MaxNotionalPerTrade: decimal.NewFromFloat(maxNotional),
	}
}

// Check rejects requests exceeding the configured caps. Market orders
// carry no price, so the notional cap only applies to priced orders.
func (l Limits) Check(req execution.OrderRequest) error {
	if l.MaxOrderQty.IsPositive() && req.Qty.GreaterThan(l.MaxOrderQty) {
		return fmt.Errorf("order qty %s exceeds limit %s", req.Qty, l.MaxOrderQty)
	}
	if l.MaxNotionalPerTrade.IsPositive() && !req.Price.IsZero() {
		if notional := req.Notional(); notional.GreaterThan(l.MaxNotionalPerTrade) {
			return fmt.Errorf("order notional %s exceeds limit %s", notional, l.MaxNotionalPerTrade)
		}
	}
	return nil
}
