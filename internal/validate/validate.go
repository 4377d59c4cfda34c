// Package validate turns raw CLI strings into typed order fields. All
// functions are pure; a failure is a *FieldError naming the offending
// field, returned before anything is logged or submitted.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PrajanyaSahu/binance-bot/internal/execution"
)

// FieldError identifies which input failed validation and why.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func fieldErr(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Symbol checks the pair looks like an exchange symbol (BTCUSDT, ETHUSDT)
// and normalizes it to upper case.
func Symbol(raw string) (string, error) {
	sym := strings.ToUpper(strings.TrimSpace(raw))
	if len(sym) < 6 {
		return "", fieldErr("symbol", "%q is too short", raw)
	}
	for _, r := range sym {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return "", fieldErr("symbol", "%q contains invalid character %q", raw, r)
		}
	}
	return sym, nil
}

// Side parses BUY or SELL, case-insensitively.
func Side(raw string) (execution.Side, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "BUY":
		return execution.Buy, nil
	case "SELL":
		return execution.Sell, nil
	default:
		return "", fieldErr("side", "must be BUY or SELL, got %q", raw)
	}
}

// Quantity parses a strictly positive decimal quantity.
func Quantity(raw string) (decimal.Decimal, error) {
	return positiveDecimal("qty", raw)
}

// Price parses a strictly positive decimal for the named price field
// (price, stop, limit, tp, sl, lower, upper).
func Price(field, raw string) (decimal.Decimal, error) {
	return positiveDecimal(field, raw)
}

func positiveDecimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fieldErr(field, "%q is not a decimal number", raw)
	}
	if !d.IsPositive() {
		return decimal.Zero, fieldErr(field, "must be > 0, got %s", d)
	}
	return d, nil
}

// StopLimitPrices validates the trigger/limit pair relative to the order
// side: a BUY places its limit at or below the trigger, a SELL at or
// above it.
func StopLimitPrices(side execution.Side, stopRaw, limitRaw string) (stop, limit decimal.Decimal, err error) {
	stop, err = positiveDecimal("stop", stopRaw)
	if err != nil {
		return
	}
	limit, err = positiveDecimal("limit", limitRaw)
	if err != nil {
		return
	}
	if side == execution.Buy && limit.GreaterThan(stop) {
		err = fieldErr("limit", "BUY stop-limit requires limit <= stop (%s > %s)", limit, stop)
	}
	if side == execution.Sell && limit.LessThan(stop) {
		err = fieldErr("limit", "SELL stop-limit requires limit >= stop (%s < %s)", limit, stop)
	}
	return
}

// OCOPrices validates the take-profit/stop-loss pair. For a SELL pair
// (protecting a long) the take-profit sits above the stop-loss; for a BUY
// pair the relationship flips.
func OCOPrices(side execution.Side, tpRaw, slRaw string) (tp, sl decimal.Decimal, err error) {
	tp, err = positiveDecimal("tp", tpRaw)
	if err != nil {
		return
	}
	sl, err = positiveDecimal("sl", slRaw)
	if err != nil {
		return
	}
	if side == execution.Sell && !tp.GreaterThan(sl) {
		err = fieldErr("tp", "SELL pair requires tp > sl (%s <= %s)", tp, sl)
	}
	if side == execution.Buy && !tp.LessThan(sl) {
		err = fieldErr("tp", "BUY pair requires tp < sl (%s >= %s)", tp, sl)
	}
	return
}

// GridBounds validates the price range and step count of a grid ladder.
func GridBounds(lowerRaw, upperRaw string, steps int) (lower, upper decimal.Decimal, err error) {
	lower, err = positiveDecimal("lower", lowerRaw)
	if err != nil {
		return
	}
	upper, err = positiveDecimal("upper", upperRaw)
	if err != nil {
		return
	}
	if !lower.LessThan(upper) {
		err = fieldErr("lower", "must be < upper (%s >= %s)", lower, upper)
		return
	}
	if steps < 1 {
		err = fieldErr("grids", "must be >= 1, got %d", steps)
	}
	return
}

// TWAPParams validates the slicing parameters: total quantity, chunk
// count, and total duration in seconds.
func TWAPParams(totalRaw string, chunks, durationSec int) (total decimal.Decimal, duration time.Duration, err error) {
	total, err = positiveDecimal("total", totalRaw)
	if err != nil {
		return
	}
	if chunks < 1 {
		err = fieldErr("chunks", "must be >= 1, got %d", chunks)
		return
	}
	if durationSec < 0 {
		err = fieldErr("duration", "must be >= 0, got %d", durationSec)
		return
	}
	duration = time.Duration(durationSec) * time.Second
	return
}
