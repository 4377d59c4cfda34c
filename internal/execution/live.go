package execution

import (
	"context"
	"errors"

	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/PrajanyaSahu/binance-bot/internal/metrics"
)

// Live submits orders to Binance USDT-M futures through the go-binance
// connector. One create-order call per Submit; transport and exchange
// failures are logged and surfaced as ERROR results, never retried.
type Live struct {
	client   *futures.Client
	log      zerolog.Logger
	recorder ResultRecorder
}

// NewLive builds a live executor from API credentials. Testnet routing is
// a package-level switch in the connector and must be set before the
// client is constructed.
func NewLive(apiKey, apiSecret string, testnet bool, log zerolog.Logger, recorder ResultRecorder) *Live {
	futures.UseTestnet = testnet
	return &Live{
		client:   futures.NewClient(apiKey, apiSecret),
		log:      log,
		recorder: recorder,
	}
}

// Submit maps the request onto one create-order call.
func (l *Live) Submit(ctx context.Context, req OrderRequest) OrderResult {
	l.log.Info().
		Str("sym", req.Symbol).
		Str("side", string(req.Side)).
		Str("type", string(req.Type)).
		Str("qty", req.Qty.String()).
		Msg("submitting order")

	svc := l.client.NewCreateOrderService().
		Symbol(req.Symbol).
		Side(toFuturesSide(req.Side)).
		Type(toFuturesType(req.Type)).
		Quantity(req.Qty.String()).
		NewClientOrderID(req.ClientID)
	if req.Type == Limit || req.Type == StopLimit {
		tif := req.TimeInForce
		if tif == "" {
			tif = "GTC"
		}
		svc = svc.Price(req.Price.String()).TimeInForce(futures.TimeInForceType(tif))
	}
	if req.Type == StopLimit || req.Type == StopMarket {
		svc = svc.StopPrice(req.StopPrice.String())
	}
	if req.ReduceOnly {
		svc = svc.ReduceOnly(true)
	}

	resp, err := svc.Do(ctx)
	if err != nil {
		l.logSubmitError(req, err)
		result := resultFrom(req, StatusError)
		result.Error = err.Error()
		l.record(result)
		return result
	}

	result := resultFrom(req, statusFrom(resp.Status))
	result.OrderID = resp.OrderID
	l.log.Info().
		Int64("order_id", resp.OrderID).
		Str("status", string(result.Status)).
		Msg("order accepted")
	l.record(result)
	return result
}

// Query fetches the current state of a resting order.
func (l *Live) Query(ctx context.Context, symbol string, orderID int64) (OrderResult, error) {
	order, err := l.client.NewGetOrderService().Symbol(symbol).OrderID(orderID).Do(ctx)
	if err != nil {
		return OrderResult{}, err
	}
	return OrderResult{
		Status:    statusFrom(order.Status),
		Symbol:    order.Symbol,
		Side:      Side(order.Side),
		Type:      OrderType(order.Type),
		Qty:       parseDec(order.OrigQuantity),
		Price:     parseDec(order.Price),
		StopPrice: parseDec(order.StopPrice),
		OrderID:   order.OrderID,
		ClientID:  order.ClientOrderID,
	}, nil
}

// Cancel removes a resting order.
func (l *Live) Cancel(ctx context.Context, symbol string, orderID int64) error {
	_, err := l.client.NewCancelOrderService().Symbol(symbol).OrderID(orderID).Do(ctx)
	return err
}

func (l *Live) record(result OrderResult) {
	if l.recorder != nil {
		l.recorder.Record(result)
	}
	metrics.OrdersTotal.WithLabelValues(result.Symbol, string(result.Side), string(result.Status)).Inc()
}

func (l *Live) logSubmitError(req OrderRequest, err error) {
	event := l.log.Error().Err(err).Str("sym", req.Symbol).Str("side", string(req.Side))
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		event = event.Int64("code", apiErr.Code)
	}
	event.Msg("order submission failed")
}

func toFuturesSide(s Side) futures.SideType {
	if s == Sell {
		return futures.SideTypeSell
	}
	return futures.SideTypeBuy
}

func toFuturesType(t OrderType) futures.OrderType {
	switch t {
	case Limit:
		return futures.OrderTypeLimit
	case StopLimit:
		return futures.OrderTypeStop
	case StopMarket:
		return futures.OrderTypeStopMarket
	default:
		return futures.OrderTypeMarket
	}
}

func statusFrom(s futures.OrderStatusType) Status {
	switch s {
	case futures.OrderStatusTypeFilled:
		return StatusFilled
	case futures.OrderStatusTypeCanceled, futures.OrderStatusTypeExpired:
		return StatusCanceled
	case futures.OrderStatusTypeRejected:
		return StatusError
	default:
		return StatusNew
	}
}

func parseDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
