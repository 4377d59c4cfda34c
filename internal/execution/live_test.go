package execution

import (
	"testing"

	"github.com/adshao/go-binance/v2/futures"
)

func TestToFuturesSide(t *testing.T) {
	if toFuturesSide(Buy) != futures.SideTypeBuy {
		t.Fatalf("BUY mapped incorrectly")
	}
	if toFuturesSide(Sell) != futures.SideTypeSell {
		t.Fatalf("SELL mapped incorrectly")
	}
}

func TestToFuturesType(t *testing.T) {
	cases := map[OrderType]futures.OrderType{
		Market:     futures.OrderTypeMarket,
		Limit:      futures.OrderTypeLimit,
		StopLimit:  futures.OrderTypeStop,
		StopMarket: futures.OrderTypeStopMarket,
	}
	for in, want := range cases {
		if got := toFuturesType(in); got != want {
			t.Fatalf("%s mapped to %s, want %s", in, got, want)
		}
	}
}

func TestStatusFrom(t *testing.T) {
	if statusFrom(futures.OrderStatusTypeFilled) != StatusFilled {
		t.Fatalf("FILLED mapped incorrectly")
	}
	if statusFrom(futures.OrderStatusTypeNew) != StatusNew {
		t.Fatalf("NEW mapped incorrectly")
	}
	if statusFrom(futures.OrderStatusTypeCanceled) != StatusCanceled {
		t.Fatalf("CANCELED mapped incorrectly")
	}
	if statusFrom(futures.OrderStatusTypeRejected) != StatusError {
		t.Fatalf("REJECTED mapped incorrectly")
	}
}

func TestParseDec(t *testing.T) {
	if !parseDec("123.45").Equal(parseDec("123.450")) {
		t.Fatalf("decimal parse mismatch")
	}
	if !parseDec("garbage").IsZero() {
		t.Fatalf("expected zero for unparsable input")
	}
}
