package strategy

import (
	"context"
	"fmt"
	"sync"

	"github.com/PrajanyaSahu/binance-bot/internal/execution"
)

// stubExecutor records submissions and lets tests script failures, query
// statuses, and cancellations.
type stubExecutor struct {
	mu        sync.Mutex
	submitted []execution.OrderRequest
	failAt    map[int]string                     // submission index -> error text
	statuses  map[int64]execution.Status         // order ID -> status reported by Query
	canceled  []int64
	nextID    int64
}

func newStubExecutor() *stubExecutor {
	return &stubExecutor{
		failAt:   make(map[int]string),
		statuses: make(map[int64]execution.Status),
	}
}

func (s *stubExecutor) Submit(_ context.Context, req execution.OrderRequest) execution.OrderResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := len(s.submitted)
	s.submitted = append(s.submitted, req)
	s.nextID++

	if msg, ok := s.failAt[idx]; ok {
		return execution.OrderResult{
			Status: execution.StatusError,
			Symbol: req.Symbol,
			Side:   req.Side,
			Type:   req.Type,
			Qty:    req.Qty,
			Error:  msg,
		}
	}
	return execution.OrderResult{
		Status:  execution.StatusNew,
		Symbol:  req.Symbol,
		Side:    req.Side,
		Type:    req.Type,
		Qty:     req.Qty,
		Price:   req.Price,
		OrderID: s.nextID,
	}
}

func (s *stubExecutor) Query(_ context.Context, symbol string, orderID int64) (execution.OrderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[orderID]
	if !ok {
		return execution.OrderResult{}, fmt.Errorf("unknown order %d", orderID)
	}
	return execution.OrderResult{Status: status, Symbol: symbol, OrderID: orderID}, nil
}

func (s *stubExecutor) Cancel(_ context.Context, _ string, orderID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canceled = append(s.canceled, orderID)
	return nil
}

func (s *stubExecutor) requests() []execution.OrderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]execution.OrderRequest, len(s.submitted))
	copy(out, s.submitted)
	return out
}
