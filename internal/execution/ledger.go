package execution

import "sync"

// Ledger stores submission results in memory for quick inspection, mainly
// so dry-run sessions and tests can assert on what was "sent".
type Ledger struct {
	mu      sync.Mutex
	results []OrderResult
}

// NewLedger creates an empty ledger optionally pre-sizing storage.
func NewLedger(capacity int) *Ledger {
	if capacity < 0 {
		capacity = 0
	}
	return &Ledger{results: make([]OrderResult, 0, capacity)}
}

// Record appends a result to the ledger.
func (l *Ledger) Record(result OrderResult) {
	l.mu.Lock()
	l.results = append(l.results, result)
	l.mu.Unlock()
}

// Snapshot returns a copy of the recorded results.
func (l *Ledger) Snapshot() []OrderResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]OrderResult, len(l.results))
	copy(out, l.results)
	return out
}

// Reset clears all stored results.
func (l *Ledger) Reset() {
	l.mu.Lock()
	l.results = l.results[:0]
	l.mu.Unlock()
}
