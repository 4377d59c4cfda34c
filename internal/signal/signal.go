// Package signal standardizes payloads shared between data ingestion and
// trigger-watching layers.
package signal

import "time"

// Tick models the price observation the stop-limit watcher consumes.
type Tick struct {
	Symbol string
	Price  float64
	Ts     time.Time
}
