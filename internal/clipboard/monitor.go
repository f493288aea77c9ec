// Package clipboard polls the system clipboard and feeds observed copies
// to the usage tracker.
package clipboard

import (
	"context"
	"log"
	"time"

	"github.com/atotto/clipboard"
)

// Recorder receives clipboard values that survive filtering.
type Recorder interface {
	Record(value string)
}

// Monitor samples the system clipboard on an interval. Before a value
// reaches the recorder it passes the upstream filter: empty reads and
// values over maxLength runes are dropped, and a value identical to the
// previous sample is suppressed so holding the same clipboard content does
// not reaffirm it every tick.
type Monitor struct {
	recorder  Recorder
	interval  time.Duration
	maxLength int
	last      string

	// readFn is swappable in tests; defaults to the system clipboard.
	readFn func() (string, error)
}

// NewMonitor creates a monitor. interval and maxLength fall back to sane
// values when non-positive.
func NewMonitor(recorder Recorder, interval time.Duration, maxLength int) *Monitor {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	if maxLength <= 0 {
		maxLength = 500
	}
	return &Monitor{
		recorder:  recorder,
		interval:  interval,
		maxLength: maxLength,
		readFn:    clipboard.ReadAll,
	}
}

// Start begins polling until ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	// Prime with the current clipboard content so whatever was copied
	// before startup is not counted as a fresh copy.
	if value, err := m.readFn(); err == nil {
		m.last = value
	}

	ticker := time.NewTicker(m.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.poll()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *Monitor) poll() {
	value, err := m.readFn()
	if err != nil {
		log.Printf("Failed to read clipboard: %v", err)
		return
	}

	if value == "" || value == m.last {
		return
	}
	m.last = value

	if len([]rune(value)) > m.maxLength {
		return
	}

	m.recorder.Record(value)
}
