// Package memtrack provides a live-object ledger for payload lifetime
// accounting. Installed through variant.SetTracker, it records every
// payload construction and clears the record on destruction; whatever is
// left outstanding is a leak, reported with the payload's type label and
// the call site that constructed it.
package memtrack

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/variant"
)

// Record describes one live tracked payload.
type Record struct {
	ID    uint64
	Label string
	Site  string
	At    time.Time
}

// Tracker is a mutex-guarded ledger of live payloads. Create one with
// New; it is safe for concurrent use.
type Tracker struct {
	mu   sync.Mutex
	next uint64
	live map[uint64]Record
}

var _ variant.Tracker = (*Tracker)(nil)

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{live: make(map[uint64]Record)}
}

// Track records a live payload under label and returns its id. The
// recorded site is the nearest caller outside the container package, so
// reports name the code that constructed the payload, not the container
// internals that dispatched the construction.
func (t *Tracker) Track(label string) uint64 {
	site := callSite()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.live[t.next] = Record{ID: t.next, Label: label, Site: site, At: time.Now()}
	return t.next
}

// Release clears the record for id. It reports false for ids that are
// unknown or already released.
func (t *Tracker) Release(id uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.live[id]; !ok {
		return false
	}
	delete(t.live, id)
	return true
}

// Live returns the number of outstanding records.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// TotalTracked returns the number of payloads ever tracked, released or
// not. It is monotonic across Reset.
func (t *Tracker) TotalTracked() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.next
}

// Records returns a snapshot of the outstanding records, ordered by id
// (construction order).
func (t *Tracker) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, 0, len(t.live))
	for _, r := range t.live {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Reset drops all outstanding records. Ids stay unique across resets.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.live = make(map[uint64]Record)
}

// Report logs every outstanding record plus a summary line and returns
// the leak count. A nil logger suppresses the logging but still counts.
func (t *Tracker) Report(l *zap.Logger) int {
	if l == nil {
		l = zap.NewNop()
	}
	records := t.Records()
	for _, r := range records {
		l.Warn("leaked payload",
			zap.Uint64("id", r.ID),
			zap.String("label", r.Label),
			zap.String("site", r.Site),
			zap.Duration("age", time.Since(r.At)))
	}
	if len(records) > 0 {
		l.Warn("leak report",
			zap.Int("leaked", len(records)),
			zap.Uint64("total_tracked", t.TotalTracked()))
	} else {
		l.Info("leak report clean",
			zap.Uint64("total_tracked", t.TotalTracked()))
	}
	return len(records)
}

// callSite walks past the container's own frames so the record points at
// the code that constructed the payload. Direct callers (tests, tools)
// get their own location.
func callSite() string {
	var pcs [8]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	fallback := ""
	for {
		f, more := frames.Next()
		if f.File != "" && fallback == "" {
			fallback = fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		if f.Function != "" && !strings.Contains(f.Function, "wippyai/variant.") {
			return fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		if !more {
			break
		}
	}
	if fallback == "" {
		return "unknown"
	}
	return fallback
}
