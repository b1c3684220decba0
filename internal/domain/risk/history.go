package risk

import (
	"sync"
	"time"
)

// HistoryEntry is the per-assessment summary retained for diagnostics.
type HistoryEntry struct {
	EntityID     string    `json:"entity_id"`
	TotalScore   float64   `json:"total_score"`
	Confidence   float64   `json:"confidence"`
	Completeness float64   `json:"completeness"`
	Timestamp    time.Time `json:"timestamp"`
}

// History is a bounded FIFO log of assessment summaries.  It is append-only
// and never read back into scoring; eviction of the oldest entry is atomic
// with the append.
type History struct {
	mu      sync.Mutex
	entries []HistoryEntry
	cap     int
}

// NewHistory builds a log bounded to capacity entries; non-positive
// capacities fall back to the default of 1000.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1000
	}
	return &History{cap: capacity}
}

// Append records one summary, evicting the oldest entry when full.
func (h *History) Append(e HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == h.cap {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.cap-1]
	}
	h.entries = append(h.entries, e)
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Snapshot returns a copy of the retained entries, oldest first.
func (h *History) Snapshot() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
