// Package history keeps a bounded in-memory timeline of status changes with compaction support
package history

import (
	"sync"
	"time"

	"github.com/studywatch/platform/internal/status"
)

// Entry represents one recorded status change.
type Entry struct {
	At   time.Time     `json:"at"`
	From status.Status `json:"from"`
	To   status.Status `json:"to"`
	EAR  float64       `json:"ear"`
	MAR  float64       `json:"mar"`
}

// Summary represents a compacted timeline segment.
type Summary struct {
	Start  time.Time             `json:"start"`
	End    time.Time             `json:"end"`
	Counts map[status.Status]int `json:"counts"`
}

const maxSummaries = 5

// Timeline implements in-memory status history with compaction.
type Timeline struct {
	mu        sync.RWMutex
	entries   []Entry
	summaries []Summary
	maxSize   int
	compacted time.Time // Entries before this time have been compacted
}

// NewTimeline creates a timeline keeping at most maxEntries raw entries.
func NewTimeline(maxEntries int) *Timeline {
	return &Timeline{
		entries: make([]Entry, 0, maxEntries),
		maxSize: maxEntries,
	}
}

// Add records a status change.
func (t *Timeline) Add(from, to status.Status, ear, mar float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, Entry{
		At:   time.Now(),
		From: from,
		To:   to,
		EAR:  ear,
		MAR:  mar,
	})

	if len(t.entries) > t.maxSize {
		t.entries = t.entries[len(t.entries)-t.maxSize:]
	}
}

// Recent returns the status changes within the given window, oldest first.
func (t *Timeline) Recent(window time.Duration) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cutoff := time.Now().Add(-window)
	var result []Entry
	for _, e := range t.entries {
		if !e.At.Before(cutoff) && e.At.After(t.compacted) {
			result = append(result, e)
		}
	}
	return result
}

// Compact collapses entries older than the threshold into a per-status
// count summary and prunes them from the raw timeline.
func (t *Timeline) Compact(olderThan time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	counts := make(map[status.Status]int)
	var start, end time.Time

	for _, e := range t.entries {
		if e.At.Before(cutoff) && e.At.After(t.compacted) {
			if start.IsZero() || e.At.Before(start) {
				start = e.At
			}
			if e.At.After(end) {
				end = e.At
			}
			counts[e.To]++
		}
	}
	if len(counts) == 0 {
		return
	}

	t.summaries = append(t.summaries, Summary{Start: start, End: end, Counts: counts})
	if end.After(t.compacted) {
		t.compacted = end
	}

	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.At.After(t.compacted) {
			kept = append(kept, e)
		}
	}
	t.entries = kept

	if len(t.summaries) > maxSummaries {
		t.summaries = t.summaries[len(t.summaries)-maxSummaries:]
	}
}

// Summaries returns a copy of the compacted segments.
func (t *Timeline) Summaries() []Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make([]Summary, len(t.summaries))
	copy(result, t.summaries)
	return result
}

// Entries returns a copy of all raw entries.
func (t *Timeline) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make([]Entry, len(t.entries))
	copy(result, t.entries)
	return result
}
