// Package orchestrator coordinates camera capture, inference, and alerting
package orchestrator

import "time"

// Orchestrator configuration constants
const (
	// Channel buffer sizes
	StatusEventBuffer = 32

	// Frames tolerated without any capture before the loop logs a warning
	MaxConsecutiveCaptureFailures = 10

	// Status timeline compaction
	HistoryCompactInterval = 10 * time.Minute
	HistoryRawWindow       = 5 * time.Minute

	// Raw status changes kept before eviction
	HistoryMaxEntries = 512
)
