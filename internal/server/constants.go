// Package server provides HTTP and WebSocket handlers
package server

import "time"

// Server configuration constants
const (
	// Per-connection WebSocket rate limiting
	RateLimitMessages = 10          // Max messages per connection per window
	RateLimitWindow   = time.Second // Sliding window duration

	// Default number of sessions returned by the history endpoint
	DefaultSessionLimit = 20
	MaxSessionLimit     = 200

	// Default lookback for the recent-events endpoint, in seconds
	DefaultRecentWindowSec = 300
)
