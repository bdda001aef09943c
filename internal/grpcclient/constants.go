// Package grpcclient provides a client for the Python inference gRPC server
package grpcclient

import "time"

// Client configuration defaults
const (
	// Keepalive configuration
	DefaultKeepaliveTime    = 10 * time.Second
	DefaultKeepaliveTimeout = 3 * time.Second

	// Per-call deadlines
	DetectTimeout     = 2 * time.Second
	SynthesizeTimeout = 15 * time.Second
)
