// Package camera provides platform-agnostic webcam frame capture
package camera

import (
	"crypto/md5"
	"os"
)

// Capturer grabs webcam frames with change detection
type Capturer interface {
	Capture() ([]byte, bool)
	CaptureAlways() []byte
	Close()
}

// backend implements platform-specific raw frame capture
type backend interface {
	captureRaw() []byte
	cleanup()
}

// baseCapturer provides shared hash-based change detection
type baseCapturer struct {
	backend
	lastHash [16]byte
	tempDir  string
}

func newBase(b backend, tempDir string) *baseCapturer {
	return &baseCapturer{backend: b, tempDir: tempDir}
}

// Capture grabs a frame and returns it with a changed flag.
// Returns nil if the frame is byte-identical to the previous one.
func (c *baseCapturer) Capture() ([]byte, bool) {
	data := c.captureRaw()
	if data == nil {
		return nil, false
	}
	hash := md5.Sum(data[:min(len(data), 4096)])
	if hash == c.lastHash {
		return nil, false
	}
	c.lastHash = hash
	return data, true
}

// CaptureAlways grabs a frame regardless of change detection
func (c *baseCapturer) CaptureAlways() []byte {
	data := c.captureRaw()
	if data != nil {
		c.lastHash = md5.Sum(data[:min(len(data), 4096)])
	}
	return data
}

func (c *baseCapturer) Close() {
	c.cleanup()
	if c.tempDir != "" {
		os.RemoveAll(c.tempDir)
	}
}
