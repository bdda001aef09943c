//go:build windows

package camera

import (
	"bytes"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

type windowsBackend struct {
	device  string
	tempDir string
}

func (w *windowsBackend) captureRaw() []byte {
	tmpFile := filepath.Join(w.tempDir, "frame.jpg")
	device := w.device
	if device == "" {
		device = "video=Integrated Camera"
	}
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		slog.Error("ffmpeg not found (required for webcam capture on Windows)")
		return nil
	}
	cmd := exec.Command("ffmpeg", "-y", "-f", "dshow", "-i", device,
		"-frames:v", "1", "-q:v", "4", tmpFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		slog.Error("frame capture failed", "error", err, "stderr", stderr.String())
		return nil
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		slog.Error("failed to read captured frame", "error", err)
		return nil
	}
	os.Remove(tmpFile)
	return data
}

func (w *windowsBackend) cleanup() {}

// New creates a platform-specific webcam capturer
func New(device string) Capturer {
	tmpDir, err := os.MkdirTemp("", "studywatch-camera-*")
	if err != nil {
		slog.Error("failed to create temp dir", "error", err)
		tmpDir = os.TempDir()
	}
	return newBase(&windowsBackend{device: device, tempDir: tmpDir}, tmpDir)
}
