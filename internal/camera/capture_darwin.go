//go:build darwin

package camera

import (
	"bytes"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

type darwinBackend struct {
	device  string
	tempDir string
}

func (d *darwinBackend) captureRaw() []byte {
	tmpFile := filepath.Join(d.tempDir, "frame.jpg")
	args := []string{"-q", "-w", "0.5"}
	if d.device != "" {
		args = append(args, "-d", d.device)
	}
	args = append(args, tmpFile)
	cmd := exec.Command("imagesnap", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		slog.Error("imagesnap failed", "error", err, "stderr", stderr.String())
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

func (d *darwinBackend) cleanup() {}

// New creates a platform-specific webcam capturer
func New(device string) Capturer {
	tmpDir, err := os.MkdirTemp("", "studywatch-camera-*")
	if err != nil {
		slog.Error("failed to create temp dir", "error", err)
		tmpDir = os.TempDir()
	}
	return newBase(&darwinBackend{device: device, tempDir: tmpDir}, tmpDir)
}
