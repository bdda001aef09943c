//go:build linux

package camera

import (
	"bytes"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

type linuxBackend struct {
	device  string
	tempDir string
}

func (l *linuxBackend) captureRaw() []byte {
	tmpFile := filepath.Join(l.tempDir, "frame.jpg")
	device := l.device
	if device == "" {
		device = "/dev/video0"
	}
	// Try ffmpeg first, fall back to fswebcam
	var cmd *exec.Cmd
	if _, err := exec.LookPath("ffmpeg"); err == nil {
		cmd = exec.Command("ffmpeg", "-y", "-f", "v4l2", "-i", device,
			"-frames:v", "1", "-q:v", "4", tmpFile)
	} else if _, err := exec.LookPath("fswebcam"); err == nil {
		cmd = exec.Command("fswebcam", "-d", device, "--no-banner", tmpFile)
	} else {
		slog.Error("no capture tool found (install ffmpeg or fswebcam)")
		return nil
	}
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

func (l *linuxBackend) cleanup() {}

// New creates a platform-specific webcam capturer
func New(device string) Capturer {
	tmpDir, err := os.MkdirTemp("", "studywatch-camera-*")
	if err != nil {
		slog.Error("failed to create temp dir", "error", err)
		tmpDir = os.TempDir()
	}
	return newBase(&linuxBackend{device: device, tempDir: tmpDir}, tmpDir)
}
