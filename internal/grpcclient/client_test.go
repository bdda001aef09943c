package grpcclient

import (
	"testing"
	"time"

	"github.com/studywatch/platform/internal/resilience"
	pb "github.com/studywatch/platform/pkg/pb"
)

func TestBreakerGuardsVisionCalls(t *testing.T) {
	cb := resilience.New(resilience.FastConfig())
	if cb.State() != resilience.Closed {
		t.Errorf("initial state = %v, want Closed", cb.State())
	}

	for i := 0; i < resilience.FastThreshold; i++ {
		cb.Failure()
	}
	if cb.State() != resilience.Open {
		t.Errorf("state after %d failures = %v, want Open", resilience.FastThreshold, cb.State())
	}
	if err := cb.Allow(); err != resilience.ErrOpen {
		t.Errorf("Allow() = %v, want ErrOpen", err)
	}
}

func TestTimeoutConstants(t *testing.T) {
	if DetectTimeout != 2*time.Second {
		t.Errorf("DetectTimeout = %v, want 2s", DetectTimeout)
	}
	if SynthesizeTimeout != 15*time.Second {
		t.Errorf("SynthesizeTimeout = %v, want 15s", SynthesizeTimeout)
	}
}

func TestDetectRequest(t *testing.T) {
	frame := []byte{0xFF, 0xD8, 0xFF, 0xE0} // JPEG magic bytes
	req := &pb.DetectRequest{
		ImageData: frame,
		Format:    "jpeg",
		MaxFaces:  2,
	}

	if len(req.ImageData) != 4 {
		t.Errorf("ImageData length = %d, want 4", len(req.ImageData))
	}
	if req.Format != "jpeg" {
		t.Errorf("Format = %q, want %q", req.Format, "jpeg")
	}
	if req.MaxFaces != 2 {
		t.Errorf("MaxFaces = %d, want 2", req.MaxFaces)
	}
}

func TestSynthesizeRequest(t *testing.T) {
	req := &pb.SynthesizeRequest{
		Text:       "Please return to your study position",
		SampleRate: 22050,
	}

	if req.Text == "" {
		t.Error("Text should not be empty")
	}
	if req.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", req.SampleRate)
	}
}
