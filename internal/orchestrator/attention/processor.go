// Package attention turns raw frames into attentiveness statuses by running
// landmark inference and the per-signal detectors over each frame.
package attention

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg" // frame decoders
	_ "image/png"
	"time"

	"github.com/studywatch/platform/internal/detect/eyes"
	"github.com/studywatch/platform/internal/detect/liveness"
	"github.com/studywatch/platform/internal/detect/mouth"
	"github.com/studywatch/platform/internal/detect/presence"
	"github.com/studywatch/platform/internal/landmark"
	"github.com/studywatch/platform/internal/status"
	"github.com/studywatch/platform/internal/trace"
	pb "github.com/studywatch/platform/pkg/pb"
)

// Fallback frame dimensions when a frame fails to decode. Landmarks are
// normalized, so the ratios only need a consistent aspect.
const (
	fallbackWidth  = 640
	fallbackHeight = 480
)

// VisionClient runs face-mesh inference.
type VisionClient interface {
	DetectLandmarks(ctx context.Context, frame []byte, format string, maxFaces int32) ([]*pb.FaceLandmarks, error)
}

// Result is the outcome of processing one frame. DrowsyCount and YawnCount
// are the classifier's debounce counters at the time the frame was scored.
type Result struct {
	Status      status.Status
	EAR         float64
	MAR         float64
	FaceCount   int
	DrowsyCount int
	YawnCount   int
	Box         landmark.Box
}

// Processor owns the per-frame detection pipeline. Not safe for concurrent
// use; the orchestrator calls it from a single frame loop.
type Processor struct {
	vision   VisionClient
	maxFaces int32

	eyes     *eyes.Tracker
	mouth    *mouth.Detector
	presence *presence.Detector
	liveness *liveness.Detector
	class    *status.Classifier
}

// Config carries the detector thresholds. MARThreshold feeds the status
// classifier; YawnMARThreshold gates the yawn event detector and defaults
// to the stricter mouth.DefaultThreshold when zero.
type Config struct {
	EARThreshold     float64
	MARThreshold     float64
	YawnMARThreshold float64
	DrowsyFrames     int
	YawnFrames       int

	ShortAbsence time.Duration
	LongAbsence  time.Duration

	MaxHashDistance int
	StaticFrames    int
	MaxFaces        int32
}

// NewProcessor creates a processor with the given thresholds.
func NewProcessor(vision VisionClient, cfg Config) *Processor {
	maxFaces := cfg.MaxFaces
	if maxFaces <= 0 {
		maxFaces = 2
	}
	return &Processor{
		vision:   vision,
		maxFaces: maxFaces,
		eyes:     eyes.NewTracker(cfg.EARThreshold),
		mouth:    mouth.NewDetector(cfg.YawnMARThreshold),
		presence: presence.NewDetector(cfg.ShortAbsence, cfg.LongAbsence),
		liveness: liveness.NewDetector(cfg.MaxHashDistance, cfg.StaticFrames),
		class:    status.NewClassifier(cfg.EARThreshold, cfg.MARThreshold, cfg.DrowsyFrames, cfg.YawnFrames),
	}
}

// Process classifies a single frame. changed reports whether the capture
// layer saw new bytes; unchanged frames skip the perceptual hash and count
// directly toward the static-feed streak.
func (p *Processor) Process(ctx context.Context, frame []byte, changed bool) (Result, error) {
	ctx, span := trace.StartSpan(ctx, "process_frame")
	defer span.End()

	faces, err := p.vision.DetectLandmarks(ctx, frame, "jpeg", p.maxFaces)
	if err != nil {
		span.SetAttr("error", err.Error())
		return Result{}, err
	}
	span.SetAttr("faces", len(faces))

	switch len(faces) {
	case 0:
		p.liveness.Observe(nil, false)
		return p.withCounts(Result{Status: p.presence.Observe(false)}), nil
	case 1:
		// Single face, the normal path.
	default:
		p.presence.Observe(true)
		return p.withCounts(Result{Status: status.MultipleFaces, FaceCount: len(faces)}), nil
	}

	p.presence.Observe(true)

	w, h := frameSize(frame)
	face := toFace(faces[0], w, h)
	result := Result{FaceCount: 1, Box: face.Bounds()}

	if rawEAR, ok := face.EAR(); ok {
		result.EAR = p.eyes.Observe(rawEAR)
	} else {
		result.EAR = p.eyes.Last()
	}
	if rawMAR, ok := face.MAR(); ok {
		result.MAR, _ = p.mouth.Observe(rawMAR)
	} else {
		result.MAR = p.mouth.Last()
	}

	spoofed := false
	if changed {
		spoofed = p.liveness.Observe(frame, true)
	} else {
		spoofed = p.liveness.ObserveRepeat(true)
	}
	if spoofed {
		result.Status = status.FakePresence
		return p.withCounts(result), nil
	}

	result.Status = p.class.Observe(result.EAR, result.MAR)
	return p.withCounts(result), nil
}

func (p *Processor) withCounts(r Result) Result {
	r.DrowsyCount, r.YawnCount = p.class.Counts()
	return r
}

// EyeStats exposes the eye tracker statistics.
func (p *Processor) EyeStats() eyes.Stats { return p.eyes.Stats() }

// MouthStats exposes the yawn detector statistics.
func (p *Processor) MouthStats() mouth.Stats { return p.mouth.Stats() }

// Counters returns the classifier's debounce counters.
func (p *Processor) Counters() (drowsy, yawn int) { return p.class.Counts() }

// Reset clears all detector state between sessions.
func (p *Processor) Reset() {
	p.eyes.Reset()
	p.mouth.Reset()
	p.presence.Reset()
	p.liveness.Reset()
	p.class.Reset()
}

// toFace converts normalized landmarks to pixel space.
func toFace(f *pb.FaceLandmarks, w, h int) landmark.Face {
	points := make([]landmark.Point, len(f.Landmarks))
	for i, lm := range f.Landmarks {
		points[i] = landmark.Point{
			X: float64(lm.X) * float64(w),
			Y: float64(lm.Y) * float64(h),
		}
	}
	return landmark.Face{Points: points, Confidence: float64(f.Confidence)}
}

// frameSize decodes only the image header.
func frameSize(frame []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(frame))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return cfg.Width, cfg.Height
}
