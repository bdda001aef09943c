// Package mouth detects yawns from MAR readings, tracking yawn events and
// rejecting implausibly long mouth-open streaks.
package mouth

// Detector defaults. The threshold sits above casual mouth opening; the
// long-yawn cap resets streaks that are almost certainly tracking noise.
const (
	DefaultThreshold  = 0.65
	ConsecutiveFrames = 4
	StableFrames      = 3
	MaxYawnFrames     = 45

	smoothWindow = 10
)

// Event records a single detected yawn.
type Event struct {
	StartSample    int
	MaxMAR         float64
	DurationFrames int
}

// Detector smooths raw MAR samples and debounces yawn detection.
type Detector struct {
	threshold   float64
	history     []float64
	samples     int
	last        float64
	frameCount  int
	stableCount int
	yawning     bool
	events      []Event
}

// NewDetector creates a detector. A non-positive threshold selects the default.
func NewDetector(threshold float64) *Detector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Detector{threshold: threshold}
}

// Observe records one raw MAR sample. It returns the smoothed MAR and
// whether a yawn is currently in progress.
func (d *Detector) Observe(raw float64) (float64, bool) {
	d.history = append(d.history, raw)
	if len(d.history) > smoothWindow {
		d.history = d.history[1:]
	}
	d.samples++
	var sum float64
	for _, v := range d.history {
		sum += v
	}
	smoothed := sum / float64(len(d.history))
	d.last = smoothed

	if smoothed > d.threshold {
		d.frameCount++
		d.stableCount++
		if d.frameCount >= ConsecutiveFrames && d.stableCount >= StableFrames && !d.yawning {
			d.yawning = true
			d.events = append(d.events, Event{StartSample: d.samples, MaxMAR: smoothed})
		} else if d.yawning {
			if n := len(d.events); n > 0 && smoothed > d.events[n-1].MaxMAR {
				d.events[n-1].MaxMAR = smoothed
			}
		}
	} else {
		if d.yawning && d.frameCount > 0 {
			d.yawning = false
			if n := len(d.events); n > 0 {
				d.events[n-1].DurationFrames = d.frameCount
			}
		}
		d.frameCount = 0
		d.stableCount = 0
	}

	// A "yawn" that never ends is a tracking artifact, not a yawn.
	if d.frameCount > MaxYawnFrames {
		d.yawning = false
		d.frameCount = 0
		d.stableCount = 0
	}

	return smoothed, d.yawning
}

// Yawning reports whether a yawn is currently in progress.
func (d *Detector) Yawning() bool { return d.yawning }

// Last returns the most recent smoothed MAR.
func (d *Detector) Last() float64 { return d.last }

// Intensity maps the current MAR onto a 0-100 yawn scale.
func (d *Detector) Intensity() int {
	return IntensityFor(d.last)
}

// IntensityFor maps a MAR value onto the calibrated yawn-intensity ladder.
func IntensityFor(mar float64) int {
	switch {
	case mar <= 0.25:
		return 0
	case mar <= 0.4:
		return 20
	case mar <= 0.55:
		return 40
	case mar <= 0.7:
		return 60
	case mar <= 0.9:
		return 80
	default:
		return 100
	}
}

// StatusText describes the current mouth state for display.
func (d *Detector) StatusText() string {
	if d.yawning {
		switch intensity := d.Intensity(); {
		case intensity >= 80:
			return "Strong Yawn"
		case intensity >= 60:
			return "Moderate Yawn"
		default:
			return "Mild Yawn"
		}
	}
	switch {
	case d.last > 0.5:
		return "Wide Open"
	case d.last > 0.35:
		return "Open"
	case d.last > 0.25:
		return "Slightly Open"
	default:
		return "Closed"
	}
}

// Events returns the recorded yawn events.
func (d *Detector) Events() []Event {
	out := make([]Event, len(d.events))
	copy(out, d.events)
	return out
}

// Stats summarizes yawn history.
type Stats struct {
	TotalYawns      int
	AverageDuration float64
	MaxMAR          float64
}

// Stats returns aggregate statistics over recorded yawn events.
func (d *Detector) Stats() Stats {
	s := Stats{TotalYawns: len(d.events)}
	if len(d.events) == 0 {
		return s
	}
	var durSum float64
	var durN int
	for _, e := range d.events {
		if e.DurationFrames > 0 {
			durSum += float64(e.DurationFrames)
			durN++
		}
		if e.MaxMAR > s.MaxMAR {
			s.MaxMAR = e.MaxMAR
		}
	}
	if durN > 0 {
		s.AverageDuration = durSum / float64(durN)
	}
	return s
}

// Reset clears all state including recorded events.
func (d *Detector) Reset() {
	d.history = d.history[:0]
	d.samples = 0
	d.last = 0
	d.frameCount = 0
	d.stableCount = 0
	d.yawning = false
	d.events = nil
}
