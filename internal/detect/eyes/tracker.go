// Package eyes tracks eye closure from EAR readings with smoothing and a
// stability debounce.
package eyes

// Tracker defaults. The threshold errs slightly low to avoid flagging
// naturally narrow eyes; the debounce requires both a consecutive-frame
// streak and a stability streak before reporting drowsiness.
const (
	DefaultThreshold  = 0.22
	ConsecutiveFrames = 4
	StableFrames      = 3

	smoothWindow = 8
	initialEAR   = 0.3
)

// Tracker smooths raw EAR samples and debounces eye-closure detection.
type Tracker struct {
	threshold   float64
	history     []float64
	last        float64
	drowsyCount int
	stableCount int
}

// NewTracker creates a tracker. A non-positive threshold selects the default.
func NewTracker(threshold float64) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: threshold, last: initialEAR}
}

// Observe records one raw EAR sample and returns the smoothed value.
func (t *Tracker) Observe(ear float64) float64 {
	t.history = append(t.history, ear)
	if len(t.history) > smoothWindow {
		t.history = t.history[1:]
	}
	var sum float64
	for _, v := range t.history {
		sum += v
	}
	smoothed := sum / float64(len(t.history))
	t.last = smoothed

	if smoothed < t.threshold {
		t.drowsyCount++
		t.stableCount++
	} else {
		t.drowsyCount = 0
		t.stableCount = 0
	}
	return smoothed
}

// Drowsy reports whether the eyes have been closed long enough to count.
func (t *Tracker) Drowsy() bool {
	return t.drowsyCount >= ConsecutiveFrames && t.stableCount >= StableFrames
}

// Last returns the most recent smoothed EAR.
func (t *Tracker) Last() float64 { return t.last }

// Level maps the current EAR onto a 0-100 drowsiness scale.
func (t *Tracker) Level() int {
	return LevelFor(t.last)
}

// LevelFor maps an EAR value onto the calibrated drowsiness ladder.
func LevelFor(ear float64) int {
	switch {
	case ear >= 0.28:
		return 0
	case ear >= 0.24:
		return 20
	case ear >= 0.20:
		return 40
	case ear >= 0.16:
		return 60
	case ear >= 0.12:
		return 80
	default:
		return 100
	}
}

// StatusText describes the current eye state for display.
func (t *Tracker) StatusText() string {
	switch level := t.Level(); {
	case level >= 80:
		return "Eyes Closed"
	case level >= 60:
		return "Very Drowsy"
	case level >= 40:
		return "Moderately Drowsy"
	case level >= 20:
		return "Slightly Drowsy"
	case t.last >= 0.35:
		return "Wide Awake"
	default:
		return "Normal"
	}
}

// Stats summarizes the recent EAR history.
type Stats struct {
	Average float64
	Current float64
	Level   int
	Samples int
	Min     float64
	Max     float64
}

// Stats returns aggregate statistics over the smoothing window.
func (t *Tracker) Stats() Stats {
	s := Stats{Current: t.last, Level: t.Level(), Samples: len(t.history)}
	if len(t.history) == 0 {
		return s
	}
	s.Min = t.history[0]
	s.Max = t.history[0]
	var sum float64
	for _, v := range t.history {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Average = sum / float64(len(t.history))
	return s
}

// Reset clears history and debounce state.
func (t *Tracker) Reset() {
	t.history = t.history[:0]
	t.drowsyCount = 0
	t.stableCount = 0
	t.last = initialEAR
}
