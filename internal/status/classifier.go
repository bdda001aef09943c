package status

// Classifier turns per-frame EAR/MAR readings into a debounced status.
// Closed eyes and open mouth each increment their own counter and clear the
// other; a status only flips after enough consecutive frames. Drowsiness
// outranks yawning.
type Classifier struct {
	earThreshold float64
	marThreshold float64
	drowsyFrames int
	yawnFrames   int

	drowsyCount int
	yawnCount   int
}

// NewClassifier creates a classifier. drowsyFrames and yawnFrames are the
// consecutive-frame counts required before the corresponding status wins.
func NewClassifier(earThreshold, marThreshold float64, drowsyFrames, yawnFrames int) *Classifier {
	return &Classifier{
		earThreshold: earThreshold,
		marThreshold: marThreshold,
		drowsyFrames: drowsyFrames,
		yawnFrames:   yawnFrames,
	}
}

// Observe records one frame's smoothed ratios and returns the current status.
func (c *Classifier) Observe(ear, mar float64) Status {
	switch {
	case ear < c.earThreshold:
		c.drowsyCount++
		c.yawnCount = 0
	case mar > c.marThreshold:
		c.yawnCount++
		c.drowsyCount = 0
	default:
		c.drowsyCount = 0
		c.yawnCount = 0
	}

	if c.drowsyCount >= c.drowsyFrames {
		return Drowsy
	}
	if c.yawnCount >= c.yawnFrames {
		return Yawning
	}
	return Active
}

// Counts returns the current debounce counters, for display.
func (c *Classifier) Counts() (drowsy, yawn int) {
	return c.drowsyCount, c.yawnCount
}

// Reset clears both counters.
func (c *Classifier) Reset() {
	c.drowsyCount = 0
	c.yawnCount = 0
}
