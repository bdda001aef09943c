// Package presence tracks face absence over wall-clock time. Brief absences
// stay Active; longer ones escalate to face-missing and then not-awake.
package presence

import (
	"time"

	"github.com/studywatch/platform/internal/status"
)

// Default absence thresholds.
const (
	DefaultShortAbsence = 3 * time.Second
	DefaultLongAbsence  = 10 * time.Second
)

// Detector is a wall-clock absence state machine.
type Detector struct {
	short time.Duration
	long  time.Duration
	now   func() time.Time

	lostAt   time.Time // zero while a face is visible
	lastSeen time.Time
}

// NewDetector creates a detector. Non-positive thresholds select defaults.
func NewDetector(short, long time.Duration) *Detector {
	if short <= 0 {
		short = DefaultShortAbsence
	}
	if long <= 0 {
		long = DefaultLongAbsence
	}
	d := &Detector{short: short, long: long, now: time.Now}
	d.lastSeen = d.now()
	return d
}

// Observe records whether a face is currently visible and returns the
// presence status.
func (d *Detector) Observe(faceVisible bool) status.Status {
	now := d.now()
	if faceVisible {
		d.lastSeen = now
		d.lostAt = time.Time{}
		return status.Active
	}
	if d.lostAt.IsZero() {
		d.lostAt = now
	}
	switch absent := now.Sub(d.lostAt); {
	case absent >= d.long:
		return status.NotAwake
	case absent >= d.short:
		return status.FaceMissing
	default:
		return status.Active
	}
}

// AbsenceDuration returns how long the face has been missing, zero when
// it is visible.
func (d *Detector) AbsenceDuration() time.Duration {
	if d.lostAt.IsZero() {
		return 0
	}
	return d.now().Sub(d.lostAt)
}

// SinceLastSeen returns the time since the face was last visible.
func (d *Detector) SinceLastSeen() time.Duration {
	return d.now().Sub(d.lastSeen)
}

// Reset clears absence tracking.
func (d *Detector) Reset() {
	d.lostAt = time.Time{}
	d.lastSeen = d.now()
}
