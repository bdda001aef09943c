// Package liveness flags static-image spoofing. A real webcam feed always
// carries sensor noise; a photo held in front of the lens (or a looped
// still) produces frames whose perceptual hashes stop moving.
package liveness

import (
	"bytes"
	"image"
	_ "image/jpeg" // frame decoders
	_ "image/png"

	"github.com/corona10/goimagehash"
)

// Defaults: pHash Hamming distance at or under MaxHashDistance counts as
// "the same picture"; DefaultStaticFrames is sized for ~8s at 10fps.
const (
	DefaultMaxHashDistance = 2
	DefaultStaticFrames    = 80
)

// Detector tracks how long the feed has been perceptually frozen while a
// face is present.
type Detector struct {
	maxDistance  int
	staticFrames int

	last   *goimagehash.ImageHash
	streak int
}

// NewDetector creates a detector. Non-positive arguments select defaults.
func NewDetector(maxDistance, staticFrames int) *Detector {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxHashDistance
	}
	if staticFrames <= 0 {
		staticFrames = DefaultStaticFrames
	}
	return &Detector{maxDistance: maxDistance, staticFrames: staticFrames}
}

// Observe hashes an encoded frame and extends or resets the static streak.
// It returns true once the feed has been frozen for the configured window.
// Frames without a visible face reset tracking; absence is handled by the
// presence detector, not here.
func (d *Detector) Observe(frame []byte, faceVisible bool) bool {
	if !faceVisible {
		d.Reset()
		return false
	}
	img, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return d.spoofed()
	}
	return d.ObserveImage(img)
}

// ObserveImage is Observe for an already-decoded frame with a visible face.
func (d *Detector) ObserveImage(img image.Image) bool {
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return d.spoofed()
	}
	if d.last == nil {
		d.last = hash
		return false
	}
	dist, err := d.last.Distance(hash)
	d.last = hash
	if err != nil {
		d.streak = 0
		return false
	}
	if dist <= d.maxDistance {
		d.streak++
	} else {
		d.streak = 0
	}
	return d.spoofed()
}

// ObserveRepeat records a byte-identical frame (the capture layer's change
// hash said nothing moved) without paying for a decode.
func (d *Detector) ObserveRepeat(faceVisible bool) bool {
	if !faceVisible {
		d.Reset()
		return false
	}
	if d.last != nil {
		d.streak++
	}
	return d.spoofed()
}

func (d *Detector) spoofed() bool {
	return d.streak >= d.staticFrames
}

// Streak returns the current count of consecutive static frames.
func (d *Detector) Streak() int { return d.streak }

// Reset clears the streak and the reference hash.
func (d *Detector) Reset() {
	d.last = nil
	d.streak = 0
}
