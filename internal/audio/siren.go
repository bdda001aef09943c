// Package audio handles alert tone synthesis and device playback
package audio

import "math"

// DefaultSampleRate is used for synthesized tones.
const DefaultSampleRate = 44100

// Siren synthesizes an emergency siren as mono PCM16 samples. The carrier
// sweeps between 400Hz and 1200Hz twice per second, which cuts through
// ambient noise better than a steady tone.
func Siren(duration float64, sampleRate int) []int16 {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	n := int(duration * float64(sampleRate))
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		freq := 800 + 400*math.Sin(2*math.Pi*2*t)
		samples[i] = int16(32767 * math.Sin(2*math.Pi*freq*t))
	}
	return samples
}
