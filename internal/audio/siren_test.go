package audio

import (
	"math"
	"testing"
)

func TestSirenLength(t *testing.T) {
	samples := Siren(1.0, 44100)
	if len(samples) != 44100 {
		t.Errorf("len = %d, want 44100", len(samples))
	}

	samples = Siren(0.5, 8000)
	if len(samples) != 4000 {
		t.Errorf("len = %d, want 4000", len(samples))
	}
}

func TestSirenDefaultRate(t *testing.T) {
	samples := Siren(1.0, 0)
	if len(samples) != DefaultSampleRate {
		t.Errorf("len = %d, want %d", len(samples), DefaultSampleRate)
	}
}

func TestSirenAmplitude(t *testing.T) {
	samples := Siren(1.0, 44100)

	var peak int16
	for _, s := range samples {
		if s > peak {
			peak = s
		}
	}
	// Full-scale sine should come close to int16 max.
	if peak < 30000 {
		t.Errorf("peak = %d, want near 32767", peak)
	}
}

func TestSirenSweeps(t *testing.T) {
	// Count zero crossings in the first and second quarter second. The
	// carrier sweeps, so the crossing rates should differ noticeably.
	samples := Siren(0.5, 44100)
	q := len(samples) / 2

	crossings := func(s []int16) int {
		n := 0
		for i := 1; i < len(s); i++ {
			if (s[i-1] < 0) != (s[i] < 0) {
				n++
			}
		}
		return n
	}

	c1 := crossings(samples[:q])
	c2 := crossings(samples[q:])
	if math.Abs(float64(c1-c2)) < 100 {
		t.Errorf("crossing counts %d and %d too similar for a sweeping tone", c1, c2)
	}
}

func TestBytesToInt16(t *testing.T) {
	pcm := []byte{0x01, 0x00, 0xFF, 0x7F, 0x00, 0x80}
	samples := BytesToInt16(pcm)

	want := []int16{1, 32767, -32768}
	if len(samples) != len(want) {
		t.Fatalf("len = %d, want %d", len(samples), len(want))
	}
	for i, w := range want {
		if samples[i] != w {
			t.Errorf("samples[%d] = %d, want %d", i, samples[i], w)
		}
	}
}

func TestBytesToInt16OddLength(t *testing.T) {
	samples := BytesToInt16([]byte{0x01, 0x00, 0xFF})
	if len(samples) != 1 {
		t.Errorf("len = %d, want 1 (trailing byte dropped)", len(samples))
	}
}
