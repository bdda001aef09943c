// Package landmark provides face-mesh geometry primitives: landmark index
// sets for the MediaPipe FaceMesh topology and the EAR/MAR aspect ratios
// computed from them.
package landmark

import "math"

// Point is a landmark position in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Six-point eye sets for the EAR measurement: outer corner, two upper lid
// points, inner corner, two lower lid points.
var (
	LeftEyeEAR  = [6]int{33, 160, 158, 133, 153, 144}
	RightEyeEAR = [6]int{362, 385, 387, 263, 373, 380}
)

// Full eye contours, exposed for frontend overlay rendering.
var (
	LeftEyeContour  = []int{33, 7, 163, 144, 145, 153, 154, 155, 133, 173, 157, 158, 159, 160, 161, 246}
	RightEyeContour = []int{362, 382, 381, 380, 374, 373, 390, 249, 263, 466, 388, 387, 386, 385, 384, 398}
)

// MouthMAR holds the MAR measurement points: upper and lower lip centers,
// mouth corners, then a second vertical pair.
var MouthMAR = [6]int{13, 14, 78, 308, 18, 175}

// MouthContour covers the outer and inner lip landmarks.
var MouthContour = []int{
	61, 84, 17, 314, 405, 320, 307, 375, 321, 308, 324, 318,
	78, 95, 88, 178, 87, 14, 317, 402, 415,
}

// Minimum horizontal spans (pixels) below which a ratio is considered
// degenerate and the previous smoothed value should be kept instead.
const (
	minEyeWidth   = 0.5
	minMouthWidth = 1.0
)

// Face is a single detected face as pixel-space landmarks.
type Face struct {
	Points     []Point
	Confidence float64
}

// Box is an axis-aligned bounding box in pixel coordinates.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Bounds returns the bounding box of all landmarks.
func (f Face) Bounds() Box {
	if len(f.Points) == 0 {
		return Box{}
	}
	b := Box{MinX: f.Points[0].X, MinY: f.Points[0].Y, MaxX: f.Points[0].X, MaxY: f.Points[0].Y}
	for _, p := range f.Points[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// EAR computes the eye aspect ratio averaged over both eyes:
//
//	EAR = (|p2-p6| + |p3-p5|) / (2 |p1-p4|)
//
// ok is false when landmarks are missing or an eye width is degenerate.
func (f Face) EAR() (float64, bool) {
	left, lok := f.eyeEAR(LeftEyeEAR)
	right, rok := f.eyeEAR(RightEyeEAR)
	if !lok || !rok {
		return 0, false
	}
	return (left + right) / 2, true
}

func (f Face) eyeEAR(idx [6]int) (float64, bool) {
	pts, ok := f.take(idx)
	if !ok {
		return 0, false
	}
	v1 := Dist(pts[1], pts[5])
	v2 := Dist(pts[2], pts[4])
	h := Dist(pts[0], pts[3])
	if h <= minEyeWidth {
		return 0, false
	}
	ear := (v1 + v2) / (2 * h)
	return clamp(ear, 0, 1), true
}

// MAR computes the mouth aspect ratio from two vertical lip distances over
// the mouth width. ok is false when landmarks are missing or the mouth
// width is degenerate.
func (f Face) MAR() (float64, bool) {
	pts, ok := f.take(MouthMAR)
	if !ok {
		return 0, false
	}
	v1 := Dist(pts[0], pts[4])
	v2 := Dist(pts[1], pts[5])
	h := Dist(pts[2], pts[3])
	if h <= minMouthWidth {
		return 0, false
	}
	return (v1 + v2) / (2 * h), true
}

func (f Face) take(idx [6]int) ([6]Point, bool) {
	var out [6]Point
	for i, j := range idx {
		if j >= len(f.Points) {
			return out, false
		}
		out[i] = f.Points[j]
	}
	return out, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
