package attention

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/studywatch/platform/internal/landmark"
	"github.com/studywatch/platform/internal/status"
	pb "github.com/studywatch/platform/pkg/pb"
)

type fakeVision struct {
	faces []*pb.FaceLandmarks
	err   error
	calls int
}

func (f *fakeVision) DetectLandmarks(context.Context, []byte, string, int32) ([]*pb.FaceLandmarks, error) {
	f.calls++
	return f.faces, f.err
}

// meshLandmarks builds normalized landmarks matching a 640x480 frame with
// the measurement points at the given pixel openness.
func meshLandmarks(eyeOpen, mouthOpen float64) *pb.FaceLandmarks {
	pts := make([]*pb.Landmark, 500)
	for i := range pts {
		pts[i] = &pb.Landmark{}
	}
	set := func(i int, x, y float64) {
		pts[i] = &pb.Landmark{X: float32(x / 640), Y: float32(y / 480)}
	}
	placeEye := func(idx [6]int, cx float64) {
		set(idx[0], cx-20, 100)
		set(idx[3], cx+20, 100)
		set(idx[1], cx-8, 100-eyeOpen)
		set(idx[2], cx+8, 100-eyeOpen)
		set(idx[5], cx-8, 100+eyeOpen)
		set(idx[4], cx+8, 100+eyeOpen)
	}
	placeEye(landmark.LeftEyeEAR, 100)
	placeEye(landmark.RightEyeEAR, 200)

	set(landmark.MouthMAR[2], 120, 200)
	set(landmark.MouthMAR[3], 180, 200)
	set(landmark.MouthMAR[0], 150, 200-mouthOpen)
	set(landmark.MouthMAR[4], 150, 200+mouthOpen)
	set(landmark.MouthMAR[1], 150, 200-mouthOpen)
	set(landmark.MouthMAR[5], 150, 200+mouthOpen)

	return &pb.FaceLandmarks{Landmarks: pts, Confidence: 0.9}
}

func testConfig() Config {
	return Config{
		EARThreshold: 0.22,
		MARThreshold: 0.6,
		DrowsyFrames: 5,
		YawnFrames:   3,
		ShortAbsence: 3 * time.Second,
		LongAbsence:  10 * time.Second,
		StaticFrames: 1000, // effectively off unless a test lowers it
		MaxFaces:     2,
	}
}

func pngFrame(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			img.Set(x, y, color.RGBA{R: 80, G: 80, B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestActiveFrame(t *testing.T) {
	vision := &fakeVision{faces: []*pb.FaceLandmarks{meshLandmarks(6, 6)}}
	p := NewProcessor(vision, testConfig())

	res, err := p.Process(context.Background(), []byte("raw"), true)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != status.Active {
		t.Errorf("status = %q, want Active", res.Status)
	}
	if res.FaceCount != 1 {
		t.Errorf("FaceCount = %d, want 1", res.FaceCount)
	}
	// eyeOpen 6px over a 40px eye: EAR = 0.3.
	if res.EAR < 0.29 || res.EAR > 0.31 {
		t.Errorf("EAR = %f, want ~0.3", res.EAR)
	}
	// mouthOpen 6px over a 60px mouth: MAR = 0.2.
	if res.MAR < 0.19 || res.MAR > 0.21 {
		t.Errorf("MAR = %f, want ~0.2", res.MAR)
	}
}

func TestDrowsyAfterConsecutiveFrames(t *testing.T) {
	vision := &fakeVision{faces: []*pb.FaceLandmarks{meshLandmarks(2, 6)}} // EAR 0.1
	p := NewProcessor(vision, testConfig())
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		res, err := p.Process(ctx, []byte("raw"), true)
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != status.Active {
			t.Fatalf("frame %d status = %q, want Active before debounce", i+1, res.Status)
		}
	}
	res, err := p.Process(ctx, []byte("raw"), true)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != status.Drowsy {
		t.Errorf("status = %q, want Drowsy after 5 frames", res.Status)
	}
}

func TestYawningAfterConsecutiveFrames(t *testing.T) {
	vision := &fakeVision{faces: []*pb.FaceLandmarks{meshLandmarks(6, 25)}} // MAR ~0.83
	p := NewProcessor(vision, testConfig())
	ctx := context.Background()

	var res Result
	var err error
	for i := 0; i < 3; i++ {
		res, err = p.Process(ctx, []byte("raw"), true)
		if err != nil {
			t.Fatal(err)
		}
	}
	if res.Status != status.Yawning {
		t.Errorf("status = %q, want Yawning after 3 frames", res.Status)
	}
}

func TestNoFaceUsesPresence(t *testing.T) {
	vision := &fakeVision{}
	p := NewProcessor(vision, testConfig())

	res, err := p.Process(context.Background(), []byte("raw"), true)
	if err != nil {
		t.Fatal(err)
	}
	// A just-lost face stays Active until the short-absence threshold.
	if res.Status != status.Active {
		t.Errorf("status = %q, want Active within grace period", res.Status)
	}
	if res.FaceCount != 0 {
		t.Errorf("FaceCount = %d, want 0", res.FaceCount)
	}
}

func TestMultipleFaces(t *testing.T) {
	vision := &fakeVision{faces: []*pb.FaceLandmarks{meshLandmarks(6, 6), meshLandmarks(6, 6)}}
	p := NewProcessor(vision, testConfig())

	res, err := p.Process(context.Background(), []byte("raw"), true)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != status.MultipleFaces {
		t.Errorf("status = %q, want Multiple Persons Detected", res.Status)
	}
	if res.FaceCount != 2 {
		t.Errorf("FaceCount = %d, want 2", res.FaceCount)
	}
}

func TestStaticFrameFlagsFakePresence(t *testing.T) {
	vision := &fakeVision{faces: []*pb.FaceLandmarks{meshLandmarks(6, 6)}}
	cfg := testConfig()
	cfg.StaticFrames = 2
	p := NewProcessor(vision, cfg)
	ctx := context.Background()
	frame := pngFrame(t)

	// Hash seeds on the first frame, streak builds on the next two.
	for i := 0; i < 2; i++ {
		res, err := p.Process(ctx, frame, true)
		if err != nil {
			t.Fatal(err)
		}
		if res.Status == status.FakePresence {
			t.Fatalf("flagged too early at frame %d", i+1)
		}
	}
	res, err := p.Process(ctx, frame, true)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != status.FakePresence {
		t.Errorf("status = %q, want Fake Presence", res.Status)
	}
}

func TestUnchangedFrameCountsTowardStreak(t *testing.T) {
	vision := &fakeVision{faces: []*pb.FaceLandmarks{meshLandmarks(6, 6)}}
	cfg := testConfig()
	cfg.StaticFrames = 3
	p := NewProcessor(vision, cfg)
	ctx := context.Background()
	frame := pngFrame(t)

	p.Process(ctx, frame, true) // seeds hash
	p.Process(ctx, frame, true)
	p.Process(ctx, frame, false) // repeat, no decode needed
	res, err := p.Process(ctx, frame, false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != status.FakePresence {
		t.Errorf("status = %q, want Fake Presence", res.Status)
	}
}

func TestVisionErrorPropagates(t *testing.T) {
	wantErr := errors.New("sidecar down")
	vision := &fakeVision{err: wantErr}
	p := NewProcessor(vision, testConfig())

	_, err := p.Process(context.Background(), []byte("raw"), true)
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestResultCarriesDebounceCounters(t *testing.T) {
	vision := &fakeVision{faces: []*pb.FaceLandmarks{meshLandmarks(2, 6)}} // EAR 0.1
	p := NewProcessor(vision, testConfig())
	ctx := context.Background()

	var res Result
	var err error
	for i := 0; i < 3; i++ {
		res, err = p.Process(ctx, []byte("raw"), true)
		if err != nil {
			t.Fatal(err)
		}
	}
	if res.DrowsyCount != 3 {
		t.Errorf("DrowsyCount = %d, want 3", res.DrowsyCount)
	}
	if res.YawnCount != 0 {
		t.Errorf("YawnCount = %d, want 0", res.YawnCount)
	}
}

func TestYawnDetectorKeepsOwnThreshold(t *testing.T) {
	// MAR 0.625 sits between the classifier threshold (0.6) and the yawn
	// event threshold (0.65): the status flips but no event is recorded.
	vision := &fakeVision{faces: []*pb.FaceLandmarks{meshLandmarks(6, 18.75)}}
	p := NewProcessor(vision, testConfig())
	ctx := context.Background()

	var res Result
	var err error
	for i := 0; i < 7; i++ {
		res, err = p.Process(ctx, []byte("raw"), true)
		if err != nil {
			t.Fatal(err)
		}
	}
	if res.Status != status.Yawning {
		t.Fatalf("status = %q, want Yawning", res.Status)
	}
	if got := p.MouthStats().TotalYawns; got != 0 {
		t.Errorf("TotalYawns = %d, want 0 below the event threshold", got)
	}
}

func TestResetClearsCounters(t *testing.T) {
	vision := &fakeVision{faces: []*pb.FaceLandmarks{meshLandmarks(2, 6)}}
	p := NewProcessor(vision, testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		p.Process(ctx, []byte("raw"), true)
	}
	if drowsy, _ := p.Counters(); drowsy != 3 {
		t.Fatalf("drowsy counter = %d, want 3", drowsy)
	}

	p.Reset()
	if drowsy, yawn := p.Counters(); drowsy != 0 || yawn != 0 {
		t.Errorf("counters = (%d, %d) after reset, want (0, 0)", drowsy, yawn)
	}
}
