package camera

import (
	"os"
	"testing"
)

type fakeBackend struct {
	frames [][]byte
	idx    int
	closed bool
}

func (f *fakeBackend) captureRaw() []byte {
	if f.idx >= len(f.frames) {
		return nil
	}
	data := f.frames[f.idx]
	f.idx++
	return data
}

func (f *fakeBackend) cleanup() { f.closed = true }

func TestCaptureChangeDetection(t *testing.T) {
	fb := &fakeBackend{frames: [][]byte{
		[]byte("frame one"),
		[]byte("frame one"),
		[]byte("frame two"),
	}}
	c := newBase(fb, "")

	data, changed := c.Capture()
	if data == nil || !changed {
		t.Fatal("first frame should report a change")
	}

	data, changed = c.Capture()
	if data != nil || changed {
		t.Fatal("identical frame should be suppressed")
	}

	data, changed = c.Capture()
	if data == nil || !changed {
		t.Fatal("new frame should report a change")
	}
}

func TestCaptureNilFrame(t *testing.T) {
	c := newBase(&fakeBackend{}, "")
	data, changed := c.Capture()
	if data != nil || changed {
		t.Fatal("nil raw frame should report no change")
	}
}

func TestCaptureAlwaysBypassesDetection(t *testing.T) {
	fb := &fakeBackend{frames: [][]byte{
		[]byte("same frame"),
		[]byte("same frame"),
	}}
	c := newBase(fb, "")

	if c.CaptureAlways() == nil {
		t.Fatal("CaptureAlways should return the frame")
	}
	if c.CaptureAlways() == nil {
		t.Fatal("CaptureAlways should return identical frames too")
	}
}

func TestCaptureAlwaysUpdatesHash(t *testing.T) {
	fb := &fakeBackend{frames: [][]byte{
		[]byte("a frame"),
		[]byte("a frame"),
	}}
	c := newBase(fb, "")

	c.CaptureAlways()
	data, changed := c.Capture()
	if data != nil || changed {
		t.Fatal("Capture after CaptureAlways of the same frame should be suppressed")
	}
}

func TestCloseRemovesTempDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "camera-test-*")
	if err != nil {
		t.Fatal(err)
	}
	fb := &fakeBackend{}
	c := newBase(fb, tmpDir)
	c.Close()

	if !fb.closed {
		t.Error("Close should call backend cleanup")
	}
	if _, err := os.Stat(tmpDir); !os.IsNotExist(err) {
		t.Error("temp directory should be removed after Close")
	}
}
