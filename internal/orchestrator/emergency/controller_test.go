package emergency

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeSirenPlayer struct {
	mu    sync.Mutex
	plays int
}

func (f *fakeSirenPlayer) Play(context.Context, []int16, int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays++
	return nil
}

func (f *fakeSirenPlayer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plays
}

type fakeSpeaker struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeSpeaker) Say(text string, _ bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, text)
}

func (f *fakeSpeaker) said() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.messages...)
}

func TestTriggerStartsAllLoops(t *testing.T) {
	player := &fakeSirenPlayer{}
	speaker := &fakeSpeaker{}
	c := NewController(player, speaker)

	c.Trigger(context.Background())
	defer c.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if player.count() > 0 && len(speaker.said()) > 0 && len(c.Flashes()) > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if player.count() == 0 {
		t.Error("siren never played")
	}
	if len(speaker.said()) == 0 {
		t.Error("no wake message spoken")
	}
	if !c.Active() {
		t.Error("Active() = false while protocol running")
	}
}

func TestTriggerIsIdempotent(t *testing.T) {
	c := NewController(&fakeSirenPlayer{}, &fakeSpeaker{})
	c.Trigger(context.Background())
	c.Trigger(context.Background()) // must not start a second protocol
	c.Stop()

	if c.Active() {
		t.Error("Active() = true after Stop")
	}
}

func TestFlashAlternatesAndResets(t *testing.T) {
	c := NewController(&fakeSirenPlayer{}, &fakeSpeaker{})
	c.Trigger(context.Background())

	var colors []string
	deadline := time.Now().Add(3 * time.Second)
	for len(colors) < 3 && time.Now().Before(deadline) {
		select {
		case ev := <-c.Flashes():
			colors = append(colors, ev.Color)
		case <-time.After(50 * time.Millisecond):
		}
	}
	c.Stop()

	if len(colors) < 3 {
		t.Fatalf("got %d flash events, want at least 3", len(colors))
	}
	if colors[0] != "red" || colors[1] != "blue" || colors[2] != "red" {
		t.Errorf("colors = %v, want alternating red/blue", colors[:3])
	}

	// Stop must emit the reset event.
	sawNormal := false
	for {
		select {
		case ev := <-c.Flashes():
			if ev.Color == "normal" {
				sawNormal = true
			}
		default:
			if !sawNormal {
				t.Error("no normal flash event after Stop")
			}
			return
		}
	}
}

func TestStopWithoutTrigger(t *testing.T) {
	c := NewController(&fakeSirenPlayer{}, &fakeSpeaker{})
	c.Stop() // no-op, must not panic
}

func TestWakeMessagesRotate(t *testing.T) {
	speaker := &fakeSpeaker{}
	c := NewController(&fakeSirenPlayer{}, speaker)
	c.Trigger(context.Background())
	defer c.Stop()

	deadline := time.Now().Add(6 * time.Second)
	for len(speaker.said()) < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	said := speaker.said()
	if len(said) < 2 {
		t.Fatalf("got %d messages, want at least 2", len(said))
	}
	if said[0] != wakeMessages[0] || said[1] != wakeMessages[1] {
		t.Errorf("messages = %v, want rotation through wakeMessages", said[:2])
	}
}

func TestConcurrentTriggerAndStop(t *testing.T) {
	c := NewController(&fakeSirenPlayer{}, &fakeSpeaker{})
	ctx := context.Background()

	// Rapid restart cycles from multiple goroutines must never trip the
	// per-activation WaitGroup while a Stop is still draining loops.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Trigger(ctx)
			}
		}()
	}
	for i := 0; i < 50; i++ {
		c.Stop()
	}
	wg.Wait()
	c.Stop()

	if c.Active() {
		t.Error("Active() = true after final Stop")
	}
}

func TestRetrigger(t *testing.T) {
	c := NewController(&fakeSirenPlayer{}, &fakeSpeaker{})
	c.Trigger(context.Background())
	c.Stop()
	c.Trigger(context.Background())
	if !c.Active() {
		t.Error("Active() = false after re-trigger")
	}
	c.Stop()
}
