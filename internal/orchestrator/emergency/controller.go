// Package emergency runs the wake-up protocol: siren, screen flash, and
// spoken alerts, all looping until the user returns.
package emergency

import (
	"context"
	"sync"
	"time"

	"github.com/studywatch/platform/internal/audio"
	"github.com/studywatch/platform/internal/trace"
)

// Protocol timing
const (
	FlashInterval   = 500 * time.Millisecond
	SirenInterval   = time.Second
	MessageInterval = 2 * time.Second

	sirenDuration = 0.5 // seconds of tone per burst
	flashBuffer   = 32
)

// FlashEvent tells the UI what background color to show.
// Color is "red", "blue", or "normal" when the protocol stops.
type FlashEvent struct {
	Color string `json:"color"`
}

// SirenPlayer plays synthesized samples.
type SirenPlayer interface {
	Play(ctx context.Context, samples []int16, sampleRate int) error
}

// Speaker queues spoken wake-up messages.
type Speaker interface {
	Say(text string, critical bool)
}

var wakeMessages = []string{
	"Wake up! You've been inactive for too long!",
	"Attention! Please focus on your studies!",
	"Alert! Student attentiveness required!",
	"Please return to your study position!",
}

// Controller coordinates the three alert loops. Trigger is idempotent
// while a protocol is running.
type Controller struct {
	player  SirenPlayer
	speaker Speaker
	siren   []int16
	rate    int

	flashCh chan FlashEvent

	mu     sync.Mutex
	active bool
	stopCh chan struct{}
	// wg belongs to the current activation. Trigger replaces it so a
	// restart never touches a WaitGroup a pending Stop is waiting on.
	wg *sync.WaitGroup
}

// NewController synthesizes the siren up front and returns a controller.
func NewController(player SirenPlayer, speaker Speaker) *Controller {
	return &Controller{
		player:  player,
		speaker: speaker,
		siren:   audio.Siren(sirenDuration, audio.DefaultSampleRate),
		rate:    audio.DefaultSampleRate,
		flashCh: make(chan FlashEvent, flashBuffer),
	}
}

// Flashes returns the channel of screen flash events.
func (c *Controller) Flashes() <-chan FlashEvent { return c.flashCh }

// Active reports whether the protocol is running.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Trigger starts the wake-up protocol. A second call while active is a no-op.
func (c *Controller) Trigger(ctx context.Context) {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return
	}
	c.active = true
	c.stopCh = make(chan struct{})
	c.wg = &sync.WaitGroup{}
	stopCh := c.stopCh
	wg := c.wg
	c.mu.Unlock()

	trace.Logger(ctx).Warn("emergency wake-up protocol activated")

	wg.Add(3)
	go c.sirenLoop(ctx, stopCh, wg)
	go c.flashLoop(stopCh, wg)
	go c.speechLoop(stopCh, wg)
}

// Stop ends the protocol and resets the screen color.
func (c *Controller) Stop() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.active = false
	close(c.stopCh)
	wg := c.wg
	c.mu.Unlock()

	wg.Wait()
	c.emit(FlashEvent{Color: "normal"})
	trace.Logger(context.Background()).Info("emergency protocol stopped")
}

func (c *Controller) sirenLoop(ctx context.Context, stopCh <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	ticker := time.NewTicker(SirenInterval)
	defer ticker.Stop()

	log := trace.Logger(ctx)
	for {
		if err := c.player.Play(ctx, c.siren, c.rate); err != nil {
			log.Warn("siren playback failed", "error", err)
		}
		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (c *Controller) flashLoop(stopCh <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	ticker := time.NewTicker(FlashInterval)
	defer ticker.Stop()

	count := 0
	for {
		color := "red"
		if count%2 == 1 {
			color = "blue"
		}
		c.emit(FlashEvent{Color: color})
		count++

		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (c *Controller) speechLoop(stopCh <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	ticker := time.NewTicker(MessageInterval)
	defer ticker.Stop()

	i := 0
	for {
		c.speaker.Say(wakeMessages[i%len(wakeMessages)], true)
		i++

		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (c *Controller) emit(ev FlashEvent) {
	select {
	case c.flashCh <- ev:
	default:
		// UI not draining, drop the event.
	}
}
