// Package feedback speaks status-specific guidance through the speech service
package feedback

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/studywatch/platform/internal/status"
	"github.com/studywatch/platform/internal/trace"
)

// Synthesizer renders text to PCM16 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, sampleRate int32) ([]byte, int, error)
}

// Player plays PCM16 audio on the output device.
type Player interface {
	PlayPCM(ctx context.Context, pcm []byte, sampleRate int) error
}

// criticalStatuses preempt whatever is queued.
var criticalStatuses = map[status.Status]bool{
	status.Emergency:    true,
	status.NotAwake:     true,
	status.FakePresence: true,
	status.Drowsy:       true,
}

// statusMessages are rotated per status to avoid repetition.
var statusMessages = map[status.Status][]string{
	status.Active: {
		"Great! You're staying focused.",
		"Good attention level detected.",
		"Keep up the good work!",
		"Excellent focus maintained.",
	},
	status.Yawning: {
		"I notice you're yawning. Try to stay alert.",
		"You seem tired. Take a deep breath.",
		"Yawning detected. Please stay focused.",
		"Feeling sleepy? Try to stay awake.",
	},
	status.Drowsy: {
		"You appear drowsy. Please stay awake.",
		"Low eye activity detected. Please focus.",
		"Drowsiness alert! Please pay attention.",
		"Your eyes seem heavy. Please stay alert.",
	},
	status.FaceMissing: {
		"I can't see your face. Please position yourself properly.",
		"Face not detected. Please come back to the camera.",
		"Please ensure you're visible to the camera.",
		"Please return to your position.",
	},
	status.MultipleFaces: {
		"Multiple people detected. Please ensure only one person is monitoring.",
		"Too many faces in view. Please clear the area.",
		"Single user mode required.",
		"Only one person should be in view.",
	},
	status.NotAwake: {
		"You've been away too long. Please return.",
		"Extended absence detected. Please come back.",
		"Long inactivity period. Please focus.",
		"Please wake up and return to your studies.",
	},
	status.FakePresence: {
		"Artificial presence detected. Please use live video only.",
		"Static image detected. Please show live movement.",
		"Spoofing attempt detected.",
		"Please ensure live video feed.",
	},
	status.Emergency: {
		"Emergency alert! Please wake up immediately!",
		"Attention required! You've been inactive too long!",
		"Wake up! Please return to your studies!",
		"Critical alert! Please focus on your work!",
	},
	status.Inactive: {
		"You seem inactive. Please engage with your studies.",
		"No activity detected. Please stay focused.",
		"Please remain active and attentive.",
		"Activity level is low. Please concentrate.",
	},
}

type request struct {
	text     string
	critical bool
}

// Speaker queues spoken feedback and plays it on a background worker.
// Same-status announcements are suppressed for MinInterval; critical
// statuses drain the queue and jump ahead.
type Speaker struct {
	synth      Synthesizer
	player     Player
	sampleRate int32

	queue  chan request
	stopCh chan struct{}
	done   chan struct{}

	mu          sync.Mutex
	enabled     bool
	minInterval time.Duration
	lastStatus  status.Status
	lastSpoken  time.Time
	now         func() time.Time
}

// DefaultMinInterval is the minimum gap between same-status announcements.
const DefaultMinInterval = 3 * time.Second

const queueSize = 16

// NewSpeaker creates a speaker and starts its worker.
func NewSpeaker(synth Synthesizer, player Player, sampleRate int32, minInterval time.Duration) *Speaker {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	s := &Speaker{
		synth:       synth,
		player:      player,
		sampleRate:  sampleRate,
		queue:       make(chan request, queueSize),
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
		enabled:     true,
		minInterval: minInterval,
		now:         time.Now,
	}
	go s.worker()
	return s
}

func (s *Speaker) worker() {
	defer close(s.done)
	for {
		select {
		case <-s.stopCh:
			return
		case req := <-s.queue:
			s.speak(req)
		}
	}
}

func (s *Speaker) speak(req request) {
	ctx, span := trace.StartSpan(context.Background(), "speak_feedback")
	defer span.End()
	span.SetAttr("critical", req.critical)

	log := trace.Logger(ctx)
	pcm, rate, err := s.synth.Synthesize(ctx, req.text, s.sampleRate)
	if err != nil {
		log.Warn("speech synthesis failed", "error", err)
		return
	}
	if err := s.player.PlayPCM(ctx, pcm, rate); err != nil {
		log.Warn("speech playback failed", "error", err)
	}
}

// Announce speaks a message for the given status.
func (s *Speaker) Announce(st status.Status) {
	s.mu.Lock()
	if !s.enabled {
		s.mu.Unlock()
		return
	}
	now := s.now()
	if s.lastStatus == st && now.Sub(s.lastSpoken) < s.minInterval {
		s.mu.Unlock()
		return
	}
	s.lastStatus = st
	s.lastSpoken = now
	s.mu.Unlock()

	messages := statusMessages[st]
	var text string
	switch len(messages) {
	case 0:
		text = "Status update: " + string(st)
	case 1:
		text = messages[0]
	default:
		text = messages[rand.IntN(len(messages))]
	}

	s.enqueue(request{text: text, critical: criticalStatuses[st]})
}

// Say queues a custom message.
func (s *Speaker) Say(text string, critical bool) {
	s.mu.Lock()
	enabled := s.enabled
	s.mu.Unlock()
	if !enabled {
		return
	}
	s.enqueue(request{text: text, critical: critical})
}

func (s *Speaker) enqueue(req request) {
	if req.critical {
		// Drop queued routine messages so the alert plays next.
		for drained := false; !drained; {
			select {
			case <-s.queue:
			default:
				drained = true
			}
		}
	}
	select {
	case s.queue <- req:
	default:
		// Queue full, skip this message.
	}
}

// SetEnabled toggles speech output.
func (s *Speaker) SetEnabled(enabled bool) {
	s.mu.Lock()
	s.enabled = enabled
	s.mu.Unlock()
}

// Enabled reports whether speech output is on.
func (s *Speaker) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Close stops the worker. Queued messages are dropped.
func (s *Speaker) Close() {
	close(s.stopCh)
	<-s.done
}
