// Package orchestrator coordinates camera capture, inference, and alerting
package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/studywatch/platform/internal/camera"
	"github.com/studywatch/platform/internal/config"
	"github.com/studywatch/platform/internal/metrics"
	"github.com/studywatch/platform/internal/orchestrator/attention"
	"github.com/studywatch/platform/internal/orchestrator/emergency"
	"github.com/studywatch/platform/internal/orchestrator/history"
	"github.com/studywatch/platform/internal/status"
	"github.com/studywatch/platform/internal/store"
	"github.com/studywatch/platform/internal/syncx"
	"github.com/studywatch/platform/internal/trace"
)

// FrameProcessor classifies single frames.
type FrameProcessor interface {
	Process(ctx context.Context, frame []byte, changed bool) (attention.Result, error)
	Reset()
}

// Announcer speaks status feedback.
type Announcer interface {
	Announce(st status.Status)
	SetEnabled(enabled bool)
}

// Escalator runs the emergency wake-up protocol.
type Escalator interface {
	Trigger(ctx context.Context)
	Stop()
	Active() bool
	Flashes() <-chan emergency.FlashEvent
}

// EventLog records attentiveness events.
type EventLog interface {
	LogStatusChange(old, new status.Status, ear, mar float64) error
	LogEmergency(inactiveSeconds float64) error
	LogSession(action string) error
	LogReturnToActive(inactiveSeconds, ear, mar float64) error
}

// SessionStore persists session history.
type SessionStore interface {
	BeginSession(ctx context.Context) (string, error)
	EndSession(ctx context.Context, id string, frames, emergencies int64) error
	RecordTransition(ctx context.Context, t store.Transition) error
}

// StatusEvent is pushed to frontends on every processed frame.
type StatusEvent struct {
	Status          status.Status `json:"status"`
	EAR             float64       `json:"ear"`
	MAR             float64       `json:"mar"`
	FaceCount       int           `json:"face_count"`
	DrowsyCount     int           `json:"drowsy_count"`
	YawnCount       int           `json:"yawn_count"`
	InactiveSeconds float64       `json:"inactive_seconds"`
	Emergency       bool          `json:"emergency"`
}

// Snapshot is the orchestrator's externally visible state.
type Snapshot struct {
	Running         bool          `json:"running"`
	SessionID       string        `json:"session_id,omitempty"`
	Status          status.Status `json:"status"`
	EAR             float64       `json:"ear"`
	MAR             float64       `json:"mar"`
	FaceCount       int           `json:"face_count"`
	DrowsyCount     int           `json:"drowsy_count"`
	YawnCount       int           `json:"yawn_count"`
	InactiveSeconds float64       `json:"inactive_seconds"`
	Emergency       bool          `json:"emergency"`
}

// Deps bundles the orchestrator's collaborators.
type Deps struct {
	Camera    camera.Capturer
	Processor FrameProcessor
	Speaker   Announcer
	Emergency Escalator
	Activity  EventLog
	Store     SessionStore
	History   *history.Timeline
	Metrics   *metrics.Metrics
}

// Manager drives the frame loop and owns detection state.
type Manager struct {
	cfg  *config.Config
	deps Deps

	state    *syncx.RWGuard[Snapshot]
	statusCh chan StatusEvent

	mu             sync.Mutex
	running        bool
	stopCh         chan struct{}
	loopDone       chan struct{}
	sessionID      string
	frames         int64
	emergencies    int64
	lastFrame      []byte
	inactiveSince  time.Time
	emergencyFired bool
}

// New creates a manager.
func New(cfg *config.Config, deps Deps) *Manager {
	return &Manager{
		cfg:      cfg,
		deps:     deps,
		state:    syncx.NewGuard(Snapshot{Status: status.Inactive}),
		statusCh: make(chan StatusEvent, StatusEventBuffer),
	}
}

// StatusEvents returns the channel of per-frame status updates.
func (m *Manager) StatusEvents() <-chan StatusEvent { return m.statusCh }

// Flashes returns the emergency screen flash channel.
func (m *Manager) Flashes() <-chan emergency.FlashEvent { return m.deps.Emergency.Flashes() }

// Snapshot returns the current state.
func (m *Manager) Snapshot() Snapshot { return m.state.Get() }

// LatestFrame returns the most recent captured frame.
func (m *Manager) LatestFrame() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastFrame
}

// SetSpeechEnabled toggles spoken feedback.
func (m *Manager) SetSpeechEnabled(enabled bool) { m.deps.Speaker.SetEnabled(enabled) }

// StartDetection opens a session and starts the frame loop.
func (m *Manager) StartDetection(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return nil
	}

	log := trace.Logger(ctx)
	sessionID, err := m.deps.Store.BeginSession(ctx)
	if err != nil {
		return err
	}

	if err := m.deps.Activity.LogSession("started"); err != nil {
		log.Warn("failed to log session start", "error", err)
	}
	m.deps.Processor.Reset()

	m.running = true
	m.sessionID = sessionID
	m.frames = 0
	m.emergencies = 0
	m.inactiveSince = time.Time{}
	m.emergencyFired = false
	m.stopCh = make(chan struct{})
	m.loopDone = make(chan struct{})

	m.state.Write(func(s *Snapshot) {
		*s = Snapshot{Running: true, SessionID: sessionID, Status: status.Active}
	})

	go m.frameLoop(context.WithoutCancel(ctx), m.stopCh, m.loopDone)
	log.Info("detection started", "session_id", sessionID)
	return nil
}

// StopDetection stops the frame loop and closes the session.
func (m *Manager) StopDetection(ctx context.Context) error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = false
	close(m.stopCh)
	loopDone := m.loopDone
	sessionID := m.sessionID
	frames := m.frames
	emergencies := m.emergencies
	m.mu.Unlock()

	<-loopDone
	m.deps.Emergency.Stop()

	log := trace.Logger(ctx)
	if err := m.deps.Activity.LogSession("stopped"); err != nil {
		log.Warn("failed to log session stop", "error", err)
	}
	if err := m.deps.Store.EndSession(ctx, sessionID, frames, emergencies); err != nil {
		log.Warn("failed to end session", "error", err)
	}

	m.state.Write(func(s *Snapshot) {
		*s = Snapshot{Status: status.Inactive}
	})
	log.Info("detection stopped", "session_id", sessionID, "frames", frames)
	return nil
}

// StopEmergency halts an active wake-up protocol without stopping detection.
func (m *Manager) StopEmergency() {
	m.deps.Emergency.Stop()
	m.mu.Lock()
	m.emergencyFired = false
	m.mu.Unlock()
	m.state.Write(func(s *Snapshot) { s.Emergency = false })
}

// Stop shuts the orchestrator down.
func (m *Manager) Stop() {
	_ = m.StopDetection(context.Background())
	m.deps.Camera.Close()
}

func (m *Manager) frameLoop(ctx context.Context, stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(m.cfg.FrameInterval())
	defer ticker.Stop()
	compact := time.NewTicker(HistoryCompactInterval)
	defer compact.Stop()

	log := trace.Logger(ctx)
	failures := 0

	for {
		select {
		case <-stopCh:
			return
		case <-compact.C:
			if m.deps.History != nil {
				m.deps.History.Compact(HistoryRawWindow)
			}
			continue
		case <-ticker.C:
		}

		frameStart := time.Now()
		frame, changed := m.deps.Camera.Capture()
		if frame == nil {
			m.mu.Lock()
			frame = m.lastFrame
			m.mu.Unlock()
			if frame == nil {
				failures++
				if failures == MaxConsecutiveCaptureFailures {
					log.Warn("camera produced no frames", "consecutive", failures)
				}
				continue
			}
			changed = false
		} else {
			m.mu.Lock()
			m.lastFrame = frame
			m.mu.Unlock()
		}
		failures = 0

		inferStart := time.Now()
		result, err := m.deps.Processor.Process(ctx, frame, changed)
		if err != nil {
			log.Warn("frame processing failed", "error", err)
			continue
		}
		if m.deps.Metrics != nil {
			m.deps.Metrics.InferenceLatency.Observe(time.Since(inferStart).Seconds())
			m.deps.Metrics.FrameLatency.Observe(time.Since(frameStart).Seconds())
		}
		m.handleResult(ctx, result)
	}
}

func (m *Manager) handleResult(ctx context.Context, res attention.Result) {
	m.mu.Lock()
	m.frames++
	now := time.Now()

	var inactiveSeconds float64
	becameActive := false
	triggerEmergency := false

	if res.Status.IsInactive() {
		if m.inactiveSince.IsZero() {
			m.inactiveSince = now
		}
		inactiveSeconds = now.Sub(m.inactiveSince).Seconds()
		if !m.emergencyFired && inactiveSeconds >= m.cfg.InactivityThreshold().Seconds() {
			m.emergencyFired = true
			m.emergencies++
			triggerEmergency = true
		}
	} else {
		if !m.inactiveSince.IsZero() {
			becameActive = true
			inactiveSeconds = now.Sub(m.inactiveSince).Seconds()
		}
		m.inactiveSince = time.Time{}
	}
	emergencyWasFired := m.emergencyFired
	if becameActive {
		m.emergencyFired = false
	}
	sessionID := m.sessionID
	m.mu.Unlock()

	log := trace.Logger(ctx)
	prev := m.state.Get()

	if triggerEmergency {
		m.deps.Emergency.Trigger(ctx)
		if err := m.deps.Activity.LogEmergency(inactiveSeconds); err != nil {
			log.Warn("failed to log emergency", "error", err)
		}
		if m.deps.Metrics != nil {
			m.deps.Metrics.Emergencies.Inc()
		}
	}

	if becameActive && emergencyWasFired {
		m.deps.Emergency.Stop()
		if err := m.deps.Activity.LogReturnToActive(inactiveSeconds, res.EAR, res.MAR); err != nil {
			log.Warn("failed to log recovery", "error", err)
		}
	}

	if res.Status != prev.Status {
		if err := m.deps.Activity.LogStatusChange(prev.Status, res.Status, res.EAR, res.MAR); err != nil {
			log.Warn("failed to log status change", "error", err)
		}
		if err := m.deps.Store.RecordTransition(ctx, store.Transition{
			SessionID:       sessionID,
			At:              now,
			From:            prev.Status,
			To:              res.Status,
			EAR:             res.EAR,
			MAR:             res.MAR,
			InactiveSeconds: inactiveSeconds,
		}); err != nil {
			log.Warn("failed to record transition", "error", err)
		}
		if m.deps.History != nil {
			m.deps.History.Add(prev.Status, res.Status, res.EAR, res.MAR)
		}
		if m.deps.Metrics != nil {
			m.deps.Metrics.Transitions.WithLabelValues(string(res.Status)).Inc()
		}
		m.deps.Speaker.Announce(res.Status)
	}

	emergencyActive := m.deps.Emergency.Active()
	if m.deps.Metrics != nil {
		m.deps.Metrics.FramesProcessed.Inc()
		m.deps.Metrics.EAR.Set(res.EAR)
		m.deps.Metrics.MAR.Set(res.MAR)
		if res.Status.IsInactive() {
			m.deps.Metrics.InactiveSeconds.Set(inactiveSeconds)
		} else {
			m.deps.Metrics.InactiveSeconds.Set(0)
		}
	}

	currentInactive := inactiveSeconds
	if !res.Status.IsInactive() {
		currentInactive = 0
	}

	m.state.Write(func(s *Snapshot) {
		s.Status = res.Status
		s.EAR = res.EAR
		s.MAR = res.MAR
		s.FaceCount = res.FaceCount
		s.DrowsyCount = res.DrowsyCount
		s.YawnCount = res.YawnCount
		s.InactiveSeconds = currentInactive
		s.Emergency = emergencyActive
	})

	ev := StatusEvent{
		Status:          res.Status,
		EAR:             res.EAR,
		MAR:             res.MAR,
		FaceCount:       res.FaceCount,
		DrowsyCount:     res.DrowsyCount,
		YawnCount:       res.YawnCount,
		InactiveSeconds: currentInactive,
		Emergency:       emergencyActive,
	}
	select {
	case m.statusCh <- ev:
	default:
		// No consumer draining, drop the event.
	}
}
