// Package server provides HTTP and WebSocket handlers
package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/studywatch/platform/internal/activity"
	"github.com/studywatch/platform/internal/orchestrator"
	"github.com/studywatch/platform/internal/orchestrator/emergency"
	"github.com/studywatch/platform/internal/orchestrator/history"
	"github.com/studywatch/platform/internal/store"
	"github.com/studywatch/platform/internal/trace"
)

// Monitor is the detection orchestrator surface the server drives.
type Monitor interface {
	StartDetection(ctx context.Context) error
	StopDetection(ctx context.Context) error
	StopEmergency()
	Snapshot() orchestrator.Snapshot
	LatestFrame() []byte
	SetSpeechEnabled(enabled bool)
	StatusEvents() <-chan orchestrator.StatusEvent
	Flashes() <-chan emergency.FlashEvent
}

// ActivityReader exposes the activity log for reporting.
type ActivityReader interface {
	Stats() (activity.Stats, error)
	Export(w io.Writer) error
}

// SessionReader exposes persisted session history.
type SessionReader interface {
	ListSessions(ctx context.Context, limit int) ([]store.Session, error)
	Transitions(ctx context.Context, sessionID string) ([]store.Transition, error)
}

// HistoryReader exposes the in-memory status timeline.
type HistoryReader interface {
	Recent(window time.Duration) []history.Entry
	Summaries() []history.Summary
}

// Deps bundles the server's collaborators.
type Deps struct {
	Monitor      Monitor
	Activity     ActivityReader
	Sessions     SessionReader
	History      HistoryReader
	BreakerState func() string
	Metrics      http.Handler
}

// Message types.
type Message struct {
	Type string `json:"type"`
}

type CommandMessage struct {
	Type    string `json:"type"`
	Enabled *bool  `json:"enabled,omitempty"`
}

type StatusMessage struct {
	Type string `json:"type"`
	orchestrator.StatusEvent
}

type FlashMessage struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

type AckMessage struct {
	Type   string `json:"type"`
	Action string `json:"action"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// rateLimiter tracks message timestamps using a sliding window.
type rateLimiter struct {
	timestamps []time.Time
	mu         sync.Mutex
}

// allow checks if a message is allowed and records the timestamp if so.
func (r *rateLimiter) allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-RateLimitWindow)

	// Prune old timestamps
	valid := r.timestamps[:0]
	for _, t := range r.timestamps {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	r.timestamps = valid

	if len(r.timestamps) >= RateLimitMessages {
		return false
	}

	r.timestamps = append(r.timestamps, now)
	return true
}

// Server handles HTTP and WebSocket connections.
type Server struct {
	deps       Deps
	mu         sync.RWMutex
	conns      map[*websocket.Conn]struct{}
	rateLimits map[*websocket.Conn]*rateLimiter
}

// New creates a new server and starts its broadcast goroutines.
func New(deps Deps) *Server {
	s := &Server{
		deps:       deps,
		conns:      make(map[*websocket.Conn]struct{}),
		rateLimits: make(map[*websocket.Conn]*rateLimiter),
	}

	go s.broadcastStatus()
	go s.broadcastFlashes()

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", s.handleWebSocket)

	// REST API
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("POST /api/detection/start", s.handleDetectionStart)
	mux.HandleFunc("POST /api/detection/stop", s.handleDetectionStop)
	mux.HandleFunc("POST /api/emergency/stop", s.handleEmergencyStop)
	mux.HandleFunc("POST /api/speech", s.handleSpeech)
	mux.HandleFunc("GET /api/frame", s.handleFrame)
	mux.HandleFunc("GET /api/activity/stats", s.handleActivityStats)
	mux.HandleFunc("GET /api/activity/export", s.handleActivityExport)
	mux.HandleFunc("GET /api/sessions", s.handleSessions)
	mux.HandleFunc("GET /api/sessions/{id}/transitions", s.handleTransitions)
	mux.HandleFunc("GET /api/events/recent", s.handleRecentEvents)

	if s.deps.Metrics != nil {
		mux.Handle("GET /metrics", s.deps.Metrics)
	}

	// Apply middleware: trace -> CORS
	return corsMiddleware(trace.Middleware(mux))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("websocket accept error", "error", err)
		return
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.rateLimits[conn] = &rateLimiter{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		delete(s.rateLimits, conn)
		s.mu.Unlock()
	}()

	// Get trace context from HTTP upgrade request
	baseCtx := r.Context()
	log := trace.Logger(baseCtx)
	log.Info("websocket connected", "remote", r.RemoteAddr)

	// Send the current state so the client renders immediately.
	snap := s.deps.Monitor.Snapshot()
	_ = wsjson.Write(baseCtx, conn, StatusMessage{
		Type: "status",
		StatusEvent: orchestrator.StatusEvent{
			Status:          snap.Status,
			EAR:             snap.EAR,
			MAR:             snap.MAR,
			FaceCount:       snap.FaceCount,
			InactiveSeconds: snap.InactiveSeconds,
			Emergency:       snap.Emergency,
		},
	})

	for {
		var msg json.RawMessage
		if err := wsjson.Read(baseCtx, conn, &msg); err != nil {
			log.Debug("websocket read error", "error", err)
			return
		}

		// Check rate limit
		s.mu.RLock()
		rl := s.rateLimits[conn]
		s.mu.RUnlock()

		if !rl.allow() {
			log.Warn("rate limit exceeded", "remote", r.RemoteAddr)
			_ = wsjson.Write(baseCtx, conn, ErrorMessage{
				Type:    "error",
				Message: "rate limit exceeded",
			})
			continue
		}

		var cmd CommandMessage
		if err := json.Unmarshal(msg, &cmd); err != nil {
			continue
		}

		// Continue the caller's trace when the message carries one.
		ctx := baseCtx
		if tc, ok := trace.ExtractFromJSON(msg); ok {
			ctx = trace.WithContext(ctx, trace.NewChild(tc))
		} else {
			ctx, _ = trace.EnsureContext(ctx)
		}

		s.handleCommand(ctx, conn, cmd)
	}
}

func (s *Server) handleCommand(ctx context.Context, conn *websocket.Conn, cmd CommandMessage) {
	ctx, span := trace.StartSpan(ctx, "ws_"+cmd.Type)
	defer span.End()

	log := trace.Logger(ctx)

	switch cmd.Type {
	case "start_detection":
		if err := s.deps.Monitor.StartDetection(ctx); err != nil {
			span.SetAttr("error", err.Error())
			log.Error("start detection failed", "error", err)
			_ = wsjson.Write(ctx, conn, ErrorMessage{Type: "error", Message: err.Error()})
			return
		}
	case "stop_detection":
		if err := s.deps.Monitor.StopDetection(ctx); err != nil {
			span.SetAttr("error", err.Error())
			log.Error("stop detection failed", "error", err)
			_ = wsjson.Write(ctx, conn, ErrorMessage{Type: "error", Message: err.Error()})
			return
		}
	case "stop_emergency":
		s.deps.Monitor.StopEmergency()
	case "set_speech":
		if cmd.Enabled == nil {
			_ = wsjson.Write(ctx, conn, ErrorMessage{Type: "error", Message: "enabled field required"})
			return
		}
		s.deps.Monitor.SetSpeechEnabled(*cmd.Enabled)
	default:
		log.Debug("unknown command", "type", cmd.Type)
		return
	}

	_ = wsjson.Write(ctx, conn, AckMessage{Type: "ack", Action: cmd.Type})
}

func (s *Server) broadcastStatus() {
	for evt := range s.deps.Monitor.StatusEvents() {
		msg := StatusMessage{Type: "status", StatusEvent: evt}

		s.mu.RLock()
		for conn := range s.conns {
			go func(c *websocket.Conn) {
				_ = wsjson.Write(context.Background(), c, msg)
			}(conn)
		}
		s.mu.RUnlock()
	}
}

func (s *Server) broadcastFlashes() {
	for evt := range s.deps.Monitor.Flashes() {
		msg := FlashMessage{Type: "flash", Color: evt.Color}

		s.mu.RLock()
		for conn := range s.conns {
			go func(c *websocket.Conn) {
				_ = wsjson.Write(context.Background(), c, msg)
			}(conn)
		}
		s.mu.RUnlock()
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.deps.Monitor.Snapshot()

	resp := struct {
		orchestrator.Snapshot
		VisionBreaker string `json:"vision_breaker,omitempty"`
	}{Snapshot: snap}
	if s.deps.BreakerState != nil {
		resp.VisionBreaker = s.deps.BreakerState()
	}

	writeJSON(w, resp)
}

func (s *Server) handleDetectionStart(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Monitor.StartDetection(r.Context()); err != nil {
		trace.Logger(r.Context()).Error("start detection failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "detection_started"})
}

func (s *Server) handleDetectionStop(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Monitor.StopDetection(r.Context()); err != nil {
		trace.Logger(r.Context()).Error("stop detection failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "detection_stopped"})
}

func (s *Server) handleEmergencyStop(w http.ResponseWriter, r *http.Request) {
	s.deps.Monitor.StopEmergency()
	writeJSON(w, map[string]string{"status": "emergency_stopped"})
}

func (s *Server) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled *bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
		http.Error(w, "enabled field required", http.StatusBadRequest)
		return
	}
	s.deps.Monitor.SetSpeechEnabled(*req.Enabled)
	writeJSON(w, map[string]bool{"speech_enabled": *req.Enabled})
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	frame := s.deps.Monitor.LatestFrame()
	if frame == nil {
		http.Error(w, "no frame captured", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(frame)
}

func (s *Server) handleActivityStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.deps.Activity.Stats()
	if err != nil {
		trace.Logger(r.Context()).Error("activity stats failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats)
}

func (s *Server) handleActivityExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="attentiveness_log.csv"`)
	if err := s.deps.Activity.Export(w); err != nil {
		trace.Logger(r.Context()).Error("activity export failed", "error", err)
	}
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	limit := DefaultSessionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, MaxSessionLimit)
	}

	sessions, err := s.deps.Sessions.ListSessions(r.Context(), limit)
	if err != nil {
		trace.Logger(r.Context()).Error("list sessions failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, sessions)
}

func (s *Server) handleTransitions(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	transitions, err := s.deps.Sessions.Transitions(r.Context(), id)
	if err != nil {
		trace.Logger(r.Context()).Error("list transitions failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, transitions)
}

func (s *Server) handleRecentEvents(w http.ResponseWriter, r *http.Request) {
	if s.deps.History == nil {
		http.Error(w, "history not enabled", http.StatusNotFound)
		return
	}

	seconds := DefaultRecentWindowSec
	if raw := r.URL.Query().Get("seconds"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "invalid seconds", http.StatusBadRequest)
			return
		}
		seconds = n
	}

	writeJSON(w, struct {
		Entries   []history.Entry   `json:"entries"`
		Summaries []history.Summary `json:"summaries"`
	}{
		Entries:   s.deps.History.Recent(time.Duration(seconds) * time.Second),
		Summaries: s.deps.History.Summaries(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
