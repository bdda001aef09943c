// Package activity persists attentiveness events to a CSV log.
package activity

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/studywatch/platform/internal/status"
)

var header = []string{
	"Timestamp", "Date", "Time", "Status", "Description",
	"Duration_Seconds", "EAR_Value", "MAR_Value", "Inactive_Duration",
}

// Event is a single row in the activity log.
type Event struct {
	Status      status.Status
	Description string
	Duration    float64
	EAR         float64
	MAR         float64
	// InactiveFor is the closed inactive window in seconds, or "-" when
	// no window applies.
	InactiveFor string
}

// Logger appends events to a CSV file. It tracks the current inactive
// window so transitions back to Active carry the window's duration.
type Logger struct {
	mu   sync.Mutex
	path string
	now  func() time.Time

	inactiveStart time.Time
}

// NewLogger opens (or creates) the log file and writes the header row if
// the file is new.
func NewLogger(path string) (*Logger, error) {
	l := &Logger{path: path, now: time.Now}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		w := csv.NewWriter(f)
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := f.Close(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Log appends one event row.
func (l *Logger) Log(ev Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.write(ev)
}

func (l *Logger) write(ev Event) error {
	now := l.now()
	inactiveFor := ev.InactiveFor
	if inactiveFor == "" {
		inactiveFor = "-"
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	record := []string{
		now.Format("2006-01-02 15:04:05"),
		now.Format("2006-01-02"),
		now.Format("15:04:05"),
		string(ev.Status),
		ev.Description,
		formatFloat(ev.Duration),
		fmt.Sprintf("%.3f", ev.EAR),
		fmt.Sprintf("%.3f", ev.MAR),
		inactiveFor,
	}
	if err := w.Write(record); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	slog.Debug("activity logged", "status", ev.Status, "description", ev.Description)
	return nil
}

// LogStatusChange records a transition and maintains inactive-window
// bookkeeping. The window opens when Active turns inactive and closes,
// with its duration logged, when the user turns Active again.
func (l *Logger) LogStatusChange(old, new status.Status, ear, mar float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	inactiveFor := "-"

	switch {
	case old.IsInactive() && new == status.Active:
		if !l.inactiveStart.IsZero() {
			inactiveFor = fmt.Sprintf("%.1f", now.Sub(l.inactiveStart).Seconds())
			l.inactiveStart = time.Time{}
		}
	case old == status.Active && new.IsInactive():
		l.inactiveStart = now
	case old.IsInactive() && new.IsInactive():
		// Window stays open across inactive-to-inactive transitions.
	default:
		l.inactiveStart = time.Time{}
	}

	return l.write(Event{
		Status:      new,
		Description: fmt.Sprintf("Status changed from %s to %s", old, new),
		EAR:         ear,
		MAR:         mar,
		InactiveFor: inactiveFor,
	})
}

// LogEmergency records an emergency trigger after the given inactivity.
func (l *Logger) LogEmergency(inactiveSeconds float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.write(Event{
		Status:      status.Emergency,
		Description: fmt.Sprintf("Emergency protocol triggered after %.1f seconds of inactivity", inactiveSeconds),
		Duration:    inactiveSeconds,
		InactiveFor: fmt.Sprintf("%.1f", inactiveSeconds),
	})
}

// LogSession records a detection session boundary and resets tracking.
func (l *Logger) LogSession(action string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inactiveStart = time.Time{}
	return l.write(Event{
		Status:      "System",
		Description: fmt.Sprintf("Detection session %s", action),
	})
}

// LogReturnToActive records the end of an inactive window explicitly.
func (l *Logger) LogReturnToActive(inactiveSeconds, ear, mar float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inactiveStart = time.Time{}
	return l.write(Event{
		Status:      status.Active,
		Description: fmt.Sprintf("User returned to active state after %.1f seconds of inactivity", inactiveSeconds),
		EAR:         ear,
		MAR:         mar,
		InactiveFor: fmt.Sprintf("%.1f", inactiveSeconds),
	})
}

// ResetTracking clears the open inactive window.
func (l *Logger) ResetTracking() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inactiveStart = time.Time{}
}

// InactiveDuration returns how long the current inactive window has been
// open, or 0 when the user is active.
func (l *Logger) InactiveDuration() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inactiveStart.IsZero() {
		return 0
	}
	return l.now().Sub(l.inactiveStart).Seconds()
}

// Stats summarizes the log file.
type Stats struct {
	TotalEvents  int            `json:"total_events"`
	StatusCounts map[string]int `json:"status_counts"`

	InactivePeriods int     `json:"inactive_periods"`
	AverageInactive float64 `json:"average_inactive_seconds"`
	MaxInactive     float64 `json:"max_inactive_seconds"`
}

// Stats reads the log file and aggregates per-status counts and
// inactive-window durations.
func (l *Logger) Stats() (Stats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Stats{StatusCounts: map[string]int{}}, nil
		}
		return Stats{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil { // header
		if err == io.EOF {
			return Stats{StatusCounts: map[string]int{}}, nil
		}
		return Stats{}, err
	}

	stats := Stats{StatusCounts: map[string]int{}}
	var totalInactive float64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Stats{}, err
		}
		if len(record) < len(header) {
			continue
		}
		stats.TotalEvents++
		stats.StatusCounts[record[3]]++

		if record[8] != "-" {
			if d, err := strconv.ParseFloat(record[8], 64); err == nil {
				stats.InactivePeriods++
				totalInactive += d
				if d > stats.MaxInactive {
					stats.MaxInactive = d
				}
			}
		}
	}
	if stats.InactivePeriods > 0 {
		stats.AverageInactive = totalInactive / float64(stats.InactivePeriods)
	}
	return stats, nil
}

// Export copies the log to w.
func (l *Logger) Export(w io.Writer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
