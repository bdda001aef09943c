package activity

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/studywatch/platform/internal/status"
)

func newTestLogger(t *testing.T) *Logger {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.csv")
	l, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func readRows(t *testing.T, l *Logger) [][]string {
	t.Helper()
	f, err := os.Open(l.path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestNewLoggerWritesHeader(t *testing.T) {
	l := newTestLogger(t)
	rows := readRows(t, l)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0][0] != "Timestamp" || rows[0][8] != "Inactive_Duration" {
		t.Errorf("unexpected header: %v", rows[0])
	}
}

func TestNewLoggerPreservesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	l, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Log(Event{Status: status.Active, Description: "test"}); err != nil {
		t.Fatal(err)
	}

	// Reopening must not truncate or duplicate the header.
	l2, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	rows := readRows(t, l2)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
}

func TestLogStatusChangeTracksInactiveWindow(t *testing.T) {
	l := newTestLogger(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if err := l.LogStatusChange(status.Active, status.Drowsy, 0.18, 0.3); err != nil {
		t.Fatal(err)
	}
	now = now.Add(12 * time.Second)
	if err := l.LogStatusChange(status.Drowsy, status.FaceMissing, 0, 0); err != nil {
		t.Fatal(err)
	}
	now = now.Add(8 * time.Second)
	if err := l.LogStatusChange(status.FaceMissing, status.Active, 0.3, 0.2); err != nil {
		t.Fatal(err)
	}

	rows := readRows(t, l)
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	// Inactive-to-inactive keeps the window open.
	if rows[2][8] != "-" {
		t.Errorf("mid-window duration = %q, want -", rows[2][8])
	}
	// Return to Active closes the 20s window.
	if rows[3][8] != "20.0" {
		t.Errorf("closed window duration = %q, want 20.0", rows[3][8])
	}
	if !strings.Contains(rows[3][4], "Status changed from Inactive (Face Missing) to Active") {
		t.Errorf("unexpected description: %q", rows[3][4])
	}
}

func TestLogStatusChangeFormatsRatios(t *testing.T) {
	l := newTestLogger(t)
	if err := l.LogStatusChange(status.Active, status.Drowsy, 0.1834, 0.29999); err != nil {
		t.Fatal(err)
	}
	rows := readRows(t, l)
	if rows[1][6] != "0.183" {
		t.Errorf("EAR = %q, want 0.183", rows[1][6])
	}
	if rows[1][7] != "0.300" {
		t.Errorf("MAR = %q, want 0.300", rows[1][7])
	}
}

func TestInactiveDuration(t *testing.T) {
	l := newTestLogger(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if got := l.InactiveDuration(); got != 0 {
		t.Errorf("InactiveDuration = %v, want 0", got)
	}

	l.LogStatusChange(status.Active, status.NotAwake, 0, 0)
	now = now.Add(7 * time.Second)
	if got := l.InactiveDuration(); got != 7 {
		t.Errorf("InactiveDuration = %v, want 7", got)
	}

	l.ResetTracking()
	if got := l.InactiveDuration(); got != 0 {
		t.Errorf("InactiveDuration after reset = %v, want 0", got)
	}
}

func TestLogEmergency(t *testing.T) {
	l := newTestLogger(t)
	if err := l.LogEmergency(6.3); err != nil {
		t.Fatal(err)
	}
	rows := readRows(t, l)
	row := rows[1]
	if row[3] != "Emergency" {
		t.Errorf("status = %q, want Emergency", row[3])
	}
	if !strings.Contains(row[4], "after 6.3 seconds") {
		t.Errorf("unexpected description: %q", row[4])
	}
	if row[8] != "6.3" {
		t.Errorf("inactive duration = %q, want 6.3", row[8])
	}
}

func TestLogSessionResetsTracking(t *testing.T) {
	l := newTestLogger(t)
	l.LogStatusChange(status.Active, status.Drowsy, 0, 0)
	if err := l.LogSession("started"); err != nil {
		t.Fatal(err)
	}
	if got := l.InactiveDuration(); got != 0 {
		t.Errorf("InactiveDuration after session start = %v, want 0", got)
	}
	rows := readRows(t, l)
	last := rows[len(rows)-1]
	if last[3] != "System" || !strings.Contains(last[4], "Detection session started") {
		t.Errorf("unexpected session row: %v", last)
	}
}

func TestStats(t *testing.T) {
	l := newTestLogger(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.LogStatusChange(status.Active, status.Drowsy, 0.2, 0.3)
	now = now.Add(10 * time.Second)
	l.LogStatusChange(status.Drowsy, status.Active, 0.3, 0.2)
	l.LogEmergency(6.0)

	stats, err := l.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d, want 3", stats.TotalEvents)
	}
	if stats.StatusCounts["Drowsy"] != 1 || stats.StatusCounts["Emergency"] != 1 {
		t.Errorf("unexpected counts: %v", stats.StatusCounts)
	}
	if stats.InactivePeriods != 2 {
		t.Errorf("InactivePeriods = %d, want 2", stats.InactivePeriods)
	}
	if stats.MaxInactive != 10.0 {
		t.Errorf("MaxInactive = %v, want 10.0", stats.MaxInactive)
	}
}

func TestExport(t *testing.T) {
	l := newTestLogger(t)
	l.Log(Event{Status: status.Active, Description: "hello"})

	var sb strings.Builder
	if err := l.Export(&sb); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "hello") {
		t.Error("export missing logged event")
	}
	if !strings.HasPrefix(sb.String(), "Timestamp,") {
		t.Error("export missing header")
	}
}
