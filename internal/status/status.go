// Package status defines attentiveness states and the debounced frame
// classifier that produces them.
package status

// Status is an attentiveness state. The string values double as the CSV log
// vocabulary and the labels shown by frontends, so they must stay stable.
type Status string

const (
	Active        Status = "Active"
	Drowsy        Status = "Drowsy"
	Yawning       Status = "Yawning"
	FaceMissing   Status = "Inactive (Face Missing)"
	NotAwake      Status = "Not Awake"
	MultipleFaces Status = "Multiple Persons Detected"
	FakePresence  Status = "Fake Presence"
	Emergency     Status = "Emergency"
	Inactive      Status = "Inactive"
)

// IsInactive reports whether a status counts toward the inactivity window
// that eventually escalates to the emergency protocol.
func (s Status) IsInactive() bool {
	switch s {
	case Drowsy, Yawning, FaceMissing, NotAwake, MultipleFaces, FakePresence, Inactive:
		return true
	}
	return false
}
