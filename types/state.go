package types

// State represents the organizer's draw lifecycle state.
//
// States follow a defined progression during normal operation:
//
//	StateIdle → StateDrafted → StatePublished
//
// A new allocation moves back to StateDrafted; Clear moves StatePublished back to
// StateDrafted (or StateIdle when nothing was ever allocated locally).
type State int

const (
	// StateIdle indicates no partition has been allocated or published yet.
	StateIdle State = iota

	// StateDrafted indicates a current partition exists that participants cannot see.
	StateDrafted

	// StatePublished indicates the current partition is visible to participants.
	StatePublished
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDrafted:
		return "Drafted"
	case StatePublished:
		return "Published"
	default:
		return "Unknown"
	}
}
