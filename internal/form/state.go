package form

// State is the phase of the form lifecycle.
type State int

const (
	// StateIdle accepts a new submission.
	StateIdle State = iota
	// StateValidating checks the raw input.
	StateValidating
	// StatePending waits for the dispatched call to settle.
	StatePending
	// StateSettling presents the result and releases the busy flag.
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StatePending:
		return "pending"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}
