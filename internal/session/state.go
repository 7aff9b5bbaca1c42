package session

// State is the lock state of a [Session].
type State int

const (
	// Locked is the initial state and the state after Lock or a failed Unlock.
	Locked State = iota
	// Unlocked means a derived key is held.
	Unlocked
)

// String returns a lowercase label for logs and the UI.
func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}
