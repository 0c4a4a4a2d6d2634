package indigo

// State is a step of the match state machine
type State int

// states
const (
	StateDealing State = iota
	StateAwaitingPlay
	StateEvaluatingTrick
	StateFinalizing
	StateDone
)

func (s State) String() string {
	switch s {
	case StateDealing:
		return "dealing"
	case StateAwaitingPlay:
		return "awaitingPlay"
	case StateEvaluatingTrick:
		return "evaluatingTrick"
	case StateFinalizing:
		return "finalizing"
	case StateDone:
		return "done"
	}

	return "unknown"
}

// MarshalText renders the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
