package export

// State is a step of one export invocation.
//
//	Idle -> AwaitingPath -> Composing -> Done
//	             |              |
//	             v              v
//	         Cancelled        Failed
//
// A failing prompt also ends in Failed.
type State int

const (
	StateIdle State = iota
	StateAwaitingPath
	StateComposing
	StateDone
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingPath:
		return "awaiting_path"
	case StateComposing:
		return "composing"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can follow s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateCancelled || s == StateFailed
}
