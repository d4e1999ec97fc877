package launcher

// State is a phase of a launcher run.
type State int

const (
	StateInit State = iota
	StateSpawning
	StateWaiting
	StateOpening
	StateIdle
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateSpawning:
		return "spawning"
	case StateWaiting:
		return "waiting"
	case StateOpening:
		return "opening"
	case StateIdle:
		return "idle"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
