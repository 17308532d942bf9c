package state

// LoopState represents whether the tick loop is driving the simulation
type LoopState int32

const (
	LoopStopped LoopState = iota
	LoopRunning
)

// String returns the string representation of the loop state
func (s LoopState) String() string {
	switch s {
	case LoopStopped:
		return "Stopped"
	case LoopRunning:
		return "Running"
	default:
		return "Unknown"
	}
}
