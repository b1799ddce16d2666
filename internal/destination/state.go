package destination

import "fmt"

// State is the phase a Context has reached.
type State int

const (
	_ State = iota

	StatePrepared
	StateUpdated
	StateAssociationsBuilt
)

func (s State) String() string {
	switch s {
	case StatePrepared:
		return "prepared"
	case StateUpdated:
		return "updated"
	case StateAssociationsBuilt:
		return "associations built"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
