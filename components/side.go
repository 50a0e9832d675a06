package components

// Side identifies a court half and the player defending it
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Direction is a vertical paddle move intent
type Direction int8

const (
	DirUp   Direction = -1
	DirDown Direction = 1
)
