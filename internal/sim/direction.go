package sim

// direction mirrors the teacher's elev_al_go direction type: down=-1,
// stop=0, up=1, using internal floor numbering throughout.
type direction int

const (
	dirDown direction = -1
	dirStop direction = 0
	dirUp   direction = 1
)

func sign(n int) direction {
	switch {
	case n > 0:
		return dirUp
	case n < 0:
		return dirDown
	default:
		return dirStop
	}
}

func (d direction) String() string {
	switch d {
	case dirUp:
		return "up"
	case dirDown:
		return "down"
	default:
		return "stop"
	}
}
