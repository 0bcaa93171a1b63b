package sim

import "time"

// ElevatorState is the three-state machine of spec §4.5.
type ElevatorState int

const (
	StateIdle ElevatorState = iota
	StateMoving
	StateDoorOpen
)

func (s ElevatorState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateMoving:
		return "Moving"
	case StateDoorOpen:
		return "DoorOpen"
	default:
		return "Unknown"
	}
}

// Elevator is one car of the bank. All fields use internal floor
// numbering (1=top). direction is derived-consistent with state: it is
// nonzero iff state == StateMoving (spec §3 invariant).
type Elevator struct {
	ID           int
	currentFloor int
	targetFloor  int
	dir          direction
	doorOpen     bool
	state        ElevatorState
	stateEndTime time.Time
	capacity     int
	onboard      []Passenger
	stops        []int

	trips           int
	passengersMoved int
	energyKWh       float64
	doorOpenCount   int
	stopCount       int
}

func newElevator(id, startFloor int, now time.Time) *Elevator {
	return &Elevator{
		ID:           id,
		currentFloor: startFloor,
		targetFloor:  startFloor,
		dir:          dirStop,
		doorOpen:     true,
		state:        StateDoorOpen,
		stateEndTime: now.Add(DoorOpenTime),
		capacity:     Capacity,
	}
}

// addStop appends f to stops if not already present (spec §3: stops
// has no duplicates).
func (e *Elevator) addStop(f int) {
	if e.hasStop(f) {
		return
	}
	e.stops = append(e.stops, f)
}

func (e *Elevator) hasStop(f int) bool {
	for _, s := range e.stops {
		if s == f {
			return true
		}
	}
	return false
}

// removeStop removes every occurrence of f from stops, preserving
// order (design notes §9: filter-and-rebuild instead of in-place
// erase).
func (e *Elevator) removeStop(f int) {
	kept := e.stops[:0:0]
	for _, s := range e.stops {
		if s != f {
			kept = append(kept, s)
		}
	}
	e.stops = kept
}

// popFrontStop removes and returns stops[0].
func (e *Elevator) popFrontStop() int {
	f := e.stops[0]
	e.stops = e.stops[1:]
	return f
}

// travelTime implements the travel time model of spec §4.2 for a move
// spanning n floors.
func travelTime(n int) time.Duration {
	var sec float64
	switch {
	case n <= 1:
		sec = 7.5
	case n == 2:
		sec = 15.0
	default:
		sec = 7.5 + 7.5 + 7.0*float64(n-2)
	}
	return time.Duration(sec * float64(time.Second))
}
