package sim

import (
	"time"

	"github.com/google/uuid"
)

// Passenger is created by the traffic generator and destroyed when an
// elevator discharges it at destFloor. Floors are internal (1=top).
type Passenger struct {
	ID        uuid.UUID
	startFloor int
	destFloor  int
	direction  direction
	created    time.Time
}

func newPassenger(start, dest int, now time.Time) Passenger {
	return Passenger{
		ID:         uuid.New(),
		startFloor: start,
		destFloor:  dest,
		direction:  sign(dest - start),
		created:    now,
	}
}
