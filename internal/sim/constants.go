// Package sim implements the elevator bank simulation core: the
// per-elevator state machine, the group dispatcher, the physics-based
// energy accountant, and the statistics aggregator. Everything here is
// driven by a single tick loop under one mutex (see World).
package sim

import "time"

// Building geometry. Floors are numbered internally with 1 at the top
// and Floors at the bottom; publicFloor/publicDirection in snapshot.go
// invert this at the serialization boundary only.
const (
	Floors        = 5
	NumElevators  = 3
	Capacity      = 10
	TickInterval  = 100 * time.Millisecond
	DoorOpenTime  = 5 * time.Second
	IdleRearmTime = 1 * time.Second
)

// Dispatcher weights (spec §4.4).
const (
	nearestK        = 2
	weightPickup    = 1.8
	weightReversal  = 1.3
	weightQueue     = 1.4
	weightStop      = 0.8
	reversalPenalty = 14.0
	queuePenaltyPer = 18.0
	stopPenaltyFlat = 6.0
	tieBreakBonus   = 1.0
)

// Energy model constants (spec §4.6).
const (
	floorHeightM    = 5.0
	carMassKg       = 500.0
	counterWeightKg = 1400.0
	motorEfficiency = 0.85
	regenEfficiency = 0.78
	supercapEff     = 0.95
	personMassKg    = 65.0
	gravity         = 9.8
	regenHeavyMass  = 400.0
)

// simSecondsPerHour: 30 real seconds = 1 simulated hour (spec §4.1).
const simSecondsPerHour = 30.0
