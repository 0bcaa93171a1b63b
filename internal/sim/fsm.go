package sim

import "time"

// advanceElevator implements the per-elevator state machine of spec
// §4.5. All transitions fire when now >= stateEndTime.
func (w *World) advanceElevator(e *Elevator, now time.Time) {
	if now.Before(e.stateEndTime) {
		return
	}

	switch e.state {
	case StateIdle:
		w.advanceIdle(e, now)
	case StateMoving:
		w.advanceMoving(e, now)
	case StateDoorOpen:
		w.advanceDoorOpen(e, now)
	}
}

func (w *World) advanceIdle(e *Elevator, now time.Time) {
	var next int
	if len(e.stops) > 0 {
		next = e.stops[0]
		if next == e.currentFloor {
			// Drop it without opening the door. A passenger waiting
			// here is not boarded by this step; the still-latched call
			// is dispatched again on the next tick.
			e.popFrontStop()
			e.stateEndTime = now.Add(IdleRearmTime)
			return
		}
	} else {
		next = w.nearestWaitingFloor(e.currentFloor)
		if next == e.currentFloor {
			e.stateEndTime = now.Add(IdleRearmTime)
			return
		}
	}

	e.targetFloor = next
	e.dir = sign(next - e.currentFloor)
	e.state = StateMoving
	diff := iabs(next - e.currentFloor)
	duration := travelTime(diff)
	e.stateEndTime = now.Add(duration)

	hour := w.hour(now)
	w.stats.addTripStart(duration.Seconds())
	e.trips++
	w.hourly[hour].trips++
}

// nearestWaitingFloor returns the nearest floor (by distance from
// current) with any waiting passenger, or current if none exists
// (spec §4.5 Idle fallback).
func (w *World) nearestWaitingFloor(current int) int {
	best := current
	bestDist := -1
	for f := 1; f <= Floors; f++ {
		if !w.floors.hasAnyWaiting(f) {
			continue
		}
		dist := iabs(f - current)
		if bestDist == -1 || dist < bestDist {
			bestDist = dist
			best = f
		}
	}
	return best
}

func (w *World) advanceMoving(e *Elevator, now time.Time) {
	hour := w.hour(now)
	rate := w.schedule.RateCAD(hour)
	result := computeEnergy(e.currentFloor, e.targetFloor, len(e.onboard), rate)

	w.stats.addEnergy(result)
	w.hourly[hour].energyKWh += result.netWh / 1000.0
	e.energyKWh += result.netWh / 1000.0

	e.currentFloor = e.targetFloor
	e.dir = dirStop
	e.doorOpen = true
	e.state = StateDoorOpen
	e.stateEndTime = now.Add(DoorOpenTime)
	e.stopCount++
	e.doorOpenCount++

	e.removeStop(e.currentFloor)

	w.discharge(e)
	w.board(e, now, hour)
}

// discharge removes every onboard passenger whose destination is the
// current floor (spec §4.5 Moving->DoorOpen Discharge step).
func (w *World) discharge(e *Elevator) {
	kept := e.onboard[:0:0]
	for _, p := range e.onboard {
		if p.destFloor == e.currentFloor {
			w.stats.addDischarge()
			e.passengersMoved++
			continue
		}
		kept = append(kept, p)
	}
	e.onboard = kept
}

// board processes the Up queue then the Down queue at the current
// floor, boarding up to remaining capacity from each in turn (spec
// §4.5 Board step).
func (w *World) board(e *Elevator, now time.Time, hour int) {
	for _, d := range [2]direction{dirUp, dirDown} {
		capLeft := e.capacity - len(e.onboard)
		if capLeft <= 0 {
			continue
		}
		boarded := w.floors.dequeueUpTo(e.currentFloor, d, capLeft)
		for _, p := range boarded {
			waitSec := now.Sub(p.created).Seconds()
			w.stats.addWait(waitSec)
			w.hourly[hour].totalWaitSec += waitSec
			w.hourly[hour].waitCount++

			e.onboard = append(e.onboard, p)
			e.addStop(p.destFloor)
		}
	}
}

// advanceDoorOpen closes the door. Anyone waiting at the current floor
// boards before the door closes, not only on arrival from a move: a
// call dispatched to a car already parked open at that floor (the
// initial DoorOpen included) would otherwise sit in stops forever,
// since it never triggers a Moving->DoorOpen arrival. Running
// discharge/board here too costs nothing for the ordinary case (the
// queue is already drained from the arrival-edge call) and picks up
// anyone who walked up while the door happened to be open.
func (w *World) advanceDoorOpen(e *Elevator, now time.Time) {
	hour := w.hour(now)
	w.discharge(e)
	w.board(e, now, hour)
	e.removeStop(e.currentFloor)

	e.doorOpen = false
	e.state = StateIdle
	e.stateEndTime = now.Add(IdleRearmTime)
}
