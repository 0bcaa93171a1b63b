package sim

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"elevsim/internal/config"
)

// World owns every mutable entity of the simulation — elevators, floor
// queues and latches, and statistics — behind a single mutex, per
// spec §5. HTTP handlers call SnapshotState/SnapshotStats, which take
// the same mutex, so a reply never observes a half-updated tick.
type World struct {
	mu sync.Mutex

	start    time.Time
	rng      *rand.Rand
	schedule config.Schedule

	floors    *floorBoard
	elevators []*Elevator

	stats  globalStats
	hourly [24]HourlyBucket

	trafficEnabled bool
}

// NewWorld constructs a World with NumElevators cars at their spec §4.5
// initial floors, all in DoorOpen for DoorOpenTime, anchored to now.
func NewWorld(schedule config.Schedule, seed int64, now time.Time) *World {
	w := &World{
		start:          now,
		rng:            rand.New(rand.NewSource(seed)),
		schedule:       schedule,
		floors:         newFloorBoard(Floors),
		trafficEnabled: true,
	}
	starts := initialFloors()
	for i := 0; i < NumElevators; i++ {
		w.elevators = append(w.elevators, newElevator(i+1, starts[i], now))
	}
	return w
}

// initialFloors returns the three internal starting floors of spec
// §4.5: 1, ceil((Floors+1)/2), Floors.
func initialFloors() [3]int {
	mid := (Floors + 1 + 1) / 2
	return [3]int{1, mid, Floors}
}

// SetTrafficEnabled toggles the traffic generator; tests disable it to
// drive deterministic scenarios (spec §8 scenarios S1-S6).
func (w *World) SetTrafficEnabled(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.trafficEnabled = enabled
}

// InjectPassenger manually enqueues a passenger for test scenarios,
// bypassing the traffic generator.
func (w *World) InjectPassenger(startFloor, destFloor int, now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.floors.enqueue(newPassenger(startFloor, destFloor, now))
	w.stats.passengers++
}

// Run executes the tick loop until ctx is cancelled, sleeping
// TickInterval between ticks (spec §5: the tick thread suspends only
// at this sleep).
func (w *World) Run(ctx context.Context) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			w.Tick(now)
		}
	}
}

// Tick advances the simulation by one step: traffic generation, then
// dispatch, then state-machine advancement in elevator-id order (spec
// §2, §5).
func (w *World) Tick(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.trafficEnabled {
		w.generateTraffic(now)
	}
	w.dispatch()
	for _, e := range w.elevators {
		w.advanceElevator(e, now)
	}
}

func (w *World) hour(now time.Time) int {
	return hourOfDay(w.start, now)
}

// generateTraffic implements spec §4.3. One Bernoulli trial per floor
// per tick, rate/60 as the per-tick success probability — this is the
// source behavior documented as-is in spec §9 (10x the labeled
// per-minute rate at 10 ticks/s); not silently "fixed" here.
func (w *World) generateTraffic(now time.Time) {
	hour := w.hour(now)
	ratePerMinute := w.schedule.RatePerMinute(hour)
	prob := ratePerMinute / 60.0

	for f := 1; f <= Floors; f++ {
		if w.rng.Float64() >= prob {
			continue
		}
		dest := f
		for dest == f {
			dest = 1 + w.rng.Intn(Floors)
		}
		p := newPassenger(f, dest, now)
		w.floors.enqueue(p)
		w.stats.passengers++
	}
}

// dispatch implements spec §4.4: for each latched hall call, select an
// elevator via nearest-K-then-least-cost and append the floor to its
// stop list. A call already present in some elevator's stops is
// treated as already assigned and is not redispatched every tick.
func (w *World) dispatch() {
	for f := 1; f <= Floors; f++ {
		if w.floors.up[f] {
			w.dispatchCall(f, dirUp)
		}
		if w.floors.down[f] {
			w.dispatchCall(f, dirDown)
		}
	}
}

func (w *World) dispatchCall(f int, d direction) {
	for _, e := range w.elevators {
		if e.hasStop(f) {
			return
		}
	}
	chosen := w.selectElevator(f, d)
	chosen.addStop(f)
}

type candidate struct {
	e    *Elevator
	dist int
}

// selectElevator implements the two-stage procedure of spec §4.4.
func (w *World) selectElevator(f int, d direction) *Elevator {
	candidates := make([]candidate, len(w.elevators))
	for i, e := range w.elevators {
		candidates[i] = candidate{e: e, dist: iabs(e.currentFloor - f)}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	k := nearestK
	if k > len(candidates) {
		k = len(candidates)
	}
	filtered := candidates[:k]

	minDist := filtered[0].dist
	for _, c := range filtered[1:] {
		if c.dist < minDist {
			minDist = c.dist
		}
	}

	var best *Elevator
	bestCost := 0.0
	for _, c := range filtered {
		e := c.e
		pickupTime := float64(c.dist) * 7.5

		reversal := 0.0
		if (e.dir == dirUp && d == dirDown) || (e.dir == dirDown && d == dirUp) {
			reversal = reversalPenalty
		}

		queuePenalty := float64(len(e.stops)) * queuePenaltyPer

		stopPenalty := 0.0
		if len(e.stops) > 0 {
			stopPenalty = stopPenaltyFlat
		}

		cost := weightPickup*pickupTime + weightReversal*reversal + weightQueue*queuePenalty + weightStop*stopPenalty
		if c.dist == minDist {
			cost -= tieBreakBonus
		}

		if best == nil || cost < bestCost {
			best = e
			bestCost = cost
		}
	}
	return best
}
