package sim

import "time"

// publicFloor and publicDirection invert the internal numbering
// (1=top) at the snapshot boundary only (spec §3). This is the sole
// contract between simulator and snapshot (spec §9).
func publicFloor(internal int) int {
	return Floors - internal + 1
}

func publicDirection(d direction) int {
	return -int(d)
}

// StateSnapshot is the /state wire shape (spec §6), in public
// coordinates.
type StateSnapshot struct {
	FloorCount int                `json:"floorCount"`
	Elevators  []ElevatorSnapshot `json:"elevators"`
}

type ElevatorSnapshot struct {
	ID           int    `json:"id"`
	CurrentFloor int    `json:"currentFloor"`
	TargetFloor  int    `json:"targetFloor"`
	Direction    int    `json:"direction"`
	DoorOpen     bool   `json:"doorOpen"`
	Load         int    `json:"load"`
	Capacity     int    `json:"capacity"`
	State        string `json:"state"`
	RemainingMs  int64  `json:"remainingMs"`
}

// SnapshotState takes the world mutex and returns a consistent
// point-in-time view of every elevator, in public coordinates.
func (w *World) SnapshotState(now time.Time) StateSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := StateSnapshot{FloorCount: Floors}
	for _, e := range w.elevators {
		remaining := e.stateEndTime.Sub(now)
		if remaining < 0 {
			remaining = 0
		}
		out.Elevators = append(out.Elevators, ElevatorSnapshot{
			ID:           e.ID,
			CurrentFloor: publicFloor(e.currentFloor),
			TargetFloor:  publicFloor(e.targetFloor),
			Direction:    publicDirection(e.dir),
			DoorOpen:     e.doorOpen,
			Load:         len(e.onboard),
			Capacity:     e.capacity,
			State:        e.state.String(),
			RemainingMs:  remaining.Milliseconds(),
		})
	}
	return out
}

// StatsSnapshot is the /stats (and /stats/daily) wire shape (spec §6).
type StatsSnapshot struct {
	FloorCount int `json:"floorCount"`

	TotalTrips      int     `json:"totalTrips"`
	TotalPassengers int     `json:"totalPassengers"`
	AvgWaitSec      float64 `json:"avgWaitSec"`
	AvgTripSec      float64 `json:"avgTripSec"`
	AvgEnergyKWh    float64 `json:"avgEnergyKWh"`
	PeakHour        int     `json:"peakHour"`

	TotalEnergyConsumedWh    float64 `json:"totalEnergyConsumedWh"`
	TotalEnergyRegeneratedWh float64 `json:"totalEnergyRegeneratedWh"`
	TotalNetEnergyWh         float64 `json:"totalNetEnergyWh"`

	TotalCostCAD       float64 `json:"totalCostCAD"`
	CostTraditionalCAD float64 `json:"costTraditionalCAD"`
	DailySavingsCAD    float64 `json:"dailySavingsCAD"`
	RegenPercent       float64 `json:"regenPercent"`

	Elevators []ElevatorStatsSnapshot `json:"elevators"`
	Hourly    []HourlyStatsSnapshot   `json:"hourly"`
}

type ElevatorStatsSnapshot struct {
	ID              int     `json:"id"`
	Trips           int     `json:"trips"`
	PassengersMoved int     `json:"passengersMoved"`
	EnergyKWh       float64 `json:"energyKWh"`
	DoorOpenCount   int     `json:"doorOpenCount"`
	StopCount       int     `json:"stopCount"`
}

type HourlyStatsSnapshot struct {
	Hour       int     `json:"hour"`
	Trips      int     `json:"trips"`
	AvgWaitSec float64 `json:"avgWaitSec"`
	EnergyKWh  float64 `json:"energyKWh"`
}

// SnapshotStats takes the world mutex and returns the aggregated
// statistics (spec §6). Averages use 0.0 when the denominator is zero.
func (w *World) SnapshotStats() StatsSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := StatsSnapshot{
		FloorCount:      Floors,
		TotalTrips:      w.stats.trips,
		TotalPassengers: w.stats.passengers,

		TotalEnergyConsumedWh:    w.stats.energyConsumedWh,
		TotalEnergyRegeneratedWh: w.stats.energyRegeneratedWh,
		TotalNetEnergyWh:         w.stats.netEnergyWh,
		TotalCostCAD:             w.stats.totalCostCAD,
		CostTraditionalCAD:       w.stats.costTraditionalCAD,
	}

	if w.stats.completedPassengers > 0 {
		out.AvgWaitSec = w.stats.totalWaitSec / float64(w.stats.completedPassengers)
	}
	if w.stats.completedTrips > 0 {
		out.AvgTripSec = w.stats.totalTripSec / float64(w.stats.completedTrips)
	}
	if w.stats.trips > 0 {
		out.AvgEnergyKWh = w.stats.netEnergyKWh / float64(w.stats.trips)
	}
	out.DailySavingsCAD = w.stats.costTraditionalCAD - w.stats.totalCostCAD
	if w.stats.energyConsumedWh > 0 {
		out.RegenPercent = 100.0 * w.stats.energyRegeneratedWh / w.stats.energyConsumedWh
	}

	peakHour, maxTrips := 0, -1
	for h := 0; h < 24; h++ {
		if w.hourly[h].trips > maxTrips {
			maxTrips = w.hourly[h].trips
			peakHour = h
		}
	}
	out.PeakHour = peakHour

	for _, e := range w.elevators {
		out.Elevators = append(out.Elevators, ElevatorStatsSnapshot{
			ID:              e.ID,
			Trips:           e.trips,
			PassengersMoved: e.passengersMoved,
			EnergyKWh:       e.energyKWh,
			DoorOpenCount:   e.doorOpenCount,
			StopCount:       e.stopCount,
		})
	}

	for h := 0; h < 24; h++ {
		b := w.hourly[h]
		avgWait := 0.0
		if b.waitCount > 0 {
			avgWait = b.totalWaitSec / float64(b.waitCount)
		}
		out.Hourly = append(out.Hourly, HourlyStatsSnapshot{
			Hour:       h,
			Trips:      b.trips,
			AvgWaitSec: avgWait,
			EnergyKWh:  b.energyKWh,
		})
	}

	return out
}
