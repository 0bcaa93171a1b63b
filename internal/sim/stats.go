package sim

// HourlyBucket accumulates per-simulated-hour counters (spec §3).
type HourlyBucket struct {
	trips        int
	energyKWh    float64
	totalWaitSec float64
	waitCount    int
}

// globalStats accumulates the building-wide counters (spec §3). Field
// names match spec.md's GlobalStats entity.
type globalStats struct {
	trips              int
	passengers         int
	completedPassengers int
	totalWaitSec       float64
	totalTripSec       float64
	completedTrips     int

	energyConsumedWh   float64
	energyRegeneratedWh float64
	netEnergyWh        float64
	netEnergyKWh       float64

	totalCostCAD       float64
	costTraditionalCAD float64
}

func (g *globalStats) addTripStart(travelSec float64) {
	g.trips++
	g.completedTrips++
	g.totalTripSec += travelSec
}

func (g *globalStats) addEnergy(r energyResult) {
	g.energyConsumedWh += r.consumedWh
	g.energyRegeneratedWh += r.regenWh
	g.netEnergyWh += r.netWh
	g.netEnergyKWh += r.netWh / 1000.0
	g.totalCostCAD += r.costCAD
	g.costTraditionalCAD += r.costTradCAD
}

func (g *globalStats) addWait(waitSec float64) {
	g.totalWaitSec += waitSec
}

func (g *globalStats) addDischarge() {
	g.completedPassengers++
}
