package sim

// energyResult is the output of one arrival's energy accounting (spec
// §4.6): Wh consumed and regenerated for the leg just completed, plus
// the CAD cost of the net and the "traditional" (consumed-only) price.
type energyResult struct {
	consumedWh float64
	regenWh    float64
	netWh      float64
	costCAD    float64
	costTradCAD float64
}

// computeEnergy implements the counter-weighted lift model of spec
// §4.6 for a single leg from startFloor to endFloor carrying paxCount
// passengers, priced at rateCADPerKWh (the TOU rate for the arrival
// hour).
func computeEnergy(startFloor, endFloor, paxCount int, rateCADPerKWh float64) energyResult {
	loadKg := float64(paxCount) * personMassKg
	netMass := loadKg + carMassKg - counterWeightKg
	distance := float64(iabs(endFloor-startFloor)) * floorHeightM
	potentialWh := absFloat(netMass) * gravity * distance / 3600.0

	var consumedWh, regenWh float64
	ascending := endFloor > startFloor

	switch {
	case ascending && netMass > 0:
		consumedWh = potentialWh / motorEfficiency
	case ascending && netMass <= 0:
		consumedWh = 0.1 * distance
	case !ascending && netMass > 0:
		consumedWh = 0.15 * potentialWh
		if netMass > regenHeavyMass {
			regenWh = potentialWh * regenEfficiency * supercapEff
		} else {
			regenWh = 0.5 * potentialWh * regenEfficiency * supercapEff
		}
	case !ascending && netMass <= 0:
		consumedWh = potentialWh / motorEfficiency
	}

	netWh := consumedWh - regenWh
	return energyResult{
		consumedWh:  consumedWh,
		regenWh:     regenWh,
		netWh:       netWh,
		costCAD:     netWh * rateCADPerKWh / 1000.0,
		costTradCAD: consumedWh * rateCADPerKWh / 1000.0,
	}
}

func iabs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
