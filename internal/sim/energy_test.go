package sim

import "testing"

func TestComputeEnergy(t *testing.T) {
	const rate = 0.122

	testCases := []struct {
		name             string
		startFloor       int
		endFloor         int
		paxCount         int
		wantConsumedWh   float64
		wantRegenPresent bool
	}{
		{
			name:           "ascending netMass<=0 uses floor-distance heuristic",
			startFloor:     2,
			endFloor:       5,
			paxCount:       1,
			wantConsumedWh: 0.1 * (3 * floorHeightM),
		},
		{
			name:           "descending netMass<=0 costs full potential over motor efficiency",
			startFloor:     5,
			endFloor:       2,
			paxCount:       1,
			wantConsumedWh: (absFloat(1*personMassKg+carMassKg-counterWeightKg) * gravity * (3 * floorHeightM) / 3600.0) / motorEfficiency,
		},
		{
			name:             "ascending netMass>0 is charged potential over motor efficiency, no regen",
			startFloor:       1,
			endFloor:         3,
			paxCount:         14, // loadKg=910, netMass=910+500-1400=10>0
			wantConsumedWh:   (absFloat(14*personMassKg+carMassKg-counterWeightKg) * gravity * (2 * floorHeightM) / 3600.0) / motorEfficiency,
			wantRegenPresent: false,
		},
		{
			name:             "descending netMass>0, at or below the heavy threshold, regenerates half",
			startFloor:       3,
			endFloor:         1,
			paxCount:         14, // netMass=10, below regenHeavyMass(400)
			wantRegenPresent: true,
		},
		{
			name:             "descending netMass>0, above the heavy threshold, regenerates in full",
			startFloor:       3,
			endFloor:         1,
			paxCount:         21, // loadKg=1365, netMass=465>400
			wantRegenPresent: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := computeEnergy(tc.startFloor, tc.endFloor, tc.paxCount, rate)

			if tc.wantConsumedWh != 0 && !almostEqual(result.consumedWh, tc.wantConsumedWh) {
				t.Errorf("consumedWh = %v, want %v", result.consumedWh, tc.wantConsumedWh)
			}
			if tc.wantRegenPresent && result.regenWh <= 0 {
				t.Errorf("expected regenWh > 0, got %v", result.regenWh)
			}
			if !tc.wantRegenPresent && result.regenWh != 0 {
				t.Errorf("expected regenWh == 0, got %v", result.regenWh)
			}

			wantNet := result.consumedWh - result.regenWh
			if !almostEqual(result.netWh, wantNet) {
				t.Errorf("netWh = %v, want %v", result.netWh, wantNet)
			}
			wantCost := wantNet * rate / 1000.0
			if !almostEqual(result.costCAD, wantCost) {
				t.Errorf("costCAD = %v, want %v", result.costCAD, wantCost)
			}
			wantTrad := result.consumedWh * rate / 1000.0
			if !almostEqual(result.costTradCAD, wantTrad) {
				t.Errorf("costTradCAD = %v, want %v", result.costTradCAD, wantTrad)
			}
		})
	}
}

func TestComputeEnergyRegenHeavyVsLight(t *testing.T) {
	light := computeEnergy(3, 1, 14, 0.122)  // netMass=10, light branch
	heavy := computeEnergy(3, 1, 21, 0.122) // netMass=465, heavy branch

	lightPotential := absFloat(14*personMassKg+carMassKg-counterWeightKg) * gravity * (2 * floorHeightM) / 3600.0
	heavyPotential := absFloat(21*personMassKg+carMassKg-counterWeightKg) * gravity * (2 * floorHeightM) / 3600.0

	wantLightRegen := 0.5 * lightPotential * regenEfficiency * supercapEff
	wantHeavyRegen := heavyPotential * regenEfficiency * supercapEff

	if !almostEqual(light.regenWh, wantLightRegen) {
		t.Errorf("light regenWh = %v, want %v", light.regenWh, wantLightRegen)
	}
	if !almostEqual(heavy.regenWh, wantHeavyRegen) {
		t.Errorf("heavy regenWh = %v, want %v", heavy.regenWh, wantHeavyRegen)
	}
}

func TestComputeEnergyZeroDistance(t *testing.T) {
	result := computeEnergy(5, 5, 3, 0.122)
	if result.consumedWh != 0 || result.regenWh != 0 || result.netWh != 0 {
		t.Errorf("zero-distance leg should cost nothing, got %+v", result)
	}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	return absFloat(a-b) < eps
}
