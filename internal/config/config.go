// Package config decodes the simulation's tabular tunables — the
// traffic-rate-by-hour table and the time-of-use tariff table — from an
// embedded YAML document, in the style of the teacher's
// elev_al_go/elevator.go loadConfig (yaml.NewDecoder(file).Decode(&c)).
//
// Unlike the teacher, this module has no on-disk config file: the YAML
// text is embedded in the binary at build time via embed.FS, so the
// values remain the compile-time constants spec.md §6 requires while
// still being expressed the teacher's declarative way rather than as a
// bare Go map literal.
package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

// TrafficRate is one entry of the per-hour passenger arrival rate table
// (spec §4.3). HourEnd is exclusive.
type TrafficRate struct {
	HourStart int     `yaml:"hourStart"`
	HourEnd   int     `yaml:"hourEnd"`
	PerMinute float64 `yaml:"perMinute"`
}

// TOUBand is one entry of the time-of-use electricity tariff table
// (spec §4.6). HourEnd is exclusive and may wrap past midnight
// (HourEnd <= HourStart) for the overnight band.
type TOUBand struct {
	HourStart int     `yaml:"hourStart"`
	HourEnd   int     `yaml:"hourEnd"`
	RateCAD   float64 `yaml:"rateCAD"`
}

// Schedule bundles both tables. World accepts a Schedule so tests can
// substitute alternate tables; production always uses Default.
type Schedule struct {
	TrafficRates []TrafficRate `yaml:"trafficRates"`
	TOUBands     []TOUBand     `yaml:"touBands"`
	// DefaultPerMinute is the rate used when no TrafficRates entry
	// matches the hour (spec §4.3: "otherwise 0.05").
	DefaultPerMinute float64 `yaml:"defaultPerMinute"`
}

// RatePerMinute returns the passenger arrival rate for the given
// simulated hour, falling back to DefaultPerMinute when no band
// matches.
func (s Schedule) RatePerMinute(hour int) float64 {
	for _, r := range s.TrafficRates {
		if hourInBand(hour, r.HourStart, r.HourEnd) {
			return r.PerMinute
		}
	}
	return s.DefaultPerMinute
}

// RateCAD returns the TOU electricity price (CAD/kWh) for the given
// simulated hour. Panics if the schedule is malformed and no band
// covers the hour — the embedded Default schedule is total over
// [0,24) by construction.
func (s Schedule) RateCAD(hour int) float64 {
	for _, b := range s.TOUBands {
		if hourInBand(hour, b.HourStart, b.HourEnd) {
			return b.RateCAD
		}
	}
	panic(fmt.Sprintf("config: no TOU band covers hour %d", hour))
}

func hourInBand(hour, start, end int) bool {
	if start < end {
		return hour >= start && hour < end
	}
	// wraps past midnight, e.g. [23,24) U [0,7) encoded as start=23 end=7
	return hour >= start || hour < end
}

//go:embed schedule.yaml
var scheduleYAML []byte

// Default is the schedule decoded from the embedded schedule.yaml at
// package init, mirroring spec.md §4.3 and §4.6 exactly.
var Default Schedule

func init() {
	if err := yaml.Unmarshal(scheduleYAML, &Default); err != nil {
		panic(fmt.Errorf("config: decoding embedded schedule: %w", err))
	}
}
