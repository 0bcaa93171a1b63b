package sim

import "time"

// hourOfDay derives the simulated hour-of-day 0..23 from elapsed wall
// time since start (spec §4.1): 30 real seconds = 1 simulated hour.
// Monotonic non-decrease is the only requirement on start/now.
func hourOfDay(start, now time.Time) int {
	elapsed := now.Sub(start).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	hour := int(elapsed/simSecondsPerHour) % 24
	return hour
}
