package insteon

import "sort"

// rampRateSeconds maps the device ramp-rate code (0x00-0x1F) to the fade
// duration in seconds. The table is not monotonic and contains duplicate
// durations (2s appears at both 0x00 and 0x1B), matching device firmware.
var rampRateSeconds = map[int]float64{
	0x00: 2,
	0x01: 480, 0x02: 420, 0x03: 360, 0x04: 300,
	0x05: 270, 0x06: 240, 0x07: 210, 0x08: 180,
	0x09: 150, 0x0A: 120, 0x0B: 90, 0x0C: 60,
	0x0D: 47, 0x0E: 43, 0x0F: 38.5, 0x10: 34,
	0x11: 32, 0x12: 30, 0x13: 28, 0x14: 26,
	0x15: 23.5, 0x16: 21.5, 0x17: 19, 0x18: 8.5,
	0x19: 6.5, 0x1A: 4.5, 0x1B: 2, 0x1C: 0.5,
	0x1D: 0.3, 0x1E: 0.2, 0x1F: 0.1,
}

const maxRampRateCode = 0x1F

// RampRateToSeconds converts a ramp-rate code to seconds. Unknown codes
// report the 2s factory default.
func RampRateToSeconds(code int) float64 {
	if s, ok := rampRateSeconds[code]; ok {
		return s
	}
	return rampRateSeconds[0x00]
}

// SecondsToRampRate converts seconds to the nearest ramp-rate code by
// absolute difference. Ties resolve to the lowest code.
func SecondsToRampRate(seconds float64) int {
	best := 0
	bestDelta := -1.0
	for code := 0; code <= maxRampRateCode; code++ {
		delta := rampRateSeconds[code] - seconds
		if delta < 0 {
			delta = -delta
		}
		if bestDelta < 0 || delta < bestDelta {
			bestDelta = delta
			best = code
		}
	}
	return best
}

// RampRateOptions returns the distinct ramp durations in ascending order,
// for presenting a selectable list of valid values.
func RampRateOptions() []float64 {
	seen := make(map[float64]struct{}, len(rampRateSeconds))
	out := make([]float64, 0, len(rampRateSeconds))
	for _, s := range rampRateSeconds {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Float64s(out)
	return out
}
