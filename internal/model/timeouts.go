package model

import "time"

// Timeouts are the budgets, shared by the container, for waiting on source
// maps. A zero Load budget means loads are not bounded.
type Timeouts struct {
	Load                     time.Duration
	ResolveLocation          time.Duration
	SourceMapMinPause        time.Duration
	SourceMapCumulativePause time.Duration
	Output                   time.Duration
}

// DefaultTimeouts returns the budgets used when nothing is configured.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Load:                     0,
		ResolveLocation:          2000 * time.Millisecond,
		SourceMapMinPause:        1000 * time.Millisecond,
		SourceMapCumulativePause: 0,
		Output:                   1000 * time.Millisecond,
	}
}

// TimeoutsFromMillis builds Timeouts from the millisecond options recognized in
// configuration. Negative values fall back to the defaults.
func TimeoutsFromMillis(load, resolveLocation, minPause, cumulativePause, output int64) Timeouts {
	defaults := DefaultTimeouts()

	pick := func(ms int64, fallback time.Duration) time.Duration {
		if ms < 0 {
			return fallback
		}

		return time.Duration(ms) * time.Millisecond
	}

	return Timeouts{
		Load:                     pick(load, defaults.Load),
		ResolveLocation:          pick(resolveLocation, defaults.ResolveLocation),
		SourceMapMinPause:        pick(minPause, defaults.SourceMapMinPause),
		SourceMapCumulativePause: pick(cumulativePause, defaults.SourceMapCumulativePause),
		Output:                   pick(output, defaults.Output),
	}
}
