package core

import (
	"math"
	"time"
)

// Timebase converts game time-units into wall durations
type Timebase time.Duration

// Duration converts units; zero or negative units are immediate
func (tb Timebase) Duration(units float64) time.Duration {
	if units <= 0 {
		return 0
	}
	return time.Duration(math.Round(units * float64(tb)))
}
