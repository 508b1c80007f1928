// Package timing supplies injectable clocks for expiry-aware components
package timing

import "time"

// Clock is the time source consumed by the spatial cache
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time, monotonic component included
type SystemClock struct{}

// Now returns time.Now
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Since returns elapsed time between from and the clock's current reading
func Since(c Clock, from time.Time) time.Duration {
	return c.Now().Sub(from)
}
