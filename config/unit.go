package config

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var units = map[string]time.Duration{
	"ns": time.Nanosecond, "nanoseconds": time.Nanosecond,
	"us": time.Microsecond, "microseconds": time.Microsecond,
	"ms": time.Millisecond, "milliseconds": time.Millisecond,
	"s": time.Second, "seconds": time.Second,
	"m": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hours": time.Hour,
	"d": 24 * time.Hour, "days": 24 * time.Hour,
}

// ParseUnit resolves a time unit name, short or long form
func ParseUnit(s string) (time.Duration, error) {
	u, ok := units[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown time unit %q", ErrInvalid, s)
	}
	return u, nil
}

// Expiry combines expiry_duration and expiry_unit
func (c CacheConfig) Expiry() (time.Duration, error) {
	unit, err := ParseUnit(c.ExpiryUnit)
	if err != nil {
		return 0, err
	}
	if c.ExpiryDuration < 0 {
		return 0, fmt.Errorf("%w: negative expiry %d", ErrInvalid, c.ExpiryDuration)
	}
	if c.ExpiryDuration > int64(math.MaxInt64/unit) {
		return 0, fmt.Errorf("%w: expiry %d%s overflows", ErrInvalid, c.ExpiryDuration, c.ExpiryUnit)
	}
	return time.Duration(c.ExpiryDuration) * unit, nil
}
