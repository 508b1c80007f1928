package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/gamearea/parameter"
	"github.com/lixenwraith/gamearea/status"
	"github.com/lixenwraith/gamearea/timing"
)

// ErrInvalidOptions is returned by New for out-of-range configuration
var ErrInvalidOptions = errors.New("invalid cache options")

// Options configure a Cache at construction; there is no runtime reconfiguration
type Options struct {
	// MaximumSize is the hard entry bound, must be > 0
	MaximumSize int

	// Expiry is the idle time since last access after which an entry is dropped
	// Zero disables retention: stored values are returned but never served back
	Expiry time.Duration

	// InitialCapacity is a preallocation hint only, must be >= 0
	InitialCapacity int

	// Clock drives expiry; nil selects the system clock
	Clock timing.Clock

	// Metrics receives hit/miss/eviction counters under Name; nil keeps them private
	Metrics *status.Registry

	// Name prefixes metric keys, defaults to "cache"
	Name string
}

// DefaultOptions returns the engine defaults: 5000 entries, 1 minute access expiry
func DefaultOptions() Options {
	return Options{
		MaximumSize:     parameter.CacheMaximumSize,
		Expiry:          parameter.CacheExpiry,
		InitialCapacity: parameter.CacheInitialCapacity,
	}
}

// Validate checks the numeric bounds
func (o Options) Validate() error {
	if o.MaximumSize <= 0 {
		return fmt.Errorf("%w: maximum size %d must be positive", ErrInvalidOptions, o.MaximumSize)
	}
	if o.Expiry < 0 {
		return fmt.Errorf("%w: expiry %v must not be negative", ErrInvalidOptions, o.Expiry)
	}
	if o.InitialCapacity < 0 {
		return fmt.Errorf("%w: initial capacity %d must not be negative", ErrInvalidOptions, o.InitialCapacity)
	}
	return nil
}
