package parameter

import "time"

// Spatial cache defaults
const (
	// CacheMaximumSize is the default hard entry bound
	CacheMaximumSize = 5000

	// CacheExpiry is the default idle time after which an entry expires
	CacheExpiry = 1 * time.Minute

	// CacheInitialCapacity is the default preallocation hint
	CacheInitialCapacity = 100
)
