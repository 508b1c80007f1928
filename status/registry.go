// Package status holds lock-free runtime metrics shared between the cache,
// the projector and the demo status line
package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Producers cache pointers from Get once; hot paths then write atomics directly
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
	Labels   *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
		Labels:   NewMetricMap[AtomicString](),
	}
}

// Add increments a counter by delta and returns the new value
func (r *Registry) Add(key string, delta int64) int64 {
	return r.Counters.Get(key).Add(delta)
}

// SetGauge stores a gauge value
func (r *Registry) SetGauge(key string, val float64) {
	r.Gauges.Get(key).Set(val)
}

// SetLabel stores a label value
func (r *Registry) SetLabel(key, val string) {
	r.Labels.Get(key).Store(val)
}

// Lines renders every metric as "key=value", counters then gauges then labels,
// each group in key order
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Counters.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, key+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Gauges.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.3f", key, v.Get()))
	})
	r.Labels.Range(func(key string, v *AtomicString) {
		lines = append(lines, key+"="+v.Load())
	})
	return lines
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count() + r.Labels.Count()
}
