package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the simulation and renderers
const (
	KeyTicks      = "engine.ticks"
	KeyFieldSolve = "nav.solves"
	KeyFieldHit   = "nav.cache_hits"
	KeyFPS        = "render.fps"
	KeyFrameMs    = "render.frame_ms"
	KeyEvents     = "session.events"
)

// Registry is the central metrics facade
// Callers cache pointers during init; update loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Line renders every metric as "key=value" pairs in sorted key order, ints first
func (r *Registry) Line() string {
	parts := make([]string, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", key, v.Get()))
	})
	return strings.Join(parts, " ")
}
