package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes recorded per tooltip request.
const (
	OutcomeRendered = "rendered"
	OutcomeAbsent   = "absent"
	OutcomeRejected = "rejected"
)

// TooltipCollector exposes tooltip rendering metrics.
type TooltipCollector struct {
	gatherer prometheus.Gatherer

	RendersTotal   *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
}

// NewTooltipCollector registers tooltip metrics against the provided registerer.
func NewTooltipCollector(reg prometheus.Registerer) (*TooltipCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catchmap_tooltip_renders_total",
		Help: "Tooltip requests by tooltip name and outcome.",
	}, []string{"tooltip", "outcome"})
	renders, err := registerCounterVec(reg, renders, "catchmap_tooltip_renders_total")
	if err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catchmap_tooltip_render_duration_seconds",
		Help:    "Time spent decoding and rendering a tooltip.",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	}, []string{"tooltip"})
	duration, err = registerHistogramVec(reg, duration, "catchmap_tooltip_render_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &TooltipCollector{
		gatherer:       gatherer,
		RendersTotal:   renders,
		RenderDuration: duration,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *TooltipCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// ObserveRender records one tooltip request. A nil collector is a no-op.
func (c *TooltipCollector) ObserveRender(tooltip, outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.RendersTotal.WithLabelValues(tooltip, outcome).Inc()
	c.RenderDuration.WithLabelValues(tooltip).Observe(d.Seconds())
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
