package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTooltipCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewTooltipCollector(reg)
	if err != nil {
		t.Fatalf("new collector: %v", err)
	}
	if c.Gatherer() != reg {
		t.Fatalf("expected registry to be used as gatherer")
	}

	c.ObserveRender("pathTooltip", OutcomeRendered, time.Millisecond)
	c.ObserveRender("pathTooltip", OutcomeRendered, time.Millisecond)
	c.ObserveRender("pathTooltip", OutcomeAbsent, 0)

	if got := testutil.ToFloat64(c.RendersTotal.WithLabelValues("pathTooltip", OutcomeRendered)); got != 2 {
		t.Fatalf("expected 2 rendered, got %v", got)
	}
	if got := testutil.ToFloat64(c.RendersTotal.WithLabelValues("pathTooltip", OutcomeAbsent)); got != 1 {
		t.Fatalf("expected 1 absent, got %v", got)
	}
}

func TestTooltipCollectorReregister(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewTooltipCollector(reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := NewTooltipCollector(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.RendersTotal != second.RendersTotal {
		t.Fatalf("expected existing counter to be reused")
	}
}

func TestNilTooltipCollector(t *testing.T) {
	var c *TooltipCollector
	c.ObserveRender("hexagonTooltip", OutcomeRendered, time.Second)
	if c.Gatherer() != nil {
		t.Fatalf("expected nil gatherer")
	}
}
