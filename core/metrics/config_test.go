package metrics_test

import (
	"testing"

	"github.com/kilianp07/evcs/core/factory"
	metrics "github.com/kilianp07/evcs/core/metrics"
)

func TestConfigSetDefaultsAddsPrometheusSink(t *testing.T) {
	c := metrics.Config{PrometheusAddr: ":9100", Sinks: []factory.ModuleConfig{{Type: "mqtt"}}}
	c.SetDefaults()
	if len(c.Sinks) != 2 || c.Sinks[1].Type != metrics.PrometheusSinkType {
		t.Fatalf("expected prometheus sink appended, got %+v", c.Sinks)
	}
	c.SetDefaults()
	if len(c.Sinks) != 2 {
		t.Fatalf("sink added twice: %+v", c.Sinks)
	}

	var none metrics.Config
	none.SetDefaults()
	if len(none.Sinks) != 0 {
		t.Fatalf("no address must not add sinks, got %+v", none.Sinks)
	}
}
