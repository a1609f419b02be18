package metrics

import "github.com/kilianp07/evcs/core/factory"

// PrometheusSinkType is the registered type of the Prometheus sink.
const PrometheusSinkType = "prometheus"

// Config defines the event sinks and the optional Prometheus endpoint.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusAddr enables the /metrics HTTP endpoint when non-empty, e.g. ":9100".
	// It also enables the Prometheus sink if none is configured.
	PrometheusAddr string `json:"prometheus_addr"`
}

// SetDefaults adds a Prometheus sink when an endpoint address is set, so
// /metrics always exposes the booking metrics.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		return
	}
	for _, s := range c.Sinks {
		if s.Type == PrometheusSinkType {
			return
		}
	}
	c.Sinks = append(c.Sinks, factory.ModuleConfig{Type: PrometheusSinkType})
}
