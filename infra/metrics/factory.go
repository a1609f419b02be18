package metrics

import (
	"github.com/kilianp07/evcs/core/logger"
	coremetrics "github.com/kilianp07/evcs/core/metrics"
)

// init registers the Prometheus sink under the "prometheus" type.
func init() {
	_ = coremetrics.RegisterSink(coremetrics.PrometheusSinkType, func(_ map[string]any, log logger.Logger) (coremetrics.Sink, error) {
		log.Debugf("prometheus sink registered on the default registry")
		return NewPromSink()
	})
}
