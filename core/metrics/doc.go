// Package metrics defines the sink contract for observing booking activity.
// Sinks such as the Prometheus and MQTT ones in infra record bookings,
// cancellations and reviews and can be combined with NewMultiSink. NewSink
// builds a MultiSink automatically when several sinks are configured.
package metrics
