// Package factory provides a small generic registry used to build pluggable
// modules, such as event sinks, from configuration. A module is described by
// a type string and a map of raw settings; factories decode the settings
// into typed structs and return the concrete implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[metrics.Sink]()
//	reg.Register("mqtt", func(conf map[string]any) (metrics.Sink, error) {
//	    var c struct{ Broker string `json:"broker"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newMQTTSink(c.Broker)
//	})
//	s, err := reg.Create(factory.ModuleConfig{Type: "mqtt", Conf: map[string]any{"broker": "tcp://localhost:1883"}})
package factory
