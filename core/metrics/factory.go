package metrics

import (
	"github.com/kilianp07/evcs/core/factory"
	"github.com/kilianp07/evcs/core/logger"
)

// SinkFactory builds a sink from its raw settings. log is the configured
// application logger; factories must not open their own output.
type SinkFactory func(conf map[string]any, log logger.Logger) (Sink, error)

// sinkBuilder defers construction until the logger is known.
type sinkBuilder func(logger.Logger) (Sink, error)

var sinkRegistry = factory.NewRegistry[sinkBuilder]()

func init() {
	_ = RegisterSink("nop", func(map[string]any, logger.Logger) (Sink, error) { return NopSink{}, nil })
}

// RegisterSink adds a sink factory identified by name.
func RegisterSink(name string, f SinkFactory) error {
	if f == nil {
		return sinkRegistry.Register(name, nil)
	}
	return sinkRegistry.Register(name, func(conf map[string]any) (sinkBuilder, error) {
		return func(log logger.Logger) (Sink, error) { return f(conf, log) }, nil
	})
}

// SinkTypes lists the registered sink types.
func SinkTypes() []string { return sinkRegistry.Names() }

// NewSink creates the sink described by cfgs, handing log to every factory.
// No config yields a NopSink and several configs a MultiSink. A nil logger
// discards output.
func NewSink(cfgs []factory.ModuleConfig, log logger.Logger) (Sink, error) {
	if log == nil {
		log = logger.NopLogger{}
	}
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return create(cfgs[0], log)
	}
	sinks := make([]Sink, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := create(c, log)
		if err != nil {
			_ = NewMultiSink(sinks...).Close()
			return nil, err
		}
		sinks = append(sinks, s)
	}
	return NewMultiSink(sinks...), nil
}

func create(cfg factory.ModuleConfig, log logger.Logger) (Sink, error) {
	build, err := sinkRegistry.Create(cfg)
	if err != nil {
		return nil, err
	}
	return build(log)
}
