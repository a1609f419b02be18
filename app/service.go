package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/kilianp07/evcs/config"
	"github.com/kilianp07/evcs/core/booking"
	"github.com/kilianp07/evcs/core/catalog"
	"github.com/kilianp07/evcs/core/events"
	coremetrics "github.com/kilianp07/evcs/core/metrics"
	coremon "github.com/kilianp07/evcs/core/monitoring"
	"github.com/kilianp07/evcs/core/session"
	"github.com/kilianp07/evcs/infra/logger"
	"github.com/kilianp07/evcs/infra/metrics"
	"github.com/kilianp07/evcs/infra/monitoring"
	_ "github.com/kilianp07/evcs/infra/mqtt" // registers the mqtt sink
	"github.com/kilianp07/evcs/infra/password"
	"github.com/kilianp07/evcs/internal/eventbus"
)

// Service holds the application state: the station catalog, the registered
// users and the booking workflow, plus the event sinks observing them.
type Service struct {
	Catalog  *catalog.Catalog
	Users    *session.Registry
	Bookings *booking.Service
	Log      logger.Logger
	Monitor  coremon.Monitor

	bus       *eventbus.Bus[events.Event]
	sink      coremetrics.Sink
	cancel    context.CancelFunc
	collector <-chan struct{}
	wg        sync.WaitGroup
	logOut    io.Closer
	closeOnce sync.Once
	closeErr  error
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	w, closer, err := logger.OpenOutput(cfg.Logging.Output)
	if err != nil {
		return nil, err
	}
	logg := logger.NewZerologLogger("service", w, cfg.Logging.Level)

	c, err := catalog.New(cfg.Catalog.BuildStations()...)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("catalog: %w", err)
	}
	mon, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	cfg.Metrics.SetDefaults()
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks, logger.NewZerologLogger("sink", w, cfg.Logging.Level))
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	bus := eventbus.New[events.Event](0)
	ctx, cancel := context.WithCancel(context.Background())
	svc := &Service{
		Catalog:  c,
		Users:    session.NewRegistry(newHasher(cfg.Auth), logger.NewZerologLogger("session", w, cfg.Logging.Level)),
		Bookings: booking.NewService(c, bus, logger.NewZerologLogger("booking", w, cfg.Logging.Level)),
		Log:      logg,
		Monitor:  mon,
		bus:      bus,
		sink:     sink,
		cancel:   cancel,
		logOut:   closer,
	}
	svc.collector = metrics.StartEventCollector(ctx, bus, sink, logg)

	if addr := cfg.Metrics.PrometheusAddr; addr != "" {
		svc.wg.Add(1)
		go func() {
			defer svc.wg.Done()
			if err := metrics.StartPromServer(ctx, addr, nil); err != nil {
				logg.Errorf("prom server: %v", err)
			}
		}()
	}
	logg.Infof("loaded %d stations, sinks %v", len(c.All()), coremetrics.SinkTypes())
	return svc, nil
}

func newHasher(cfg config.AuthConfig) session.Hasher {
	if cfg.Hasher == "bcrypt" {
		return password.NewBcryptHasher(cfg.BcryptCost)
	}
	return session.PlainHasher{}
}

// Subscribe returns a channel receiving every domain event.
func (s *Service) Subscribe() <-chan events.Event { return s.bus.Subscribe() }

// Close stops the background workers, flushes pending events to the sink
// and releases the sink and log output. It is safe to call more than once.
func (s *Service) Close() error {
	s.closeOnce.Do(func() {
		// closing the bus lets the collector drain before it exits
		s.bus.Close()
		<-s.collector
		s.cancel()
		s.wg.Wait()
		s.Monitor.Flush(2 * time.Second)
		var errs []error
		if c, ok := s.sink.(coremetrics.Closer); ok {
			errs = append(errs, c.Close())
		}
		errs = append(errs, s.logOut.Close())
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}
