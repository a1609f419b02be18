package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/kilianp07/evcs/core/events"
	"github.com/kilianp07/evcs/core/factory"
	"github.com/kilianp07/evcs/core/logger"
	coremetrics "github.com/kilianp07/evcs/core/metrics"
)

func init() {
	_ = coremetrics.RegisterSink("mqtt", func(conf map[string]any, log logger.Logger) (coremetrics.Sink, error) {
		var c Config
		if err := factory.Decode(conf, &c); err != nil {
			return nil, fmt.Errorf("mqtt sink config: %w", err)
		}
		return NewAvailabilityPublisher(c, log)
	})
}

// Availability is the payload published after every booking change.
type Availability struct {
	StationID      string   `json:"station_id"`
	Slot           string   `json:"slot"`
	Change         string   `json:"change"`
	AvailableSlots []string `json:"available_slots"`
	Timestamp      int64    `json:"timestamp"`
}

// AvailabilityPublisher is a sink that publishes the free slots of a station
// to <prefix>/stations/<id>/availability whenever a booking changes.
type AvailabilityPublisher struct {
	cli     pahoClient
	prefix  string
	qos     byte
	retain  bool
	retries int
	backoff time.Duration
	timeout time.Duration
	log     logger.Logger
}

// NewAvailabilityPublisher connects to the broker described by cfg.
func NewAvailabilityPublisher(cfg Config, log logger.Logger) (*AvailabilityPublisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	c := newMQTTClient(opts)
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if token := c.Connect(); !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("mqtt: connect to %s timed out", cfg.Broker)
	} else if token.Error() != nil {
		return nil, fmt.Errorf("mqtt: connect to %s: %w", cfg.Broker, token.Error())
	}
	log.Infof("connected to %s", cfg.Broker)
	return &AvailabilityPublisher{
		cli:     c,
		prefix:  cfg.TopicPrefix,
		qos:     cfg.QoS,
		retain:  *cfg.Retain,
		retries: cfg.MaxRetries,
		backoff: time.Duration(cfg.BackoffMS) * time.Millisecond,
		timeout: timeout,
		log:     log,
	}, nil
}

// Topic returns the availability topic of a station.
func (p *AvailabilityPublisher) Topic(stationID string) string {
	return fmt.Sprintf("%s/stations/%s/availability", p.prefix, stationID)
}

func (p *AvailabilityPublisher) RecordBooking(ev events.BookingCreated) error {
	return p.publish(Availability{
		StationID:      ev.StationID,
		Slot:           ev.Slot,
		Change:         "booked",
		AvailableSlots: ev.AvailableSlots,
		Timestamp:      ev.Time.UnixMilli(),
	})
}

func (p *AvailabilityPublisher) RecordCancellation(ev events.BookingCancelled) error {
	return p.publish(Availability{
		StationID:      ev.StationID,
		Slot:           ev.Slot,
		Change:         "released",
		AvailableSlots: ev.AvailableSlots,
		Timestamp:      ev.Time.UnixMilli(),
	})
}

// RecordReview is a no-op: reviews do not change availability.
func (p *AvailabilityPublisher) RecordReview(events.ReviewAdded) error { return nil }

func (p *AvailabilityPublisher) publish(a Availability) error {
	if a.AvailableSlots == nil {
		a.AvailableSlots = []string{}
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return err
	}
	topic := p.Topic(a.StationID)
	backoff := retry.WithMaxRetries(uint64(p.retries), retry.NewExponential(p.backoff))
	attempt := 0
	return retry.Do(context.Background(), backoff, func(context.Context) error {
		attempt++
		token := p.cli.Publish(topic, p.qos, p.retain, payload)
		var err error
		if !token.WaitTimeout(p.timeout) {
			err = fmt.Errorf("publish to %s timed out", topic)
		} else {
			err = token.Error()
		}
		if err != nil {
			p.log.Warnf("publish attempt %d failed: %v", attempt, err)
			return retry.RetryableError(err)
		}
		p.log.Debugf("published availability of station %s to %s", a.StationID, topic)
		return nil
	})
}

// Close disconnects from the broker.
func (p *AvailabilityPublisher) Close() error {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
	return nil
}
