package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/evcs/core/events"
	coremetrics "github.com/kilianp07/evcs/core/metrics"
)

// PromSink records booking activity in Prometheus metrics.
type PromSink struct {
	bookings      *prometheus.CounterVec
	cancellations *prometheus.CounterVec
	reviews       *prometheus.CounterVec
	issues        *prometheus.CounterVec
	rating        *prometheus.GaugeVec
	available     *prometheus.GaugeVec
}

// NewPromSink registers the metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers the metrics on reg. A nil registerer
// defaults to the global one. Collectors already registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evcs_bookings_total",
			Help: "Total number of slot bookings",
		}, []string{"station_id"}),
		cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evcs_cancellations_total",
			Help: "Total number of cancelled bookings",
		}, []string{"station_id", "reason"}),
		reviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evcs_reviews_total",
			Help: "Total number of station reviews",
		}, []string{"station_id"}),
		issues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evcs_issue_reports_total",
			Help: "Issues reported from the emergency menu",
		}, []string{"known_station"}),
		rating: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "evcs_station_rating",
			Help: "Running mean rating per station",
		}, []string{"station_id"}),
		available: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "evcs_station_available_slots",
			Help: "Number of free slots per station after the last booking change",
		}, []string{"station_id"}),
	}
	var err error
	if s.bookings, err = register(reg, s.bookings); err != nil {
		return nil, err
	}
	if s.cancellations, err = register(reg, s.cancellations); err != nil {
		return nil, err
	}
	if s.reviews, err = register(reg, s.reviews); err != nil {
		return nil, err
	}
	if s.issues, err = register(reg, s.issues); err != nil {
		return nil, err
	}
	if s.rating, err = register(reg, s.rating); err != nil {
		return nil, err
	}
	if s.available, err = register(reg, s.available); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

var _ coremetrics.IssueRecorder = (*PromSink)(nil)

// RecordBooking counts the booking and updates the free slot gauge.
func (s *PromSink) RecordBooking(ev events.BookingCreated) error {
	s.bookings.WithLabelValues(ev.StationID).Inc()
	s.available.WithLabelValues(ev.StationID).Set(float64(len(ev.AvailableSlots)))
	return nil
}

// RecordCancellation counts the cancellation, labelled cancel or modify.
func (s *PromSink) RecordCancellation(ev events.BookingCancelled) error {
	reason := "cancel"
	if ev.Modified {
		reason = "modify"
	}
	s.cancellations.WithLabelValues(ev.StationID, reason).Inc()
	s.available.WithLabelValues(ev.StationID).Set(float64(len(ev.AvailableSlots)))
	return nil
}

// RecordReview counts the review and exposes the new mean.
func (s *PromSink) RecordReview(ev events.ReviewAdded) error {
	s.reviews.WithLabelValues(ev.StationID).Inc()
	s.rating.WithLabelValues(ev.StationID).Set(ev.Mean)
	return nil
}

// RecordIssue counts issue reports. Station ids are free text here, so they
// are not used as a label.
func (s *PromSink) RecordIssue(ev events.IssueReported) error {
	s.issues.WithLabelValues(strconv.FormatBool(ev.Known)).Inc()
	return nil
}
