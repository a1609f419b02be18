package metrics

import (
	"errors"

	"github.com/kilianp07/evcs/core/events"
)

// Sink observes booking activity. Implementations must not block for long:
// they run on the event collector goroutine.
type Sink interface {
	RecordBooking(ev events.BookingCreated) error
	RecordCancellation(ev events.BookingCancelled) error
	RecordReview(ev events.ReviewAdded) error
}

// IssueRecorder is implemented by sinks interested in issue reports.
type IssueRecorder interface {
	RecordIssue(ev events.IssueReported) error
}

// Closer is implemented by sinks holding external resources.
type Closer interface {
	Close() error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) RecordBooking(events.BookingCreated) error        { return nil }
func (NopSink) RecordCancellation(events.BookingCancelled) error { return nil }
func (NopSink) RecordReview(events.ReviewAdded) error            { return nil }

// MultiSink fans records out to several sinks. Every sink is called even if
// an earlier one fails; the errors are joined.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

func (m *MultiSink) RecordBooking(ev events.BookingCreated) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordBooking(ev))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordCancellation(ev events.BookingCancelled) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordCancellation(ev))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordReview(ev events.ReviewAdded) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordReview(ev))
	}
	return errors.Join(errs...)
}

// RecordIssue forwards to the sinks implementing IssueRecorder.
func (m *MultiSink) RecordIssue(ev events.IssueReported) error {
	var errs []error
	for _, s := range m.Sinks {
		if r, ok := s.(IssueRecorder); ok {
			errs = append(errs, r.RecordIssue(ev))
		}
	}
	return errors.Join(errs...)
}

// Close closes the sinks implementing Closer.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.Sinks {
		if c, ok := s.(Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
