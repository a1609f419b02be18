package metrics_test

import (
	"errors"
	"testing"

	"github.com/kilianp07/evcs/core/events"
	"github.com/kilianp07/evcs/core/factory"
	metrics "github.com/kilianp07/evcs/core/metrics"
)

/*
TestNewSink validates NewSink with zero, one and multiple configs.
Cases:
  - no config -> NopSink
  - one nop config -> NopSink
  - two configs -> MultiSink with two sub-sinks
  - unknown type -> error
*/
func TestNewSink(t *testing.T) {
	s, err := metrics.NewSink(nil, nil)
	if err != nil {
		t.Fatalf("create default: %v", err)
	}
	if _, ok := s.(metrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}

	s, err = metrics.NewSink([]factory.ModuleConfig{{Type: "nop"}}, nil)
	if err != nil {
		t.Fatalf("create nop: %v", err)
	}
	if _, ok := s.(metrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}

	s, err = metrics.NewSink([]factory.ModuleConfig{{Type: "nop"}, {Type: "nop"}}, nil)
	if err != nil {
		t.Fatalf("create multi: %v", err)
	}
	ms, ok := s.(*metrics.MultiSink)
	if !ok || len(ms.Sinks) != 2 {
		t.Fatalf("expected MultiSink with 2 sinks, got %T", s)
	}

	if _, err := metrics.NewSink([]factory.ModuleConfig{{Type: "missing"}}, nil); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

type countingSink struct {
	bookings, cancels, reviews, issues, closed int
	fail                                       bool
}

func (c *countingSink) RecordBooking(events.BookingCreated) error {
	c.bookings++
	if c.fail {
		return errors.New("boom")
	}
	return nil
}
func (c *countingSink) RecordCancellation(events.BookingCancelled) error { c.cancels++; return nil }
func (c *countingSink) RecordReview(events.ReviewAdded) error            { c.reviews++; return nil }
func (c *countingSink) RecordIssue(events.IssueReported) error           { c.issues++; return nil }
func (c *countingSink) Close() error                                     { c.closed++; return nil }

func TestMultiSinkForwards(t *testing.T) {
	failing := &countingSink{fail: true}
	ok := &countingSink{}
	m := metrics.NewMultiSink(failing, ok, metrics.NopSink{})

	if err := m.RecordBooking(events.BookingCreated{}); err == nil {
		t.Fatal("expected joined error")
	}
	if ok.bookings != 1 {
		t.Fatal("later sinks must still be called after a failure")
	}
	_ = m.RecordCancellation(events.BookingCancelled{})
	_ = m.RecordReview(events.ReviewAdded{})
	_ = m.RecordIssue(events.IssueReported{})
	_ = m.Close()
	for _, s := range []*countingSink{failing, ok} {
		if s.cancels != 1 || s.reviews != 1 || s.issues != 1 || s.closed != 1 {
			t.Fatalf("not forwarded: %+v", s)
		}
	}
}
