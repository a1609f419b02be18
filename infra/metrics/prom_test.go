package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kilianp07/evcs/core/events"
)

func TestPromSink_RecordBooking(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	ev := events.BookingCreated{StationID: "1", Slot: "09:00-10:00", AvailableSlots: []string{"a", "b", "c", "d"}}
	if err := sink.RecordBooking(ev); err != nil {
		t.Fatalf("record booking: %v", err)
	}
	if err := sink.RecordBooking(ev); err != nil {
		t.Fatalf("record booking: %v", err)
	}

	expected := `
# HELP evcs_bookings_total Total number of slot bookings
# TYPE evcs_bookings_total counter
evcs_bookings_total{station_id="1"} 2
`
	if err := testutil.CollectAndCompare(sink.bookings, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if v := testutil.ToFloat64(sink.available.WithLabelValues("1")); v != 4 {
		t.Errorf("available gauge = %v want 4", v)
	}
}

func TestPromSink_CancellationReasons(t *testing.T) {
	sink, err := NewPromSinkWithRegistry(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	_ = sink.RecordCancellation(events.BookingCancelled{StationID: "2", AvailableSlots: make([]string, 5)})
	_ = sink.RecordCancellation(events.BookingCancelled{StationID: "2", Modified: true, AvailableSlots: make([]string, 5)})
	_ = sink.RecordCancellation(events.BookingCancelled{StationID: "2", Modified: true, AvailableSlots: make([]string, 5)})

	if v := testutil.ToFloat64(sink.cancellations.WithLabelValues("2", "cancel")); v != 1 {
		t.Errorf("cancel count = %v", v)
	}
	if v := testutil.ToFloat64(sink.cancellations.WithLabelValues("2", "modify")); v != 2 {
		t.Errorf("modify count = %v", v)
	}
	if v := testutil.ToFloat64(sink.available.WithLabelValues("2")); v != 5 {
		t.Errorf("available gauge = %v", v)
	}
}

func TestPromSink_ReviewAndIssue(t *testing.T) {
	sink, err := NewPromSinkWithRegistry(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	_ = sink.RecordReview(events.ReviewAdded{StationID: "3", Rating: 4, Mean: 4, RatingCount: 1})
	_ = sink.RecordReview(events.ReviewAdded{StationID: "3", Rating: 3, Mean: 3.5, RatingCount: 2})
	_ = sink.RecordIssue(events.IssueReported{StationID: "3", Known: true})
	_ = sink.RecordIssue(events.IssueReported{StationID: "x", Known: false})

	if v := testutil.ToFloat64(sink.rating.WithLabelValues("3")); v != 3.5 {
		t.Errorf("rating gauge = %v", v)
	}
	if v := testutil.ToFloat64(sink.reviews.WithLabelValues("3")); v != 2 {
		t.Errorf("review count = %v", v)
	}
	if c := testutil.CollectAndCount(sink.issues); c != 2 {
		t.Errorf("expected 2 issue series, got %d", c)
	}
}

func TestPromSink_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	_ = first.RecordBooking(events.BookingCreated{StationID: "1"})
	if v := testutil.ToFloat64(second.bookings.WithLabelValues("1")); v != 1 {
		t.Fatalf("collectors not shared, got %v", v)
	}
}
