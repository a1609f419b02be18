package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/evcs/core/events"
	coremetrics "github.com/kilianp07/evcs/core/metrics"
	"github.com/kilianp07/evcs/internal/eventbus"
)

type memSink struct {
	mu     sync.Mutex
	seen   []string
	issues int
}

func (m *memSink) add(s string) error {
	m.mu.Lock()
	m.seen = append(m.seen, s)
	m.mu.Unlock()
	return nil
}

func (m *memSink) RecordBooking(ev events.BookingCreated) error { return m.add("book:" + ev.Slot) }
func (m *memSink) RecordCancellation(ev events.BookingCancelled) error {
	return m.add("cancel:" + ev.Slot)
}
func (m *memSink) RecordReview(ev events.ReviewAdded) error { return m.add("review:" + ev.StationID) }
func (m *memSink) RecordIssue(events.IssueReported) error {
	m.mu.Lock()
	m.issues++
	m.mu.Unlock()
	return nil
}

func (m *memSink) snapshot() ([]string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.seen...), m.issues
}

func TestEventCollectorForwards(t *testing.T) {
	bus := eventbus.New[events.Event](0)
	sink := &memSink{}
	ctx, cancel := context.WithCancel(context.Background())
	done := StartEventCollector(ctx, bus, sink, nil)

	bus.Publish(events.BookingCreated{Slot: "09:00-10:00"})
	bus.Publish(events.BookingCancelled{Slot: "09:00-10:00"})
	bus.Publish(events.ReviewAdded{StationID: "1"})
	bus.Publish(events.IssueReported{StationID: "1"})

	require.Eventually(t, func() bool {
		seen, issues := sink.snapshot()
		return len(seen) == 3 && issues == 1
	}, time.Second, 5*time.Millisecond)
	seen, _ := sink.snapshot()
	assert.Equal(t, []string{"book:09:00-10:00", "cancel:09:00-10:00", "review:1"}, seen)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("collector did not stop")
	}
}

func TestEventCollectorStopsOnBusClose(t *testing.T) {
	bus := eventbus.New[events.Event](0)
	done := StartEventCollector(context.Background(), bus, coremetrics.NopSink{}, nil)
	bus.Publish(events.IssueReported{})
	bus.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("collector did not stop after bus close")
	}
}

func TestEventCollectorNilArgs(t *testing.T) {
	done := StartEventCollector(context.Background(), nil, nil, nil)
	select {
	case <-done:
	default:
		t.Fatal("expected closed channel")
	}
}
