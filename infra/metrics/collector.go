package metrics

import (
	"context"

	"github.com/kilianp07/evcs/core/events"
	"github.com/kilianp07/evcs/core/logger"
	coremetrics "github.com/kilianp07/evcs/core/metrics"
)

// Source is the subscription side of the event bus.
type Source interface {
	Subscribe() <-chan events.Event
	Unsubscribe(<-chan events.Event)
}

// StartEventCollector subscribes to the bus and forwards events to sink
// until ctx is cancelled or the bus is closed. The returned channel is
// closed once the collector goroutine has exited.
func StartEventCollector(ctx context.Context, bus Source, sink coremetrics.Sink, log logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if err := record(sink, ev); err != nil {
					log.Errorf("record %s: %v", ev.EventName(), err)
				}
			}
		}
	}()
	return done
}

func record(sink coremetrics.Sink, ev events.Event) error {
	switch e := ev.(type) {
	case events.BookingCreated:
		return sink.RecordBooking(e)
	case events.BookingCancelled:
		return sink.RecordCancellation(e)
	case events.ReviewAdded:
		return sink.RecordReview(e)
	case events.IssueReported:
		if r, ok := sink.(coremetrics.IssueRecorder); ok {
			return r.RecordIssue(e)
		}
	}
	return nil
}
