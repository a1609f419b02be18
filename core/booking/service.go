// Package booking implements the slot booking workflow: booking, cancelling
// and modifying a user's bookings, plus station reviews.
package booking

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/evcs/core/catalog"
	"github.com/kilianp07/evcs/core/events"
	"github.com/kilianp07/evcs/core/logger"
	"github.com/kilianp07/evcs/core/model"
)

// Publisher receives the events produced by successful operations.
type Publisher interface {
	Publish(events.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(events.Event) {}

// Service mutates bookings and stations consistently. Every mutation runs
// under one lock so a slot is never observed free while a booking on it is
// still listed, and rating updates are never lost.
type Service struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	pub     Publisher
	log     logger.Logger
	now     func() time.Time
	newID   func() string
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the time source stamped on bookings and events.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides booking id generation.
func WithIDGenerator(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

// NewService returns a Service over the given catalog. A nil publisher or
// logger disables events or logging respectively.
func NewService(c *catalog.Catalog, pub Publisher, log logger.Logger, opts ...Option) *Service {
	if pub == nil {
		pub = nopPublisher{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	s := &Service{
		catalog: c,
		pub:     pub,
		log:     log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Book reserves slot at the station for user. The slot must exist and be
// free at the time of the call; a taken slot is rejected, never double-booked.
func (s *Service) Book(user *model.User, stationID, slot string) (*model.Booking, error) {
	st, err := s.catalog.FindByID(stationID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(st.AvailableSlots()) == 0 {
		return nil, fmt.Errorf("station %s: %w", st.ID, model.ErrNoSlotsAvailable)
	}
	if err := st.Reserve(slot); err != nil {
		return nil, err
	}
	b := &model.Booking{ID: s.newID(), Station: st, Slot: slot, CreatedAt: s.now()}
	user.AddBooking(b)
	s.log.Infof("user %s booked station %s slot %s (booking %s)", user.Username, st.ID, slot, b.ID)
	s.pub.Publish(events.BookingCreated{
		BookingID:      b.ID,
		Username:       user.Username,
		StationID:      st.ID,
		Slot:           slot,
		AvailableSlots: st.AvailableSlots(),
		Time:           b.CreatedAt,
	})
	return b, nil
}

// Cancel removes the booking from the user and frees its slot.
func (s *Service) Cancel(user *model.User, bookingID string) (*model.Booking, error) {
	return s.cancel(user, bookingID, false)
}

// Modify cancels the booking and returns its station so the caller can run
// a fresh booking selection. There is no in-place slot swap.
func (s *Service) Modify(user *model.User, bookingID string) (*model.Station, error) {
	b, err := s.cancel(user, bookingID, true)
	if err != nil {
		return nil, err
	}
	return b.Station, nil
}

func (s *Service) cancel(user *model.User, bookingID string, modified bool) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := user.RemoveBooking(bookingID)
	if err != nil {
		return nil, err
	}
	b.Station.ReleaseSlot(b.Slot)
	s.log.Infof("user %s released station %s slot %s (booking %s, modify=%t)", user.Username, b.Station.ID, b.Slot, b.ID, modified)
	s.pub.Publish(events.BookingCancelled{
		BookingID:      b.ID,
		Username:       user.Username,
		StationID:      b.Station.ID,
		Slot:           b.Slot,
		Modified:       modified,
		AvailableSlots: b.Station.AvailableSlots(),
		Time:           s.now(),
	})
	return b, nil
}

// Review validates rating and records the review on the station.
func (s *Service) Review(stationID, text string, rating float64) error {
	st, err := s.catalog.FindByID(stationID)
	if err != nil {
		return err
	}
	if !model.ValidRating(rating) {
		return fmt.Errorf("rating %v: %w", rating, model.ErrInvalidRating)
	}
	s.mu.Lock()
	st.AddReview(text, rating)
	mean, count := st.Rating()
	s.mu.Unlock()
	s.log.Debugw("review added", map[string]any{"station_id": st.ID, "rating": rating, "mean": mean, "count": count})
	s.pub.Publish(events.ReviewAdded{StationID: st.ID, Rating: rating, Mean: mean, RatingCount: count, Time: s.now()})
	return nil
}

// JoinWaitlist reports that waitlisting is not available. The station id is
// still resolved so an unknown station surfaces as not found. A future
// version may keep a per-slot queue and notify it from Cancel; callers
// should treat model.ErrWaitlistUnsupported as "try again later".
func (s *Service) JoinWaitlist(stationID string) error {
	if _, err := s.catalog.FindByID(stationID); err != nil {
		return err
	}
	return fmt.Errorf("station %s: %w", stationID, model.ErrWaitlistUnsupported)
}

// ReportIssue records a problem report for a station. Unknown station ids
// are accepted and flagged.
func (s *Service) ReportIssue(user *model.User, stationID, description string) {
	_, err := s.catalog.FindByID(stationID)
	known := err == nil
	if !known {
		s.log.Warnf("issue reported for unknown station %s", stationID)
	}
	username := ""
	if user != nil {
		username = user.Username
	}
	s.pub.Publish(events.IssueReported{
		StationID:   stationID,
		Username:    username,
		Description: description,
		Known:       known,
		Time:        s.now(),
	})
}
