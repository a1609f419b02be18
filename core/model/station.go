package model

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Station is a charging station with a fixed set of bookable one-hour slots,
// free-text reviews and a running mean rating.
type Station struct {
	ID           string
	Location     string
	FastCharging bool

	mu          sync.Mutex
	slotOrder   []string
	available   map[string]bool
	reviews     []string
	rating      float64
	ratingCount int
}

// NewStation creates a station whose slots are all available. When no slot
// labels are given DefaultSlots is used. Duplicate labels are collapsed.
func NewStation(id, location string, fast bool, slots ...string) *Station {
	if len(slots) == 0 {
		slots = DefaultSlots
	}
	s := &Station{
		ID:           id,
		Location:     location,
		FastCharging: fast,
		available:    make(map[string]bool, len(slots)),
	}
	for _, label := range slots {
		if _, ok := s.available[label]; ok {
			continue
		}
		s.slotOrder = append(s.slotOrder, label)
		s.available[label] = true
	}
	return s
}

// Slots returns every slot label in display order.
func (s *Station) Slots() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.slotOrder))
	copy(out, s.slotOrder)
	return out
}

// IsSlotAvailable returns false for unknown labels.
func (s *Station) IsSlotAvailable(slot string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available[slot]
}

// AvailableSlots returns the labels currently free, in display order.
func (s *Station) AvailableSlots() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.slotOrder))
	for _, label := range s.slotOrder {
		if s.available[label] {
			out = append(out, label)
		}
	}
	return out
}

// BookSlot marks the slot unavailable without checking its previous state.
func (s *Station) BookSlot(slot string) {
	s.setAvailability(slot, false)
}

// ReleaseSlot marks the slot available again.
func (s *Station) ReleaseSlot(slot string) {
	s.setAvailability(slot, true)
}

func (s *Station) setAvailability(slot string, free bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.available[slot]; !ok {
		return
	}
	s.available[slot] = free
}

// Reserve books the slot only if it exists and is free. The check and the
// update happen under the station lock.
func (s *Station) Reserve(slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	free, ok := s.available[slot]
	if !ok {
		return fmt.Errorf("station %s slot %q: %w", s.ID, slot, ErrUnknownSlot)
	}
	if !free {
		return fmt.Errorf("station %s slot %q: %w", s.ID, slot, ErrSlotUnavailable)
	}
	s.available[slot] = false
	return nil
}

// AddReview appends the review and folds rating into the running mean.
// The rating is expected to be validated by the caller.
func (s *Station) AddReview(text string, rating float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, text)
	s.rating = (s.rating*float64(s.ratingCount) + rating) / float64(s.ratingCount+1)
	s.ratingCount++
}

// Rating returns the running mean and the number of ratings it covers.
func (s *Station) Rating() (float64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rating, s.ratingCount
}

// Reviews returns the review texts in submission order.
func (s *Station) Reviews() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// MatchesLocation compares locations case-insensitively.
func (s *Station) MatchesLocation(location string) bool {
	return strings.EqualFold(s.Location, location)
}

func (s *Station) String() string {
	mean, count := s.Rating()
	fast := "No"
	if s.FastCharging {
		fast = "Yes"
	}
	rating := "Not Rated"
	if count > 0 {
		rating = fmt.Sprintf("%s (%d reviews)", FormatDecimal(mean), count)
	}
	return fmt.Sprintf("Station ID: %s, Location: %s, Fast Charging: %s, Rating: %s", s.ID, s.Location, fast, rating)
}

// FormatDecimal prints the shortest exact representation with at least one
// decimal, e.g. 4.0, 3.5 or 3.3333333333333335. Ratings and payment amounts
// are printed this way.
func FormatDecimal(r float64) string {
	out := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
