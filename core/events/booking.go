package events

import "time"

// Event is implemented by every event published on the bus.
type Event interface {
	EventName() string
}

// BookingCreated is published after a slot has been reserved for a user.
type BookingCreated struct {
	BookingID      string
	Username       string
	StationID      string
	Slot           string
	AvailableSlots []string
	Time           time.Time
}

func (BookingCreated) EventName() string { return "booking_created" }

// BookingCancelled is published after a booking was removed and its slot
// released. Modified is set when the cancellation is the first half of a
// modification.
type BookingCancelled struct {
	BookingID      string
	Username       string
	StationID      string
	Slot           string
	Modified       bool
	AvailableSlots []string
	Time           time.Time
}

func (BookingCancelled) EventName() string { return "booking_cancelled" }
