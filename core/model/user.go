package model

import (
	"fmt"
	"sync"
	"time"
)

// Booking is a user's claim on one slot of one station. The station is shared
// with the catalog and outlives the booking.
type Booking struct {
	ID        string
	Station   *Station
	Slot      string
	CreatedAt time.Time
}

func (b *Booking) String() string {
	return fmt.Sprintf("Booking at %s during %s", b.Station.Location, b.Slot)
}

// User is a registered account. PasswordHash holds whatever the configured
// hasher produced, which is the plain text with the default hasher.
type User struct {
	Username     string
	PasswordHash string

	mu       sync.Mutex
	bookings []*Booking
}

// NewUser returns a user without bookings.
func NewUser(username, passwordHash string) *User {
	return &User{Username: username, PasswordHash: passwordHash}
}

// Bookings returns the user's bookings in insertion order.
func (u *User) Bookings() []*Booking {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*Booking, len(u.bookings))
	copy(out, u.bookings)
	return out
}

// AddBooking appends b to the booking list.
func (u *User) AddBooking(b *Booking) {
	u.mu.Lock()
	u.bookings = append(u.bookings, b)
	u.mu.Unlock()
}

// Booking looks a booking up by id.
func (u *User) Booking(id string) (*Booking, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, b := range u.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
}

// RemoveBooking deletes the booking with the given id and returns it.
func (u *User) RemoveBooking(id string) (*Booking, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i, b := range u.bookings {
		if b.ID == id {
			u.bookings = append(u.bookings[:i], u.bookings[i+1:]...)
			return b, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
}
