package model

import "errors"

// Sentinel errors returned by the domain operations. Callers classify them
// with errors.Is; operations wrap them with context.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRating       = errors.New("rating must be between 0.0 and 5.0")
	ErrUnknownSlot         = errors.New("unknown time slot")
	ErrSlotUnavailable     = errors.New("time slot is not available")
	ErrNoSlotsAvailable    = errors.New("no available slots")
	ErrWaitlistUnsupported = errors.New("waitlist is not supported")
)
