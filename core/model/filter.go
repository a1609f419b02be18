package model

import (
	"fmt"
	"strings"
)

// FastChargingFilter selects stations by their fast charging capability.
type FastChargingFilter int

const (
	// FastAny skips the fast charging check.
	FastAny FastChargingFilter = iota
	// FastOnly keeps fast charging stations.
	FastOnly
	// SlowOnly keeps stations without fast charging.
	SlowOnly
)

// ParseFastChargingFilter maps the console answers yes/no/skip to a filter.
// An empty answer means skip.
func ParseFastChargingFilter(s string) (FastChargingFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return FastAny, nil
	case "yes", "y":
		return FastOnly, nil
	case "no", "n":
		return SlowOnly, nil
	default:
		return FastAny, fmt.Errorf("fast charging filter %q: %w", s, ErrInvalidChoice)
	}
}

// Matches reports whether a station with the given capability passes the filter.
func (f FastChargingFilter) Matches(fast bool) bool {
	switch f {
	case FastOnly:
		return fast
	case SlowOnly:
		return !fast
	default:
		return true
	}
}

func (f FastChargingFilter) String() string {
	switch f {
	case FastOnly:
		return "yes"
	case SlowOnly:
		return "no"
	default:
		return "skip"
	}
}
