package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestNewStationDefaultSlots(t *testing.T) {
	s := NewStation("1", "Downtown", true)
	assert.Equal(t, DefaultSlots, s.Slots())
	assert.Equal(t, DefaultSlots, s.AvailableSlots())
}

func TestNewStationCollapsesDuplicateSlots(t *testing.T) {
	s := NewStation("1", "Downtown", true, "a", "b", "a")
	assert.Equal(t, []string{"a", "b"}, s.Slots())
}

func TestAvailableSlotsMatchesIsSlotAvailable(t *testing.T) {
	s := NewStation("1", "Downtown", true)
	s.BookSlot("10:00-11:00")
	s.BookSlot("13:00-14:00")

	avail := s.AvailableSlots()
	assert.Equal(t, []string{"09:00-10:00", "11:00-12:00", "12:00-13:00"}, avail)
	in := map[string]bool{}
	for _, a := range avail {
		in[a] = true
	}
	for _, slot := range s.Slots() {
		if s.IsSlotAvailable(slot) != in[slot] {
			t.Fatalf("slot %s: IsSlotAvailable=%v but listed=%v", slot, s.IsSlotAvailable(slot), in[slot])
		}
	}
}

func TestUnknownSlotIsUnavailable(t *testing.T) {
	s := NewStation("1", "Downtown", true)
	assert.False(t, s.IsSlotAvailable("08:00-09:00"))
	s.ReleaseSlot("08:00-09:00")
	assert.False(t, s.IsSlotAvailable("08:00-09:00"))
	assert.Len(t, s.Slots(), 5)
}

func TestBookSlotIdempotent(t *testing.T) {
	s := NewStation("1", "Downtown", true)
	s.BookSlot("09:00-10:00")
	s.BookSlot("09:00-10:00")
	assert.False(t, s.IsSlotAvailable("09:00-10:00"))
	assert.Len(t, s.AvailableSlots(), 4)

	s.ReleaseSlot("09:00-10:00")
	s.ReleaseSlot("09:00-10:00")
	assert.Equal(t, DefaultSlots, s.AvailableSlots())
}

func TestReserve(t *testing.T) {
	s := NewStation("1", "Downtown", true)
	require.NoError(t, s.Reserve("09:00-10:00"))
	assert.ErrorIs(t, s.Reserve("09:00-10:00"), ErrSlotUnavailable)
	assert.ErrorIs(t, s.Reserve("nope"), ErrUnknownSlot)
}

func TestAddReviewRunningMean(t *testing.T) {
	ratings := []float64{5, 4, 2.5, 0, 3.7, 1.2}
	s := NewStation("1", "Downtown", true)
	for i, r := range ratings {
		s.AddReview("review", r)
		mean, count := s.Rating()
		if count != i+1 {
			t.Fatalf("count %d want %d", count, i+1)
		}
		want := stat.Mean(ratings[:i+1], nil)
		if math.Abs(mean-want) > 1e-9 {
			t.Fatalf("mean %v want %v after %d ratings", mean, want, i+1)
		}
	}
	assert.Len(t, s.Reviews(), len(ratings))
}

func TestStationString(t *testing.T) {
	s := NewStation("2", "Uptown", false)
	assert.Equal(t, "Station ID: 2, Location: Uptown, Fast Charging: No, Rating: Not Rated", s.String())

	s.AddReview("fine", 4)
	assert.Equal(t, "Station ID: 2, Location: Uptown, Fast Charging: No, Rating: 4.0 (1 reviews)", s.String())

	s.AddReview("meh", 3)
	assert.Equal(t, "Station ID: 2, Location: Uptown, Fast Charging: No, Rating: 3.5 (2 reviews)", s.String())
}

func TestFormatDecimal(t *testing.T) {
	cases := map[float64]string{
		0:          "0.0",
		5:          "5.0",
		4.25:       "4.25",
		10.0 / 3.0: "3.3333333333333335",
	}
	for in, want := range cases {
		if got := FormatDecimal(in); got != want {
			t.Errorf("FormatDecimal(%v)=%s want %s", in, got, want)
		}
	}
}

func TestMatchesLocation(t *testing.T) {
	s := NewStation("4", "City Center", false)
	assert.True(t, s.MatchesLocation("city center"))
	assert.False(t, s.MatchesLocation(" CITY CENTER "))
	assert.False(t, s.MatchesLocation("City"))
}
