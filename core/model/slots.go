package model

// DefaultSlots are the one-hour windows every station offers unless the
// catalog configuration overrides them.
var DefaultSlots = []string{
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"12:00-13:00",
	"13:00-14:00",
}

// MinRating and MaxRating bound a valid review rating.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// ValidRating reports whether r is inside [MinRating, MaxRating]. NaN is rejected.
func ValidRating(r float64) bool {
	return r >= MinRating && r <= MaxRating
}
