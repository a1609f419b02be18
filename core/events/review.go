package events

import "time"

// ReviewAdded carries the station rating after the new review was folded in.
type ReviewAdded struct {
	StationID   string
	Rating      float64
	Mean        float64
	RatingCount int
	Time        time.Time
}

func (ReviewAdded) EventName() string { return "review_added" }

// IssueReported is emitted from the emergency support menu. Known is false
// when the station id did not resolve in the catalog.
type IssueReported struct {
	StationID   string
	Username    string
	Description string
	Known       bool
	Time        time.Time
}

func (IssueReported) EventName() string { return "issue_reported" }
