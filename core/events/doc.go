// Package events defines the domain events emitted on the event bus.
//
// Available event types:
//   - BookingCreated: a slot was booked
//   - BookingCancelled: a booking was cancelled or released for modification
//   - ReviewAdded: a review and rating were recorded for a station
//   - IssueReported: a user reported a problem from the emergency menu
package events
