// Package entity contains the core business objects of the project.
package entity

import "time"

// RequestStatus represents the state of a matching request.
// Transitions are monotone: pending may move to any of the other three
// states, and none of those states ever transitions again.
type RequestStatus string

const (
	// RequestStatusPending is the initial state of every new request.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusAccepted means the mentor took the mentee on.
	RequestStatusAccepted RequestStatus = "accepted"
	// RequestStatusRejected means the mentor declined, or the request was closed
	// as a side effect of the mentor accepting a different mentee.
	RequestStatusRejected RequestStatus = "rejected"
	// RequestStatusCancelled means the mentee withdrew the request.
	RequestStatusCancelled RequestStatus = "cancelled"
)

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status admits no further transitions.
func (s RequestStatus) Terminal() bool {
	return s != RequestStatusPending
}

// MatchingRequest is a mentee's offer to be mentored by a specific mentor.
// At most one request per (mentor, mentee) pair may be pending at a time,
// and a mentor holds at most one accepted request overall.
type MatchingRequest struct {
	ID        int64         `json:"id"`
	MentorID  int64         `json:"mentorId"`
	MenteeID  int64         `json:"menteeId"`
	Message   string        `json:"message"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
