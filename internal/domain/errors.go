package domain

import "errors"

// Expected user-facing conditions. Anything else returned by the store or the
// Slack API is wrapped and treated as an internal failure.
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrMeetingNotActive   = errors.New("meeting is not active")
	ErrInvalidRSVPStatus  = errors.New("invalid rsvp status")
	ErrInvalidMeetingTime = errors.New("invalid meeting time format")
)
