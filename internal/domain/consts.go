package domain

import "time"

// MeetingTimeLayout is the wall-clock format accepted by the schedule and
// reschedule commands. Times are interpreted as UTC.
const MeetingTimeLayout = "2006-01-02 15:04"

// Reminder scheduler defaults. Both can be overridden via configuration.
const (
	DefaultReminderInterval  = 5 * time.Minute
	DefaultReminderLookahead = 1 * time.Hour
)

// Block action IDs of the RSVP buttons on a posted meeting message.
const (
	ActionRSVPAttending    = "rsvp_attending"
	ActionRSVPNotAttending = "rsvp_not_attending"
)
