package entity

import "time"

type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

type Meeting struct {
	ID              string        `json:"id" db:"id"`
	SlackTeamID     string        `json:"slack_team_id" db:"slack_team_id"`
	Title           string        `json:"title" db:"title"`
	Description     string        `json:"description" db:"description"`
	ScheduledBy     string        `json:"scheduled_by" db:"scheduled_by"`
	ChannelID       string        `json:"channel_id" db:"channel_id"`
	MessageID       string        `json:"message_id,omitempty" db:"message_id"`
	MeetingTime     time.Time     `json:"meeting_time" db:"meeting_time"`
	DurationMinutes int           `json:"duration_minutes,omitempty" db:"duration_minutes"`
	Status          MeetingStatus `json:"status" db:"status"`
	ReminderSent    bool          `json:"reminder_sent" db:"reminder_sent"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// IsActive reports whether the meeting still accepts RSVPs and reminders.
func (m *Meeting) IsActive() bool {
	return m.Status == MeetingStatusScheduled
}
