package contract

import (
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
)

// MeetingSummary is a meeting with its current attendance counts attached,
// as shown by the list command.
type MeetingSummary struct {
	*entity.Meeting
	Counts entity.RSVPCounts
}

type MeetingService interface {
	Schedule(slackTeamID, channelID, scheduledBy, title string, meetingTime time.Time) (*entity.Meeting, error)
	Reschedule(meetingID string, newTime time.Time) (*entity.Meeting, error)
	Cancel(meetingID string) (*entity.Meeting, error)
	ListScheduled(slackTeamID string) ([]*MeetingSummary, error)
	ListRSVPs(meetingID string) (*entity.Meeting, []*entity.RSVP, error)
	Respond(meetingID, userID string, status entity.RSVPStatus) error
}
