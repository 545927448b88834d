package contract

import (
	"context"
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Meeting() MeetingRepo
	RSVP() RSVPRepo
}

// MeetingRepo defines the contract for the meeting repository.
// Getters return (nil, nil) when no row matches; update methods touch only the
// columns they name so concurrent partial updates never clobber each other.
type MeetingRepo interface {
	Create(meeting *entity.Meeting) error
	GetByID(id string) (*entity.Meeting, error)
	ListByTeam(slackTeamID string, status entity.MeetingStatus) ([]*entity.Meeting, error)
	ListDue(now time.Time, lookahead time.Duration) ([]*entity.Meeting, error)
	UpdateTime(id string, meetingTime time.Time) error
	SetStatus(id string, status entity.MeetingStatus) error
	SetMessageID(id, messageID string) error
	// MarkReminderSent flips the reminder flag only while it is still unset and
	// the meeting is still scheduled. The bool reports whether this call won.
	MarkReminderSent(id string) (bool, error)
}

// RSVPRepo defines the contract for the RSVP repository
type RSVPRepo interface {
	Upsert(rsvp *entity.RSVP) error
	GetByMeetingAndUser(meetingID, userID string) (*entity.RSVP, error)
	ListByMeeting(meetingID string) ([]*entity.RSVP, error)
}
