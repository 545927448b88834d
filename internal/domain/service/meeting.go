package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain"
	"github.com/famiglia-rp/meeting-bot/internal/domain/contract"
	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

type meetingService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	log         zerolog.Logger
}

func newMeeting(dm contract.DataManager, slackClient contract.SlackClient) *meetingService {
	return &meetingService{
		dm:          dm,
		slackClient: slackClient,
		log:         zerolog.New(os.Stdout).With().Timestamp().Str("component", "meetings").Logger(),
	}
}

// Schedule creates a meeting and posts its RSVP message to the target channel.
func (s *meetingService) Schedule(slackTeamID, channelID, scheduledBy, title string, meetingTime time.Time) (*entity.Meeting, error) {
	meeting := &entity.Meeting{
		ID:          uuid.NewString(),
		SlackTeamID: slackTeamID,
		Title:       title,
		Description: fmt.Sprintf("Scheduled by <@%s>", scheduledBy),
		ScheduledBy: scheduledBy,
		ChannelID:   channelID,
		MeetingTime: meetingTime.UTC(),
		Status:      entity.MeetingStatusScheduled,
	}

	if err := s.dm.Meeting().Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	// Post the RSVP message with the attendance buttons. The meeting exists
	// either way, so a failed post only costs the in-channel card.
	_, timestamp, err := s.slackClient.PostMessage(channelID,
		slack.MsgOptionBlocks(meetingBlocks(meeting, entity.RSVPCounts{}, true)...))
	if err != nil {
		s.log.Error().Err(err).Str("meeting_id", meeting.ID).Msg("failed to post rsvp message")
		return meeting, nil
	}

	if err := s.dm.Meeting().SetMessageID(meeting.ID, timestamp); err != nil {
		s.log.Error().Err(err).Str("meeting_id", meeting.ID).Msg("failed to store rsvp message id")
		return meeting, nil
	}
	meeting.MessageID = timestamp

	return meeting, nil
}

// Reschedule moves a scheduled meeting to a new time and re-arms its reminder.
// Existing RSVPs are kept.
func (s *meetingService) Reschedule(meetingID string, newTime time.Time) (*entity.Meeting, error) {
	meeting, err := s.getActiveMeeting(meetingID)
	if err != nil {
		return nil, err
	}

	if err := s.dm.Meeting().UpdateTime(meetingID, newTime); err != nil {
		return nil, fmt.Errorf("failed to reschedule meeting: %w", err)
	}
	meeting.MeetingTime = newTime.UTC()
	meeting.ReminderSent = false

	s.refreshMessage(meeting)

	return meeting, nil
}

// Cancel marks a scheduled meeting cancelled. The reminder flag is left alone,
// the status alone keeps the scheduler away from it.
func (s *meetingService) Cancel(meetingID string) (*entity.Meeting, error) {
	meeting, err := s.getActiveMeeting(meetingID)
	if err != nil {
		return nil, err
	}

	if err := s.dm.Meeting().SetStatus(meetingID, entity.MeetingStatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel meeting: %w", err)
	}
	meeting.Status = entity.MeetingStatusCancelled

	// Drop the buttons from the posted message so no one keeps responding
	if meeting.MessageID != "" {
		rsvps, err := s.dm.RSVP().ListByMeeting(meeting.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("meeting_id", meeting.ID).Msg("failed to list rsvps for cancelled message")
			rsvps = nil
		}
		_, _, _, err = s.slackClient.UpdateMessage(meeting.ChannelID, meeting.MessageID,
			slack.MsgOptionBlocks(meetingBlocks(meeting, entity.CountRSVPs(rsvps), false)...))
		if err != nil {
			s.log.Warn().Err(err).Str("meeting_id", meeting.ID).Msg("failed to update cancelled message")
		}
	}

	return meeting, nil
}

// ListScheduled returns the team's scheduled meetings, newest start time first,
// with their current attendance counts.
func (s *meetingService) ListScheduled(slackTeamID string) ([]*contract.MeetingSummary, error) {
	meetings, err := s.dm.Meeting().ListByTeam(slackTeamID, entity.MeetingStatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	summaries := make([]*contract.MeetingSummary, 0, len(meetings))
	for _, meeting := range meetings {
		rsvps, err := s.dm.RSVP().ListByMeeting(meeting.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list rsvps: %w", err)
		}
		summaries = append(summaries, &contract.MeetingSummary{
			Meeting: meeting,
			Counts:  entity.CountRSVPs(rsvps),
		})
	}

	return summaries, nil
}

// ListRSVPs returns a meeting and its responses. Cancelled meetings are still
// readable, only transitions are blocked.
func (s *meetingService) ListRSVPs(meetingID string) (*entity.Meeting, []*entity.RSVP, error) {
	meeting, err := s.dm.Meeting().GetByID(meetingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	if meeting == nil {
		return nil, nil, domain.ErrMeetingNotFound
	}

	rsvps, err := s.dm.RSVP().ListByMeeting(meetingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list rsvps: %w", err)
	}

	return meeting, rsvps, nil
}

// Respond records a user's RSVP. Any prior response is overwritten; once the
// meeting is cancelled no further transition is accepted and nothing is written.
func (s *meetingService) Respond(meetingID, userID string, status entity.RSVPStatus) error {
	if !status.IsExplicit() {
		return domain.ErrInvalidRSVPStatus
	}

	// Status check and write share a transaction so a concurrent cancel cannot
	// slip between them.
	var meeting *entity.Meeting
	err := s.dm.WithTransaction(context.Background(), func(dm contract.DataManager) error {
		m, err := dm.Meeting().GetByID(meetingID)
		if err != nil {
			return fmt.Errorf("failed to get meeting: %w", err)
		}
		if m == nil {
			return domain.ErrMeetingNotFound
		}
		if !m.IsActive() {
			return domain.ErrMeetingNotActive
		}

		rsvp := &entity.RSVP{
			MeetingID: meetingID,
			UserID:    userID,
			Status:    status,
		}
		if err := dm.RSVP().Upsert(rsvp); err != nil {
			return fmt.Errorf("failed to upsert rsvp: %w", err)
		}

		meeting = m
		return nil
	})
	if err != nil {
		return err
	}

	s.refreshMessage(meeting)

	return nil
}

func (s *meetingService) getActiveMeeting(meetingID string) (*entity.Meeting, error) {
	meeting, err := s.dm.Meeting().GetByID(meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	if meeting == nil {
		return nil, domain.ErrMeetingNotFound
	}
	if !meeting.IsActive() {
		return nil, domain.ErrMeetingNotActive
	}
	return meeting, nil
}

// refreshMessage re-reads the meeting's RSVPs and pushes the counts into the
// posted message. The underlying write already happened, so failures here are
// logged and swallowed.
func (s *meetingService) refreshMessage(meeting *entity.Meeting) {
	if meeting.MessageID == "" {
		return
	}

	rsvps, err := s.dm.RSVP().ListByMeeting(meeting.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("meeting_id", meeting.ID).Msg("failed to list rsvps for message refresh")
		return
	}

	_, _, _, err = s.slackClient.UpdateMessage(meeting.ChannelID, meeting.MessageID,
		slack.MsgOptionBlocks(meetingBlocks(meeting, entity.CountRSVPs(rsvps), true)...))
	if err != nil {
		s.log.Warn().Err(err).Str("meeting_id", meeting.ID).Msg("failed to refresh rsvp message")
	}
}
