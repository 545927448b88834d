package service

import (
	"errors"
	"testing"
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain"
	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func scheduledMeeting(id, messageID string) *entity.Meeting {
	return &entity.Meeting{
		ID:          id,
		SlackTeamID: "T123456789",
		Title:       "Weekly sit-down",
		ChannelID:   "C123456789",
		MessageID:   messageID,
		MeetingTime: time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
		Status:      entity.MeetingStatusScheduled,
	}
}

func cancelledMeeting(id string) *entity.Meeting {
	m := scheduledMeeting(id, "")
	m.Status = entity.MeetingStatusCancelled
	return m
}

func TestMeetingService_Schedule(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	meetingTime := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	var createdID string
	m.mockMeetingRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(meeting *entity.Meeting) error {
			require.NotEmpty(t, meeting.ID)
			assert.Equal(t, "T123456789", meeting.SlackTeamID)
			assert.Equal(t, "C123456789", meeting.ChannelID)
			assert.Equal(t, "Weekly sit-down", meeting.Title)
			assert.Equal(t, "U987654321", meeting.ScheduledBy)
			assert.Equal(t, meetingTime, meeting.MeetingTime)
			assert.Equal(t, entity.MeetingStatusScheduled, meeting.Status)
			assert.False(t, meeting.ReminderSent)
			createdID = meeting.ID
			return nil
		}).Times(1)

	m.mockSlackClient.EXPECT().PostMessage("C123456789", gomock.Any()).
		Return("C123456789", "111.222", nil).Times(1)

	m.mockMeetingRepo.EXPECT().SetMessageID(gomock.Any(), "111.222").
		DoAndReturn(func(id, messageID string) error {
			assert.Equal(t, createdID, id)
			return nil
		}).Times(1)

	meeting, err := svc.Schedule("T123456789", "C123456789", "U987654321", "Weekly sit-down", meetingTime)
	require.NoError(t, err)
	require.NotNil(t, meeting)
	assert.Equal(t, "111.222", meeting.MessageID)
}

func TestMeetingService_Schedule_PostFailureKeepsMeeting(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	m.mockMeetingRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	m.mockSlackClient.EXPECT().PostMessage("C123456789", gomock.Any()).
		Return("", "", errors.New("channel_not_found")).Times(1)

	meeting, err := svc.Schedule("T123456789", "C123456789", "U987654321", "Weekly sit-down",
		time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, meeting)
	assert.Empty(t, meeting.MessageID)
}

func TestMeetingService_Reschedule(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	existing := scheduledMeeting("meeting-1", "111.222")
	existing.ReminderSent = true
	newTime := existing.MeetingTime.Add(2 * time.Hour)

	m.mockMeetingRepo.EXPECT().GetByID("meeting-1").Return(existing, nil).Times(1)
	m.mockMeetingRepo.EXPECT().UpdateTime("meeting-1", newTime).Return(nil).Times(1)

	// Posted message gets refreshed with the current counts
	m.mockRSVPRepo.EXPECT().ListByMeeting("meeting-1").
		Return([]*entity.RSVP{
			{MeetingID: "meeting-1", UserID: "U1", Status: entity.RSVPStatusAttending},
			{MeetingID: "meeting-1", UserID: "U2", Status: entity.RSVPStatusAttending},
		}, nil).Times(1)
	m.mockSlackClient.EXPECT().UpdateMessage("C123456789", "111.222", gomock.Any()).
		Return("C123456789", "111.222", "", nil).Times(1)

	meeting, err := svc.Reschedule("meeting-1", newTime)
	require.NoError(t, err)
	assert.Equal(t, newTime, meeting.MeetingTime)
	assert.False(t, meeting.ReminderSent)
}

func TestMeetingService_Reschedule_NotFound(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	m.mockMeetingRepo.EXPECT().GetByID("missing").Return(nil, nil).Times(1)

	_, err := svc.Reschedule("missing", time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrMeetingNotFound)
}

func TestMeetingService_Reschedule_Cancelled(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	m.mockMeetingRepo.EXPECT().GetByID("meeting-1").Return(cancelledMeeting("meeting-1"), nil).Times(1)

	_, err := svc.Reschedule("meeting-1", time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrMeetingNotActive)
}

func TestMeetingService_Cancel(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	existing := scheduledMeeting("meeting-1", "111.222")

	m.mockMeetingRepo.EXPECT().GetByID("meeting-1").Return(existing, nil).Times(1)
	m.mockMeetingRepo.EXPECT().SetStatus("meeting-1", entity.MeetingStatusCancelled).Return(nil).Times(1)
	m.mockRSVPRepo.EXPECT().ListByMeeting("meeting-1").Return(nil, nil).Times(1)
	m.mockSlackClient.EXPECT().UpdateMessage("C123456789", "111.222", gomock.Any()).
		Return("C123456789", "111.222", "", nil).Times(1)

	meeting, err := svc.Cancel("meeting-1")
	require.NoError(t, err)
	assert.Equal(t, entity.MeetingStatusCancelled, meeting.Status)
}

func TestMeetingService_Cancel_AlreadyCancelled(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	m.mockMeetingRepo.EXPECT().GetByID("meeting-1").Return(cancelledMeeting("meeting-1"), nil).Times(1)

	_, err := svc.Cancel("meeting-1")
	assert.ErrorIs(t, err, domain.ErrMeetingNotActive)
}

func TestMeetingService_Respond(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	existing := scheduledMeeting("meeting-1", "111.222")

	m.mockMeetingRepo.EXPECT().GetByID("meeting-1").Return(existing, nil).Times(1)
	m.mockRSVPRepo.EXPECT().Upsert(gomock.Any()).
		DoAndReturn(func(rsvp *entity.RSVP) error {
			assert.Equal(t, "meeting-1", rsvp.MeetingID)
			assert.Equal(t, "U111", rsvp.UserID)
			assert.Equal(t, entity.RSVPStatusAttending, rsvp.Status)
			return nil
		}).Times(1)

	// The posted message reflects the new counts
	m.mockRSVPRepo.EXPECT().ListByMeeting("meeting-1").
		Return([]*entity.RSVP{
			{MeetingID: "meeting-1", UserID: "U111", Status: entity.RSVPStatusAttending},
		}, nil).Times(1)
	m.mockSlackClient.EXPECT().UpdateMessage("C123456789", "111.222", gomock.Any()).
		Return("C123456789", "111.222", "", nil).Times(1)

	err := svc.Respond("meeting-1", "U111", entity.RSVPStatusAttending)
	require.NoError(t, err)
}

func TestMeetingService_Respond_NoMessagePosted(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	m.mockMeetingRepo.EXPECT().GetByID("meeting-1").Return(scheduledMeeting("meeting-1", ""), nil).Times(1)
	m.mockRSVPRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(1)

	err := svc.Respond("meeting-1", "U111", entity.RSVPStatusNotAttending)
	require.NoError(t, err)
}

func TestMeetingService_Respond_CancelledMeetingWritesNothing(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	m.mockMeetingRepo.EXPECT().GetByID("meeting-1").Return(cancelledMeeting("meeting-1"), nil).Times(1)
	// No Upsert expectation: a transition on a cancelled meeting must not write

	err := svc.Respond("meeting-1", "U111", entity.RSVPStatusAttending)
	assert.ErrorIs(t, err, domain.ErrMeetingNotActive)
}

func TestMeetingService_Respond_RejectsPending(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	// Pending is represented by row absence, a user can never move back to it
	err := svc.Respond("meeting-1", "U111", entity.RSVPStatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidRSVPStatus)
}

func TestMeetingService_ListScheduled(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	first := scheduledMeeting("meeting-1", "")
	second := scheduledMeeting("meeting-2", "")

	m.mockMeetingRepo.EXPECT().ListByTeam("T123456789", entity.MeetingStatusScheduled).
		Return([]*entity.Meeting{first, second}, nil).Times(1)
	m.mockRSVPRepo.EXPECT().ListByMeeting("meeting-1").
		Return([]*entity.RSVP{
			{MeetingID: "meeting-1", UserID: "U1", Status: entity.RSVPStatusAttending},
			{MeetingID: "meeting-1", UserID: "U2", Status: entity.RSVPStatusNotAttending},
		}, nil).Times(1)
	m.mockRSVPRepo.EXPECT().ListByMeeting("meeting-2").
		Return(nil, nil).Times(1)

	summaries, err := svc.ListScheduled("T123456789")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].Counts.Attending)
	assert.Equal(t, 1, summaries[0].Counts.NotAttending)
	assert.Equal(t, 0, summaries[1].Counts.Attending)
}

func TestMeetingService_ListRSVPs_NotFound(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newMeeting(m.mockDataManager, m.mockSlackClient)

	m.mockMeetingRepo.EXPECT().GetByID("missing").Return(nil, nil).Times(1)

	_, _, err := svc.ListRSVPs("missing")
	assert.ErrorIs(t, err, domain.ErrMeetingNotFound)
}
