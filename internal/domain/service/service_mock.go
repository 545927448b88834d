package service

import (
	"context"
	"testing"

	"github.com/famiglia-rp/meeting-bot/internal/domain/contract"
	"github.com/famiglia-rp/meeting-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockMeetingRepo *mocks.MockMeetingRepo
	mockRSVPRepo    *mocks.MockRSVPRepo
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	meetingRepo := mocks.NewMockMeetingRepo(ctrl)
	dm.EXPECT().Meeting().Return(meetingRepo).AnyTimes()

	rsvpRepo := mocks.NewMockRSVPRepo(ctrl)
	dm.EXPECT().RSVP().Return(rsvpRepo).AnyTimes()

	// Transactions run the callback against the same mocked repos
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockMeetingRepo: meetingRepo,
		mockRSVPRepo:    rsvpRepo,
		mockSlackClient: slackClient,
	}

	// validate service creation
	meetingService := newMeeting(dm, slackClient)
	require.NotNil(t, meetingService)

	return
}
