package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain"
	"github.com/famiglia-rp/meeting-bot/internal/domain/contract"
	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
	"github.com/famiglia-rp/meeting-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	type args struct {
		command     string
		text        string
		channelID   string
		channelName string
		userID      string
		teamID      string
	}

	meetingTime := time.Date(2030, 5, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		args          args
		buildMocks    func(m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should schedule a meeting successfully",
			args: args{
				command:     "/meeting",
				text:        "schedule <#C111222333|war-room> 2030-05-01 18:00 Family sit-down",
				channelID:   "C123456789",
				channelName: "general",
				userID:      "U987654321",
				teamID:      "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.MeetingServiceMock.EXPECT().
					Schedule(args.teamID, "C111222333", args.userID, "Family sit-down", meetingTime).
					Return(&entity.Meeting{
						ID:          "meeting-1",
						Title:       "Family sit-down",
						ChannelID:   "C111222333",
						MeetingTime: meetingTime,
						Status:      entity.MeetingStatusScheduled,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "Family sit-down")
				assert.Contains(t, response.Text, "meeting-1")
			},
		},
		{
			name: "Should reject an invalid schedule time without calling the service",
			args: args{
				command:     "/meeting",
				text:        "schedule <#C111222333|war-room> tomorrow evening Family sit-down",
				channelID:   "C123456789",
				channelName: "general",
				userID:      "U987654321",
				teamID:      "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Invalid time format")
			},
		},
		{
			name: "Should require a channel mention for schedule",
			args: args{
				command:     "/meeting",
				text:        "schedule war-room 2030-05-01 18:00 Family sit-down",
				channelID:   "C123456789",
				channelName: "general",
				userID:      "U987654321",
				teamID:      "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "mention the channel")
			},
		},
		{
			name: "Should reschedule a meeting",
			args: args{
				command:     "/meeting",
				text:        "reschedule meeting-1 2030-05-01 18:00",
				channelID:   "C123456789",
				channelName: "general",
				userID:      "U987654321",
				teamID:      "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.MeetingServiceMock.EXPECT().
					Reschedule("meeting-1", meetingTime).
					Return(&entity.Meeting{
						ID:          "meeting-1",
						Title:       "Family sit-down",
						MeetingTime: meetingTime,
						Status:      entity.MeetingStatusScheduled,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "rescheduled")
			},
		},
		{
			name: "Should surface not found on cancel",
			args: args{
				command:     "/meeting",
				text:        "cancel missing-meeting",
				channelID:   "C123456789",
				channelName: "general",
				userID:      "U987654321",
				teamID:      "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.MeetingServiceMock.EXPECT().
					Cancel("missing-meeting").
					Return(nil, domain.ErrMeetingNotFound).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Meeting not found")
			},
		},
		{
			name: "Should list scheduled meetings with counts",
			args: args{
				command:     "/meeting",
				text:        "list",
				channelID:   "C123456789",
				channelName: "general",
				userID:      "U987654321",
				teamID:      "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.MeetingServiceMock.EXPECT().
					ListScheduled(args.teamID).
					Return([]*contract.MeetingSummary{
						{
							Meeting: &entity.Meeting{
								ID:          "meeting-1",
								Title:       "Family sit-down",
								MeetingTime: meetingTime,
								Status:      entity.MeetingStatusScheduled,
							},
							Counts: entity.RSVPCounts{Attending: 2, NotAttending: 1},
						},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "Family sit-down")
				assert.Contains(t, response.Text, "✅ 2")
				assert.Contains(t, response.Text, "❌ 1")
			},
		},
		{
			name: "Should show help for unknown subcommand",
			args: args{
				command:     "/meeting",
				text:        "bananas",
				channelID:   "C123456789",
				channelName: "general",
				userID:      "U987654321",
				teamID:      "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "unknown command")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m, tt.args)

			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text,
				tt.args.channelID, tt.args.channelName, tt.args.userID, tt.args.teamID, test.SigningSecret)
			resp := httptest.NewRecorder()

			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/meeting", "list",
		"C123456789", "general", "U987654321", "T123456789", "wrong-secret")
	resp := httptest.NewRecorder()

	handler.HandleSlashCommand(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSlackHandler_HandleInteraction_RSVPButtons(t *testing.T) {
	tests := []struct {
		name       string
		actionID   string
		buildMocks func(m test.ServiceMocks)
	}{
		{
			name:     "Should record attending",
			actionID: "rsvp_attending",
			buildMocks: func(m test.ServiceMocks) {
				m.MeetingServiceMock.EXPECT().
					Respond("meeting-1", "U111", entity.RSVPStatusAttending).
					Return(nil).Times(1)
				m.SlackClientMock.EXPECT().
					PostEphemeral("C123456789", "U111", gomock.Any()).
					Return("", nil).Times(1)
			},
		},
		{
			name:     "Should record not attending",
			actionID: "rsvp_not_attending",
			buildMocks: func(m test.ServiceMocks) {
				m.MeetingServiceMock.EXPECT().
					Respond("meeting-1", "U111", entity.RSVPStatusNotAttending).
					Return(nil).Times(1)
				m.SlackClientMock.EXPECT().
					PostEphemeral("C123456789", "U111", gomock.Any()).
					Return("", nil).Times(1)
			},
		},
		{
			name:     "Should tell the user when the meeting is no longer scheduled",
			actionID: "rsvp_attending",
			buildMocks: func(m test.ServiceMocks) {
				m.MeetingServiceMock.EXPECT().
					Respond("meeting-1", "U111", entity.RSVPStatusAttending).
					Return(domain.ErrMeetingNotActive).Times(1)
				m.SlackClientMock.EXPECT().
					PostEphemeral("C123456789", "U111", gomock.Any()).
					Return("", nil).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			payload := `{
				"type": "block_actions",
				"user": {"id": "U111"},
				"channel": {"id": "C123456789"},
				"actions": [{"type": "button", "action_id": "` + tt.actionID + `", "block_id": "rsvp_actions", "value": "meeting-1"}]
			}`

			req := test.CreateInteractionRequest(t, payload, test.SigningSecret)
			resp := httptest.NewRecorder()

			handler.HandleInteraction(resp, req)

			assert.Equal(t, http.StatusOK, resp.Code)
		})
	}
}
