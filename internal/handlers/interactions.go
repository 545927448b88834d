package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/famiglia-rp/meeting-bot/internal/domain"
	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// HandleInteraction processes the RSVP button presses from posted meeting
// messages. Slack sends a signed form POST with a JSON payload field.
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	if !h.verifyRequest(w, r) {
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.PostFormValue("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if callback.Type != slack.InteractionTypeBlockActions || len(callback.ActionCallback.BlockActions) == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}

	action := callback.ActionCallback.BlockActions[0]

	var status entity.RSVPStatus
	switch action.ActionID {
	case domain.ActionRSVPAttending:
		status = entity.RSVPStatusAttending
	case domain.ActionRSVPNotAttending:
		status = entity.RSVPStatusNotAttending
	default:
		w.WriteHeader(http.StatusOK)
		return
	}

	meetingID := action.Value
	userID := callback.User.ID
	channelID := callback.Channel.ID

	err := h.meetingService.Respond(meetingID, userID, status)

	var confirmation string
	if err != nil {
		confirmation = h.errorMessage(err).Text
	} else if status == entity.RSVPStatusAttending {
		confirmation = "You have marked yourself as attending."
	} else {
		confirmation = "You have marked yourself as not attending."
	}

	// Confirmation is best effort, the RSVP row is already durable
	_, _ = h.slackClient.PostEphemeral(channelID, userID, slack.MsgOptionText(confirmation, false))

	w.WriteHeader(http.StatusOK)
}
