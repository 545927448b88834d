package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain"
	"github.com/famiglia-rp/meeting-bot/internal/domain/contract"
	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
	slackcmd "github.com/famiglia-rp/meeting-bot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient    contract.SlackClient
	meetingService contract.MeetingService
	signingSecret  string
}

func New(slackClient contract.SlackClient, meetingService contract.MeetingService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:    slackClient,
		meetingService: meetingService,
		signingSecret:  signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if !h.verifyRequest(w, r) {
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(err.Error()+"\n\n"+slackcmd.GetHelpText()))
		return
	}

	// Handle command
	response := h.handleCommand(cmd, &s)
	h.respond(w, response)
}

// verifyRequest checks the Slack signature and leaves the body re-readable.
func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	return true
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(msg)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSchedule:
		return h.handleSchedule(cmd, slashCmd)
	case slackcmd.CmdReschedule:
		return h.handleReschedule(cmd)
	case slackcmd.CmdList:
		return h.handleList(slashCmd)
	case slackcmd.CmdRSVPs:
		return h.handleRSVPs(cmd)
	case slackcmd.CmdCancel:
		return h.handleCancel(cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleSchedule(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 4 {
		return h.createErrorResponse("Usage: `/meeting schedule #channel YYYY-MM-DD HH:MM <title>`")
	}

	channelID, ok := parseChannelMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the channel to post in: `/meeting schedule #channel ...`")
	}

	meetingTime, err := parseMeetingTime(cmd.Args[1], cmd.Args[2])
	if err != nil {
		return h.errorMessage(err)
	}

	title := strings.Join(cmd.Args[3:], " ")

	meeting, err := h.meetingService.Schedule(slashCmd.TeamID, channelID, slashCmd.UserID, title, meetingTime)
	if err != nil {
		return h.errorMessage(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Meeting *%s* scheduled! Check <#%s> to RSVP. Meeting ID: `%s`", meeting.Title, channelID, meeting.ID),
	}
}

func (h *SlackHandler) handleReschedule(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Usage: `/meeting reschedule <meeting-id> YYYY-MM-DD HH:MM`")
	}

	newTime, err := parseMeetingTime(cmd.Args[1], cmd.Args[2])
	if err != nil {
		return h.errorMessage(err)
	}

	meeting, err := h.meetingService.Reschedule(cmd.Args[0], newTime)
	if err != nil {
		return h.errorMessage(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Meeting *%s* rescheduled to %s UTC.", meeting.Title, meeting.MeetingTime.UTC().Format(domain.MeetingTimeLayout)),
	}
}

func (h *SlackHandler) handleList(slashCmd *slack.SlashCommand) *slack.Msg {
	summaries, err := h.meetingService.ListScheduled(slashCmd.TeamID)
	if err != nil {
		return h.errorMessage(err)
	}

	if len(summaries) == 0 {
		return h.createErrorResponse("No scheduled meetings found.")
	}

	var sb strings.Builder
	sb.WriteString("*📅 Scheduled Meetings*\n")
	for _, s := range summaries {
		sb.WriteString(fmt.Sprintf("\n*%s* — %s UTC\n", s.Title, s.MeetingTime.UTC().Format(domain.MeetingTimeLayout)))
		sb.WriteString(fmt.Sprintf("RSVPs: ✅ %d | ❌ %d", s.Counts.Attending, s.Counts.NotAttending))
		if s.DurationMinutes > 0 {
			sb.WriteString(fmt.Sprintf(" | %d minutes", s.DurationMinutes))
		}
		sb.WriteString(fmt.Sprintf("\nID: `%s`\n", s.ID))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

func (h *SlackHandler) handleRSVPs(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 1 {
		return h.createErrorResponse("Usage: `/meeting rsvps <meeting-id>`")
	}

	meeting, rsvps, err := h.meetingService.ListRSVPs(cmd.Args[0])
	if err != nil {
		return h.errorMessage(err)
	}

	if len(rsvps) == 0 {
		return h.createErrorResponse("No RSVPs found for this meeting.")
	}

	var attending, notAttending []string
	for _, r := range rsvps {
		mention := fmt.Sprintf("<@%s>", r.UserID)
		switch r.Status {
		case entity.RSVPStatusAttending:
			attending = append(attending, mention)
		case entity.RSVPStatusNotAttending:
			notAttending = append(notAttending, mention)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*📊 RSVPs for %s*\n", meeting.Title))
	if len(attending) > 0 {
		sb.WriteString(fmt.Sprintf("\n*✅ Attending:*\n%s\n", strings.Join(attending, "\n")))
	}
	if len(notAttending) > 0 {
		sb.WriteString(fmt.Sprintf("\n*❌ Not Attending:*\n%s\n", strings.Join(notAttending, "\n")))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

func (h *SlackHandler) handleCancel(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 1 {
		return h.createErrorResponse("Usage: `/meeting cancel <meeting-id>`")
	}

	meeting, err := h.meetingService.Cancel(cmd.Args[0])
	if err != nil {
		return h.errorMessage(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("❌ Meeting *%s* has been cancelled.", meeting.Title),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) errorMessage(err error) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrMeetingNotFound):
		return h.createErrorResponse("Meeting not found.")
	case errors.Is(err, domain.ErrMeetingNotActive):
		return h.createErrorResponse("This meeting is no longer scheduled.")
	case errors.Is(err, domain.ErrInvalidMeetingTime):
		return h.createErrorResponse("Invalid time format. Please use YYYY-MM-DD HH:MM (UTC).")
	case errors.Is(err, domain.ErrInvalidRSVPStatus):
		return h.createErrorResponse("Invalid RSVP status.")
	default:
		return h.createErrorResponse("Something went wrong. Please try again.")
	}
}

// parseChannelMention extracts the channel ID from a Slack mention <#C123|name>.
func parseChannelMention(mention string) (string, bool) {
	if !strings.HasPrefix(mention, "<#") || !strings.HasSuffix(mention, ">") {
		return "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(mention, "<#"), ">")
	if idx := strings.Index(inner, "|"); idx >= 0 {
		inner = inner[:idx]
	}
	if inner == "" {
		return "", false
	}
	return inner, true
}

func parseMeetingTime(dateArg, timeArg string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.MeetingTimeLayout, dateArg+" "+timeArg, time.UTC)
	if err != nil {
		return time.Time{}, domain.ErrInvalidMeetingTime
	}
	return t, nil
}
