package service

import (
	"fmt"
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain"
	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// slackDate renders an absolute instant in the reader's local timezone, with a
// UTC fallback for clients that don't expand date tokens.
func slackDate(t time.Time) string {
	return fmt.Sprintf("<!date^%d^{date_long} at {time}|%s UTC>",
		t.Unix(), t.UTC().Format(domain.MeetingTimeLayout))
}

// relativeUntil gives a rough human distance from now to t, e.g. "in 25 minutes".
func relativeUntil(t, now time.Time) string {
	d := t.Sub(now)
	switch {
	case d < time.Minute:
		return "in less than a minute"
	case d < time.Hour:
		return fmt.Sprintf("in %d minutes", int(d.Round(time.Minute).Minutes()))
	case d < 48*time.Hour:
		return fmt.Sprintf("in %d hours", int(d.Round(time.Hour).Hours()))
	default:
		return fmt.Sprintf("in %d days", int(d.Hours()/24))
	}
}

func countsLine(counts entity.RSVPCounts) string {
	return fmt.Sprintf("✅ Attending: %d | ❌ Not Attending: %d", counts.Attending, counts.NotAttending)
}

// meetingBlocks builds the posted meeting card. withButtons controls whether
// the RSVP actions are attached; a cancelled meeting drops them and shows the
// cancellation instead.
func meetingBlocks(meeting *entity.Meeting, counts entity.RSVPCounts, withButtons bool) []slack.Block {
	header := fmt.Sprintf("📅 *Meeting: %s*\n%s", meeting.Title, meeting.Description)

	body := fmt.Sprintf("*Time:* %s", slackDate(meeting.MeetingTime))
	if meeting.DurationMinutes > 0 {
		body += fmt.Sprintf("\n*Duration:* %d minutes", meeting.DurationMinutes)
	}
	body += fmt.Sprintf("\n*RSVPs:* %s", countsLine(counts))
	if meeting.Status == entity.MeetingStatusCancelled {
		body += "\n*Status:* ❌ Cancelled"
	}
	body += fmt.Sprintf("\n_Meeting ID: %s_", meeting.ID)

	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, header, false, false), nil, nil),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, body, false, false), nil, nil),
	}

	if withButtons && meeting.IsActive() {
		attending := slack.NewButtonBlockElement(domain.ActionRSVPAttending, meeting.ID,
			slack.NewTextBlockObject(slack.PlainTextType, "Attending", false, false))
		attending.Style = slack.StylePrimary

		notAttending := slack.NewButtonBlockElement(domain.ActionRSVPNotAttending, meeting.ID,
			slack.NewTextBlockObject(slack.PlainTextType, "Not Attending", false, false))
		notAttending.Style = slack.StyleDanger

		blocks = append(blocks, slack.NewActionBlock("rsvp_actions", attending, notAttending))
	}

	return blocks
}

// reminderText is the message the scheduler posts when a meeting comes due.
func reminderText(meeting *entity.Meeting, counts entity.RSVPCounts, now time.Time) string {
	text := fmt.Sprintf("⏰ *Meeting Reminder*\n\n*%s* is starting soon!\n*Time:* %s (%s)",
		meeting.Title, slackDate(meeting.MeetingTime), relativeUntil(meeting.MeetingTime, now))

	if meeting.DurationMinutes > 0 {
		text += fmt.Sprintf("\n*Duration:* %d minutes", meeting.DurationMinutes)
	}

	text += fmt.Sprintf("\n*RSVPs:* %s", countsLine(counts))

	return text
}
