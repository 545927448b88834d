package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSchedule   CommandType = "schedule"
	CmdReschedule CommandType = "reschedule"
	CmdList       CommandType = "list"
	CmdRSVPs      CommandType = "rsvps"
	CmdCancel     CommandType = "cancel"
	CmdHelp       CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "schedule":
		cmd.Type = CmdSchedule
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "reschedule":
		cmd.Type = CmdReschedule
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls":
		cmd.Type = CmdList
	case "rsvps":
		cmd.Type = CmdRSVPs
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "cancel":
		cmd.Type = CmdCancel
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Scheduling:*
• ` + "`/meeting schedule #channel YYYY-MM-DD HH:MM <title>`" + ` - Schedule a meeting (time in UTC)
• ` + "`/meeting reschedule <meeting-id> YYYY-MM-DD HH:MM`" + ` - Move a meeting to a new time
• ` + "`/meeting cancel <meeting-id>`" + ` - Cancel a meeting

*Viewing:*
• ` + "`/meeting list`" + ` - List scheduled meetings with RSVP counts
• ` + "`/meeting rsvps <meeting-id>`" + ` - Show who responded and how

RSVP with the buttons on the posted meeting message.`
}
