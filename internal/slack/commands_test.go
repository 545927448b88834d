package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "Should parse schedule with channel, time and title",
			text:     "schedule <#C123456789|general> 2030-05-01 18:00 Weekly sit-down",
			wantType: CmdSchedule,
			wantArgs: []string{"<#C123456789|general>", "2030-05-01", "18:00", "Weekly", "sit-down"},
		},
		{
			name:     "Should parse reschedule",
			text:     "reschedule meeting-1 2030-05-01 18:00",
			wantType: CmdReschedule,
			wantArgs: []string{"meeting-1", "2030-05-01", "18:00"},
		},
		{
			name:     "Should parse list",
			text:     "list",
			wantType: CmdList,
		},
		{
			name:     "Should parse ls alias",
			text:     "ls",
			wantType: CmdList,
		},
		{
			name:     "Should parse rsvps",
			text:     "rsvps meeting-1",
			wantType: CmdRSVPs,
			wantArgs: []string{"meeting-1"},
		},
		{
			name:     "Should parse cancel",
			text:     "cancel meeting-1",
			wantType: CmdCancel,
			wantArgs: []string{"meeting-1"},
		},
		{
			name:     "Should parse help",
			text:     "help",
			wantType: CmdHelp,
		},
		{
			name:     "Should default empty text to help",
			text:     "   ",
			wantType: CmdHelp,
		},
		{
			name:    "Should reject unknown command",
			text:    "bananas",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}
