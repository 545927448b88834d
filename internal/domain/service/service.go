package service

import (
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain/contract"
)

type Instance struct {
	Meeting   *meetingService
	Scheduler *reminderScheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, reminderInterval, reminderLookahead time.Duration) *Instance {
	return &Instance{
		Meeting:   newMeeting(dm, slackClient),
		Scheduler: newReminderScheduler(dm, slackClient, reminderInterval, reminderLookahead),
	}
}
