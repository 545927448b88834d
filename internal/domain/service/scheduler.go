package service

import (
	"fmt"
	"os"
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain"
	"github.com/famiglia-rp/meeting-bot/internal/domain/contract"
	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// reminderScheduler periodically scans for meetings coming due and posts a
// reminder once per scheduled instant. Every tick is a fresh, complete scan;
// the persisted reminder flag is the only state carried between ticks, so a
// failed dispatch is simply retried on the next one.
type reminderScheduler struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	interval    time.Duration
	lookahead   time.Duration
	now         func() time.Time
	stopChan    chan struct{}
	running     bool
	log         zerolog.Logger
}

func newReminderScheduler(dm contract.DataManager, slackClient contract.SlackClient, interval, lookahead time.Duration) *reminderScheduler {
	if interval <= 0 {
		interval = domain.DefaultReminderInterval
	}
	if lookahead <= 0 {
		lookahead = domain.DefaultReminderLookahead
	}

	return &reminderScheduler{
		dm:          dm,
		slackClient: slackClient,
		interval:    interval,
		lookahead:   lookahead,
		now:         time.Now,
		stopChan:    make(chan struct{}),
		running:     false,
		log:         zerolog.New(os.Stdout).With().Timestamp().Str("component", "scheduler").Logger(),
	}
}

func (s *reminderScheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info().Dur("interval", s.interval).Dur("lookahead", s.lookahead).Msg("scheduler starting")
	go s.mainLoop()
}

func (s *reminderScheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info().Msg("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

func (s *reminderScheduler) mainLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// First scan right away, then on every tick
	s.checkDueMeetings()

	for {
		select {
		case <-ticker.C:
			s.checkDueMeetings()
		case <-s.stopChan:
			return
		}
	}
}

// checkDueMeetings is one scan: every scheduled, not-yet-reminded meeting
// starting inside the lookahead window gets exactly one dispatch attempt.
// A failure on one meeting never blocks the rest.
func (s *reminderScheduler) checkDueMeetings() {
	due, err := s.dm.Meeting().ListDue(s.now(), s.lookahead)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list due meetings")
		return
	}

	for _, meeting := range due {
		if err := s.remind(meeting); err != nil {
			s.log.Error().Err(err).Str("meeting_id", meeting.ID).Msg("reminder failed, will retry next tick")
		}
	}
}

func (s *reminderScheduler) remind(meeting *entity.Meeting) error {
	rsvps, err := s.dm.RSVP().ListByMeeting(meeting.ID)
	if err != nil {
		return fmt.Errorf("failed to list rsvps: %w", err)
	}

	text := reminderText(meeting, entity.CountRSVPs(rsvps), s.now())
	if _, _, err := s.slackClient.PostMessage(meeting.ChannelID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}

	// Conditional flag set: if a concurrent scan or a cancel got there first,
	// the flag stays consistent and we only note that this dispatch lost.
	sent, err := s.dm.Meeting().MarkReminderSent(meeting.ID)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	if !sent {
		s.log.Warn().Str("meeting_id", meeting.ID).Msg("reminder already marked sent or meeting no longer scheduled")
		return nil
	}

	s.log.Info().Str("meeting_id", meeting.ID).Time("meeting_time", meeting.MeetingTime).Msg("reminder sent")
	return nil
}
