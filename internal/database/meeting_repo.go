package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain/contract"
	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
)

type meetingRepo struct {
	db dbConn
}

func newMeetingRepo(db dbConn) contract.MeetingRepo {
	return &meetingRepo{db: db}
}

const meetingColumns = `id, slack_team_id, title, description, scheduled_by,
		channel_id, message_id, meeting_time, duration_minutes, status,
		reminder_sent, created_at, updated_at`

func (r *meetingRepo) Create(meeting *entity.Meeting) error {
	query := `
		INSERT INTO meetings (id, slack_team_id, title, description, scheduled_by,
			channel_id, message_id, meeting_time, duration_minutes, status, reminder_sent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		meeting.ID,
		meeting.SlackTeamID,
		meeting.Title,
		meeting.Description,
		meeting.ScheduledBy,
		meeting.ChannelID,
		meeting.MessageID,
		meeting.MeetingTime.UTC(),
		meeting.DurationMinutes,
		meeting.Status,
		meeting.ReminderSent,
	)
	if err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	return nil
}

func (r *meetingRepo) GetByID(id string) (*entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = ?`

	meeting, err := scanMeeting(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	return meeting, nil
}

func (r *meetingRepo) ListByTeam(slackTeamID string, status entity.MeetingStatus) ([]*entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE slack_team_id = ?`
	args := []interface{}{slackTeamID}

	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY meeting_time DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	return collectMeetings(rows)
}

func (r *meetingRepo) ListDue(now time.Time, lookahead time.Duration) ([]*entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings
		WHERE status = ? AND reminder_sent = 0 AND meeting_time >= ? AND meeting_time <= ?
		ORDER BY meeting_time ASC`

	from := now.UTC()
	rows, err := r.db.Query(query, entity.MeetingStatusScheduled, from, from.Add(lookahead))
	if err != nil {
		return nil, fmt.Errorf("failed to list due meetings: %w", err)
	}
	defer rows.Close()

	return collectMeetings(rows)
}

func (r *meetingRepo) UpdateTime(id string, meetingTime time.Time) error {
	// A reschedule always re-arms the reminder for the new instant
	query := `
		UPDATE meetings SET
			meeting_time = ?,
			reminder_sent = 0,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, meetingTime.UTC(), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update meeting time: %w", err)
	}

	return nil
}

func (r *meetingRepo) SetStatus(id string, status entity.MeetingStatus) error {
	query := `UPDATE meetings SET status = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set meeting status: %w", err)
	}

	return nil
}

func (r *meetingRepo) SetMessageID(id, messageID string) error {
	query := `UPDATE meetings SET message_id = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, messageID, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set meeting message id: %w", err)
	}

	return nil
}

func (r *meetingRepo) MarkReminderSent(id string) (bool, error) {
	// Conditional update: whichever scan gets here first wins, concurrent scans
	// see zero rows affected and skip the meeting.
	query := `
		UPDATE meetings SET
			reminder_sent = 1,
			updated_at = ?
		WHERE id = ? AND reminder_sent = 0 AND status = ?
	`

	result, err := r.db.Exec(query, time.Now().UTC(), id, entity.MeetingStatusScheduled)
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMeeting(row rowScanner) (*entity.Meeting, error) {
	meeting := &entity.Meeting{}
	err := row.Scan(
		&meeting.ID,
		&meeting.SlackTeamID,
		&meeting.Title,
		&meeting.Description,
		&meeting.ScheduledBy,
		&meeting.ChannelID,
		&meeting.MessageID,
		&meeting.MeetingTime,
		&meeting.DurationMinutes,
		&meeting.Status,
		&meeting.ReminderSent,
		&meeting.CreatedAt,
		&meeting.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

func collectMeetings(rows *sql.Rows) ([]*entity.Meeting, error) {
	var meetings []*entity.Meeting
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, meeting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meetings: %w", err)
	}
	return meetings, nil
}
