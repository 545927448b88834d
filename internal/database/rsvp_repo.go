package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain/contract"
	"github.com/famiglia-rp/meeting-bot/internal/domain/entity"
)

type rsvpRepo struct {
	db dbConn
}

func newRSVPRepo(db dbConn) contract.RSVPRepo {
	return &rsvpRepo{db: db}
}

func (r *rsvpRepo) Upsert(rsvp *entity.RSVP) error {
	// One row per (meeting, user); last response wins
	query := `
		INSERT INTO meeting_rsvps (meeting_id, user_id, status, notes, responded_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(meeting_id, user_id) DO UPDATE SET
			status = excluded.status,
			notes = excluded.notes,
			responded_at = excluded.responded_at
	`

	respondedAt := rsvp.RespondedAt
	if respondedAt.IsZero() {
		respondedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(query,
		rsvp.MeetingID,
		rsvp.UserID,
		rsvp.Status,
		rsvp.Notes,
		respondedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rsvp: %w", err)
	}

	rsvp.RespondedAt = respondedAt
	return nil
}

func (r *rsvpRepo) GetByMeetingAndUser(meetingID, userID string) (*entity.RSVP, error) {
	rsvp := &entity.RSVP{}
	query := `
		SELECT meeting_id, user_id, status, notes, responded_at
		FROM meeting_rsvps
		WHERE meeting_id = ? AND user_id = ?
	`

	err := r.db.QueryRow(query, meetingID, userID).Scan(
		&rsvp.MeetingID,
		&rsvp.UserID,
		&rsvp.Status,
		&rsvp.Notes,
		&rsvp.RespondedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp: %w", err)
	}

	return rsvp, nil
}

func (r *rsvpRepo) ListByMeeting(meetingID string) ([]*entity.RSVP, error) {
	query := `
		SELECT meeting_id, user_id, status, notes, responded_at
		FROM meeting_rsvps
		WHERE meeting_id = ?
		ORDER BY responded_at ASC
	`

	rows, err := r.db.Query(query, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	defer rows.Close()

	var rsvps []*entity.RSVP
	for rows.Next() {
		rsvp := &entity.RSVP{}
		err := rows.Scan(
			&rsvp.MeetingID,
			&rsvp.UserID,
			&rsvp.Status,
			&rsvp.Notes,
			&rsvp.RespondedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		rsvps = append(rsvps, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rsvps: %w", err)
	}

	return rsvps, nil
}
