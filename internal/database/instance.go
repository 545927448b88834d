package database

import (
	"context"
	"fmt"

	"github.com/famiglia-rp/meeting-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	meetingRepo contract.MeetingRepo
	rsvpRepo    contract.RSVPRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.meetingRepo = newMeetingRepo(i.db.conn)
	i.rsvpRepo = newRSVPRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		meetingRepo: newMeetingRepo(db),
		rsvpRepo:    newRSVPRepo(db),
	}
}

// Meeting returns the meeting repository
func (i *instance) Meeting() contract.MeetingRepo {
	return i.meetingRepo
}

// RSVP returns the RSVP repository
func (i *instance) RSVP() contract.RSVPRepo {
	return i.rsvpRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
