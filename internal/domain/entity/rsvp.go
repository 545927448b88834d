package entity

import "time"

type RSVPStatus string

const (
	RSVPStatusAttending    RSVPStatus = "attending"
	RSVPStatusNotAttending RSVPStatus = "not_attending"
	RSVPStatusPending      RSVPStatus = "pending"
)

// IsExplicit reports whether the status is one a user can move to. A user who
// has not responded is pending by row absence; nothing ever writes a pending
// row, so pending is never a valid transition target.
func (s RSVPStatus) IsExplicit() bool {
	return s == RSVPStatusAttending || s == RSVPStatusNotAttending
}

type RSVP struct {
	MeetingID   string     `json:"meeting_id" db:"meeting_id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Status      RSVPStatus `json:"status" db:"status"`
	Notes       string     `json:"notes,omitempty" db:"notes"`
	RespondedAt time.Time  `json:"responded_at" db:"responded_at"`
}

// RSVPCounts aggregates explicit responses for one meeting.
type RSVPCounts struct {
	Attending    int
	NotAttending int
}

func CountRSVPs(rsvps []*RSVP) RSVPCounts {
	var counts RSVPCounts
	for _, r := range rsvps {
		switch r.Status {
		case RSVPStatusAttending:
			counts.Attending++
		case RSVPStatusNotAttending:
			counts.NotAttending++
		}
	}
	return counts
}
