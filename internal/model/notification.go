package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a notification request or a message.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusSent || s == StatusFailed
}

// Repeat controls whether a sent request spawns a follow-up request.
type Repeat string

const (
	RepeatNone   Repeat = "none"
	RepeatDaily  Repeat = "daily"
	RepeatWeekly Repeat = "weekly"
)

// Valid reports whether r is one of the known repeat modes.
func (r Repeat) Valid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly:
		return true
	}

	return false
}

// NotificationRequest represents an intent to send a message to a recipient group.
type NotificationRequest struct {
	ID               uuid.UUID  `json:"id"`                      // unique identifier of the request
	RecipientGroupID string     `json:"recipient_group_id"`      // messaging chat the text goes to
	MessageText      string     `json:"message_text"`            // text of the message
	ScheduleTime     *time.Time `json:"schedule_time,omitempty"` // nil means "send now"
	Repeat           Repeat     `json:"repeat"`                  // none, daily or weekly
	Status           Status     `json:"status"`                  // pending, sent or failed
	FailureReason    string     `json:"failure_reason,omitempty"`
	CreatedBy        string     `json:"created_by"`              // user or automation that submitted it
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DispatchedAt     *time.Time `json:"dispatched_at,omitempty"` // set once the request leaves pending
}

// DueAt reports whether the request should be dispatched at now.
func (n NotificationRequest) DueAt(now time.Time) bool {
	return n.ScheduleTime == nil || !n.ScheduleTime.After(now)
}

// DashboardStats holds request counts per status.
type DashboardStats struct {
	Pending int `json:"pending"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Total   int `json:"total"`
}
