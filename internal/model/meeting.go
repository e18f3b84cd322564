package model

import "time"

// Meeting is the provider's representation of a scheduled online class.
type Meeting struct {
	ID        string    `json:"id" validate:"required"`
	Topic     string    `json:"topic" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	Duration  int       `json:"duration" validate:"required,gt=0"` // minutes
	Timezone  string    `json:"timezone,omitempty"`
	JoinURL   string    `json:"join_url" validate:"required,url"`
	Password  string    `json:"password,omitempty"`
}
