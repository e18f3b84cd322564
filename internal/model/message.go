package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is a unit dispatched to a messaging group, as reported by the messaging provider.
type Message struct {
	ID        string    `json:"id" validate:"required"`
	ChatID    string    `json:"chat_id" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	SentAt    time.Time `json:"sent_at"`
	Status    Status    `json:"status" validate:"required,oneof=pending sent failed"`
	RequestID uuid.UUID `json:"-"` // local link to the notification request that produced it
}
