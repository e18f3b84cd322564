// Package telegram provides a client for the messaging proxy that delivers
// course notifications to Telegram groups.
//
// Every request is validated before it is sent and every response is validated
// before it is returned, so callers only ever see well-formed messages.
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aliskhannn/edutrack/internal/model"
	"github.com/aliskhannn/edutrack/internal/schema"
)

const messagesPath = "/api/telegram/messages"

// caller performs a single HTTP call and returns the raw response body.
type caller interface {
	Do(ctx context.Context, method, path string, in any) ([]byte, error)
}

// Client represents a messaging client used to send notifications.
type Client struct {
	api     caller            // transport bound to the proxy base URL
	schemas *schema.Validator // validates payloads in both directions
}

// NewClient creates a new messaging Client on top of the given transport.
func NewClient(api caller, v *schema.Validator) *Client {
	return &Client{api: api, schemas: v}
}

// SendMessage sends text to the chat identified by chatID.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) (model.Message, error) {
	req := schema.SendMessage{
		ChatID: chatID, // recipient chat id
		Text:   text,   // message text
	}

	if err := c.schemas.Check(schema.SendMessageSchema, req); err != nil {
		return model.Message{}, err
	}

	body, err := c.api.Do(ctx, http.MethodPost, messagesPath, req)
	if err != nil {
		return model.Message{}, fmt.Errorf("send message: %w", err)
	}

	return schema.Decode[model.Message](c.schemas, schema.MessageSchema, body)
}

// ScheduleMessage asks the provider to deliver text to chatID at scheduledAt.
func (c *Client) ScheduleMessage(ctx context.Context, chatID, text string, scheduledAt time.Time) (model.Message, error) {
	req := schema.ScheduleMessage{
		ChatID:      chatID,
		Text:        text,
		ScheduledAt: scheduledAt.UTC(),
	}

	if err := c.schemas.Check(schema.ScheduleMessageSchema, req); err != nil {
		return model.Message{}, err
	}

	body, err := c.api.Do(ctx, http.MethodPost, messagesPath+"/schedule", req)
	if err != nil {
		return model.Message{}, fmt.Errorf("schedule message: %w", err)
	}

	return schema.Decode[model.Message](c.schemas, schema.MessageSchema, body)
}

// GetMessageHistory returns the messages sent to chatID in provider order.
//
// An empty history is returned as an empty slice, not an error.
func (c *Client) GetMessageHistory(ctx context.Context, chatID string) ([]model.Message, error) {
	if chatID == "" {
		return nil, &schema.MismatchError{Schema: schema.SendMessageSchema, Field: "chat_id", Reason: "is required"}
	}

	body, err := c.api.Do(ctx, http.MethodGet, messagesPath+"/"+url.PathEscape(chatID), nil)
	if err != nil {
		return nil, fmt.Errorf("get message history: %w", err)
	}

	return schema.DecodeList[model.Message](c.schemas, schema.MessageSchema, body)
}

// GetMessageStatus returns the provider's current view of a single message.
func (c *Client) GetMessageStatus(ctx context.Context, messageID string) (model.Message, error) {
	if messageID == "" {
		return model.Message{}, &schema.MismatchError{Schema: schema.MessageSchema, Field: "id", Reason: "is required"}
	}

	body, err := c.api.Do(ctx, http.MethodGet, messagesPath+"/"+url.PathEscape(messageID)+"/status", nil)
	if err != nil {
		return model.Message{}, fmt.Errorf("get message status: %w", err)
	}

	return schema.Decode[model.Message](c.schemas, schema.MessageSchema, body)
}
