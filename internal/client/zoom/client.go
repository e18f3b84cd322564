// Package zoom provides a client for the meeting proxy used to run online classes.
package zoom

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aliskhannn/edutrack/internal/client/remote"
	"github.com/aliskhannn/edutrack/internal/model"
	"github.com/aliskhannn/edutrack/internal/schema"
)

const (
	meetingsPath = "/api/zoom/meetings"

	// DefaultTimezone is used when CreateMeeting gets an empty timezone.
	DefaultTimezone = "UTC"
)

// ErrMeetingNotFound is returned when the provider answers 404 for a meeting.
var ErrMeetingNotFound = errors.New("meeting not found")

type caller interface {
	Do(ctx context.Context, method, path string, in any) ([]byte, error)
}

// Client talks to the meeting proxy.
type Client struct {
	api     caller
	schemas *schema.Validator
}

// NewClient creates a new meeting Client.
func NewClient(api caller, v *schema.Validator) *Client {
	return &Client{api: api, schemas: v}
}

// CreateMeeting creates a meeting of duration minutes starting at startTime.
func (c *Client) CreateMeeting(ctx context.Context, topic string, startTime time.Time, duration int, timezone string) (model.Meeting, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}

	req := schema.CreateMeeting{
		Topic:     topic,
		StartTime: startTime.UTC(),
		Duration:  duration,
		Timezone:  timezone,
	}

	if err := c.schemas.Check(schema.CreateMeetingSchema, req); err != nil {
		return model.Meeting{}, err
	}

	body, err := c.api.Do(ctx, http.MethodPost, meetingsPath, req)
	if err != nil {
		return model.Meeting{}, fmt.Errorf("create meeting: %w", err)
	}

	return schema.Decode[model.Meeting](c.schemas, schema.MeetingSchema, body)
}

// GetUpcomingMeetings lists meetings that have not started yet.
func (c *Client) GetUpcomingMeetings(ctx context.Context) ([]model.Meeting, error) {
	body, err := c.api.Do(ctx, http.MethodGet, meetingsPath+"/upcoming", nil)
	if err != nil {
		return nil, fmt.Errorf("get upcoming meetings: %w", err)
	}

	return schema.DecodeList[model.Meeting](c.schemas, schema.MeetingSchema, body)
}

// GetMeeting fetches a single meeting.
func (c *Client) GetMeeting(ctx context.Context, id string) (model.Meeting, error) {
	if id == "" {
		return model.Meeting{}, &schema.MismatchError{Schema: schema.MeetingSchema, Field: "id", Reason: "is required"}
	}

	body, err := c.api.Do(ctx, http.MethodGet, meetingsPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return model.Meeting{}, fmt.Errorf("get meeting %s: %w", id, notFound(err))
	}

	return schema.Decode[model.Meeting](c.schemas, schema.MeetingSchema, body)
}

// DeleteMeeting removes a meeting at the provider.
func (c *Client) DeleteMeeting(ctx context.Context, id string) error {
	if id == "" {
		return &schema.MismatchError{Schema: schema.MeetingSchema, Field: "id", Reason: "is required"}
	}

	if _, err := c.api.Do(ctx, http.MethodDelete, meetingsPath+"/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("delete meeting %s: %w", id, notFound(err))
	}

	return nil
}

// notFound adds ErrMeetingNotFound to a 404 call error while keeping the original chain.
func notFound(err error) error {
	var callErr *remote.CallError
	if errors.As(err, &callErr) && callErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrMeetingNotFound, err)
	}

	return err
}
