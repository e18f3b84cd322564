// Package schema validates payloads that cross an external API boundary.
//
// Every request built for, and every response received from, the messaging and
// meeting providers goes through this package. A payload either becomes a typed
// value or is rejected with an error matching ErrSchemaMismatch that names the
// offending field path.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Schema names used in mismatch errors.
const (
	MessageSchema         = "Message"
	SendMessageSchema     = "SendMessage"
	ScheduleMessageSchema = "ScheduleMessage"
	MeetingSchema         = "Meeting"
	CreateMeetingSchema   = "CreateMeeting"
)

// ErrSchemaMismatch is matched by every validation failure.
var ErrSchemaMismatch = errors.New("schema mismatch")

// MismatchError describes which field of which schema failed validation.
type MismatchError struct {
	Schema string // schema name, e.g. "Message"
	Field  string // JSON path of the offending field, empty for the whole payload
	Reason string
}

func (e *MismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s: %s", ErrSchemaMismatch, e.Schema, e.Reason)
	}

	return fmt.Sprintf("%s: %s.%s: %s", ErrSchemaMismatch, e.Schema, e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrSchemaMismatch) work for *MismatchError.
func (e *MismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// SendMessage is the body of a send message call.
type SendMessage struct {
	ChatID string `json:"chat_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// ScheduleMessage is the body of a deferred send call.
type ScheduleMessage struct {
	ChatID      string    `json:"chat_id" validate:"required"`
	Text        string    `json:"text" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

// CreateMeeting is the body of a create meeting call.
type CreateMeeting struct {
	Topic     string    `json:"topic" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	Duration  int       `json:"duration" validate:"required,gt=0"`
	Timezone  string    `json:"timezone" validate:"required"`
}

// Validator checks typed values against their struct tags.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}

		return name
	})

	return &Validator{v: v}
}

// Check validates an already typed value, typically an outbound request.
func (v *Validator) Check(schema string, value any) error {
	return v.check(schema, "", value)
}

func (v *Validator) check(schema, prefix string, value any) error {
	err := v.v.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &MismatchError{Schema: schema, Reason: err.Error()}
	}

	fe := fieldErrs[0]

	return &MismatchError{
		Schema: schema,
		Field:  join(prefix, fieldPath(fe.Namespace())),
		Reason: reason(fe),
	}
}

// Decode unmarshals raw JSON into T and validates it.
func Decode[T any](v *Validator, schema string, raw []byte) (T, error) {
	var out T

	if len(bytes.TrimSpace(raw)) == 0 {
		return out, &MismatchError{Schema: schema, Reason: "empty payload"}
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, decodeError(schema, "", err)
	}

	if err := v.check(schema, "", out); err != nil {
		return out, err
	}

	return out, nil
}

// DecodeList unmarshals a JSON array into []T and validates every element.
//
// An empty or null array yields an empty, non-nil slice.
func DecodeList[T any](v *Validator, schema string, raw []byte) ([]T, error) {
	out := make([]T, 0)

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, nil
	}

	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, decodeError(schema, "", err)
	}

	for i, item := range out {
		if err := v.check(schema, fmt.Sprintf("[%d]", i), item); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Parse validates an untyped payload, e.g. a map decoded elsewhere, against T.
func Parse[T any](v *Validator, schema string, payload any) (T, error) {
	var zero T

	raw, err := json.Marshal(payload)
	if err != nil {
		return zero, &MismatchError{Schema: schema, Reason: err.Error()}
	}

	return Decode[T](v, schema, raw)
}

func decodeError(schema, prefix string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if strings.HasPrefix(field, ".") {
			field = field[1:]
		}

		return &MismatchError{
			Schema: schema,
			Field:  join(prefix, field),
			Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}

	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return &MismatchError{Schema: schema, Field: prefix, Reason: "invalid timestamp"}
	}

	return &MismatchError{Schema: schema, Field: prefix, Reason: err.Error()}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}

	return namespace
}

func join(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	}

	return prefix + "." + field
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "url":
		return "must be a valid URL"
	}

	return fmt.Sprintf("failed %q check", fe.Tag())
}
