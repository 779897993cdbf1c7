package model

import (
	"time"

	"github.com/google/uuid"
)

// TriggerKind distinguishes relative-delay triggers from calendar triggers.
type TriggerKind string

const (
	TriggerDelay    TriggerKind = "delay"
	TriggerCalendar TriggerKind = "calendar"
)

// Trigger describes when a notification request fires.
type Trigger struct {
	Kind  TriggerKind   `json:"kind"`
	Delay time.Duration `json:"delay,omitempty"` // for TriggerDelay, counted from RegisteredAt
	At    time.Time     `json:"at,omitempty"`    // for TriggerCalendar, minute precision
}

// DelayTrigger fires d after the request is registered.
func DelayTrigger(d time.Duration) Trigger {
	return Trigger{Kind: TriggerDelay, Delay: d}
}

// CalendarTrigger fires at the calendar minute containing t.
func CalendarTrigger(t time.Time) Trigger {
	return Trigger{
		Kind: TriggerCalendar,
		At:   time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location()),
	}
}

// Components returns the calendar components of a calendar trigger.
func (t Trigger) Components() (year int, month time.Month, day, hour, minute int) {
	return t.At.Year(), t.At.Month(), t.At.Day(), t.At.Hour(), t.At.Minute()
}

// Content is what the user sees, plus the payload for whoever handles a tap.
type Content struct {
	Title    string         `json:"title"`
	Body     string         `json:"body"`
	Category string         `json:"category,omitempty"`
	Sound    string         `json:"sound,omitempty"`
	Badge    int            `json:"badge,omitempty"`
	Payload  map[string]any `json:"payload,omitempty"`
}

// NotificationRequest is a single pending notification as stored by the
// notification center. Identifier is unique within the center.
type NotificationRequest struct {
	Identifier   string    `json:"identifier"`
	Content      Content   `json:"content"`
	Trigger      Trigger   `json:"trigger"`
	RegisteredAt time.Time `json:"registered_at"`
}

// FireAt returns the instant the request becomes due.
func (r NotificationRequest) FireAt() time.Time {
	if r.Trigger.Kind == TriggerDelay {
		return r.RegisteredAt.Add(r.Trigger.Delay)
	}

	return r.Trigger.At
}

// PermissionStatus mirrors the authorization states of a notification center.
type PermissionStatus string

const (
	PermissionNotDetermined PermissionStatus = "notDetermined"
	PermissionDenied        PermissionStatus = "denied"
	PermissionAuthorized    PermissionStatus = "authorized"
	PermissionProvisional   PermissionStatus = "provisional"
	PermissionEphemeral     PermissionStatus = "ephemeral"
)

// Valid reports whether s is a known permission status.
func (s PermissionStatus) Valid() bool {
	switch s {
	case PermissionNotDetermined, PermissionDenied, PermissionAuthorized, PermissionProvisional, PermissionEphemeral:
		return true
	}

	return false
}

// Delivery statuses.
const (
	DeliverySent    = "sent"
	DeliveryFailed  = "failed"
	DeliverySkipped = "skipped"
)

// Delivery records one attempt to hand a due notification to a channel.
type Delivery struct {
	ID         uuid.UUID  `json:"id"`         // unique identifier for the delivery record
	Identifier string     `json:"identifier"` // notification identifier, e.g. "expiration_<uuid>"
	ProductID  *uuid.UUID `json:"product_id"` // product the notification was about, if known
	Title      string     `json:"title"`      // notification title
	Body       string     `json:"body"`       // notification body
	Channel    string     `json:"channel"`    // delivery method, e.g. "email", "telegram"
	Status     string     `json:"status"`     // "sent", "failed" or "skipped"
	CreatedAt  time.Time  `json:"created_at"` // timestamp when the attempt was recorded
}
