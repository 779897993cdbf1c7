// Package scheduler keeps one pending expiration notification per product in
// a notification center.
//
// Every product is addressed by a key derived from its ID (see NotificationKey).
// Scheduling always cancels that key before registering a new request, which
// is what makes rescheduling idempotent and keeps stale alerts from surviving.
package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/keepsafe/internal/model"
)

// KeyPrefix namespaces every identifier the scheduler registers.
const KeyPrefix = "expiration_"

const (
	// UrgencyWindowDays is the largest days-until-expiration that still
	// triggers an urgent alert instead of an advance reminder.
	UrgencyWindowDays = 3
	// ReminderLeadDays is how many calendar days before expiration the
	// advance reminder fires.
	ReminderLeadDays = 3
	// DefaultUrgentDelay is the delay after scheduling at which urgent alerts fire.
	DefaultUrgentDelay = 5 * time.Second

	urgentTitle   = "🚨 Expiration Alert!"
	reminderTitle = "⏰ Expiration Reminder"

	contentCategory = "EXPIRATION_REMINDER"
	contentSound    = "default"
)

// Payload keys attached to every request.
const (
	PayloadProductID      = "product_id"
	PayloadProductName    = "product_name"
	PayloadExpirationDate = "expiration_date"
)

// NotificationKey derives the notification identifier of a product.
//
// Changing the format breaks cancellation of requests registered by earlier
// versions, so it must stay stable.
func NotificationKey(productID uuid.UUID) string {
	return KeyPrefix + productID.String()
}

// IsExpirationKey reports whether identifier belongs to the scheduler's namespace.
func IsExpirationKey(identifier string) bool {
	return strings.HasPrefix(identifier, KeyPrefix)
}

// ProductIDFromKey extracts the product ID from an identifier produced by
// NotificationKey.
func ProductIDFromKey(identifier string) (uuid.UUID, bool) {
	if !IsExpirationKey(identifier) {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(strings.TrimPrefix(identifier, KeyPrefix))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// Outcome names the branch the policy took for a product.
type Outcome string

const (
	OutcomeUrgent   Outcome = "urgent"
	OutcomeReminder Outcome = "reminder"
	OutcomeSkipped  Outcome = "skipped"
)

// Policy decides what notification, if any, a product gets.
type Policy struct {
	UrgentDelay time.Duration
}

// Plan computes the request for product as of now. The boolean is false when
// nothing should be scheduled, which happens only when the advance reminder
// would already lie in the past.
//
// The branch is chosen solely by days until expiration: anything within
// UrgencyWindowDays (expired products included) gets an urgent alert.
func (p Policy) Plan(product model.Product, now time.Time) (model.NotificationRequest, Outcome, bool) {
	days := product.DaysUntilExpiration(now)

	content := model.Content{
		Category: contentCategory,
		Sound:    contentSound,
		Badge:    1,
		Payload: map[string]any{
			PayloadProductID:      product.ID.String(),
			PayloadProductName:    product.Name,
			PayloadExpirationDate: product.ExpirationDate.Unix(),
		},
	}

	req := model.NotificationRequest{
		Identifier: NotificationKey(product.ID),
	}

	if days <= UrgencyWindowDays {
		content.Title = urgentTitle
		content.Body = urgentBody(product.Name, days)

		req.Content = content
		req.Trigger = model.DelayTrigger(p.urgentDelay())

		return req, OutcomeUrgent, true
	}

	reminder := product.ExpirationDate.AddDate(0, 0, -ReminderLeadDays)
	if !reminder.After(now) {
		return model.NotificationRequest{}, OutcomeSkipped, false
	}

	content.Title = reminderTitle
	content.Body = fmt.Sprintf("%s expires in %d days!", product.Name, ReminderLeadDays)

	req.Content = content
	req.Trigger = model.CalendarTrigger(reminder)

	return req, OutcomeReminder, true
}

func (p Policy) urgentDelay() time.Duration {
	if p.UrgentDelay <= 0 {
		return DefaultUrgentDelay
	}

	return p.UrgentDelay
}

func urgentBody(name string, days int) string {
	switch {
	case days <= 0:
		return fmt.Sprintf("%s has expired!", name)
	case days == 1:
		return fmt.Sprintf("%s expires tomorrow!", name)
	default:
		return fmt.Sprintf("%s expires in %d days!", name, days)
	}
}
