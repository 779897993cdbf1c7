package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProduct_DaysUntilExpiration(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Duration
		want int
	}{
		{"later today", 6 * time.Hour, 0},
		{"just under two days", 47 * time.Hour, 1},
		{"ten days", 10 * day, 10},
		{"expired an hour ago", -time.Hour, 0},
		{"expired two days ago", -49 * time.Hour, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{ExpirationDate: now.Add(tt.in)}
			assert.Equal(t, tt.want, p.DaysUntilExpiration(now))
		})
	}
}

func TestProduct_DaysUntilExpiration_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// clocks go forward on 2025-03-30, that day lasts 23 hours
	now := time.Date(2025, time.March, 27, 0, 0, 0, 0, loc)
	exp := time.Date(2025, time.April, 2, 0, 0, 0, 0, loc)

	p := Product{ExpirationDate: exp}
	assert.Equal(t, 6, p.DaysUntilExpiration(now))
	assert.Equal(t, 6, p.DaysUntilExpiration(now.UTC()))
	assert.Equal(t, -6, Product{ExpirationDate: now}.DaysUntilExpiration(exp))

	// clocks go back on 2025-10-26, that day lasts 25 hours
	now = time.Date(2025, time.October, 25, 0, 30, 0, 0, loc)
	exp = time.Date(2025, time.October, 27, 0, 0, 0, 0, loc)
	assert.Equal(t, 1, Product{ExpirationDate: exp}.DaysUntilExpiration(now))
}

func TestProduct_Status(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusExpired, Product{ExpirationDate: now.Add(-time.Minute)}.Status(now))
	assert.Equal(t, StatusUrgent, Product{ExpirationDate: now.Add(3 * day)}.Status(now))
	assert.Equal(t, StatusSoon, Product{ExpirationDate: now.Add(7 * day)}.Status(now))
	assert.Equal(t, StatusFresh, Product{ExpirationDate: now.Add(8 * day)}.Status(now))
}

func TestCalendarTrigger_TruncatesToMinute(t *testing.T) {
	at := time.Date(2025, time.June, 4, 8, 15, 59, 999, time.UTC)

	tr := CalendarTrigger(at)
	assert.Equal(t, TriggerCalendar, tr.Kind)
	assert.Equal(t, time.Date(2025, time.June, 4, 8, 15, 0, 0, time.UTC), tr.At)

	req := NotificationRequest{Trigger: tr}
	assert.Equal(t, tr.At, req.FireAt())
}

func TestNotificationRequest_FireAt_Delay(t *testing.T) {
	registered := time.Date(2025, time.June, 4, 8, 0, 0, 0, time.UTC)
	req := NotificationRequest{Trigger: DelayTrigger(5 * time.Second), RegisteredAt: registered}

	assert.Equal(t, registered.Add(5*time.Second), req.FireAt())
}

func TestPermissionStatus_Valid(t *testing.T) {
	assert.True(t, PermissionProvisional.Valid())
	assert.False(t, PermissionStatus("granted").Valid())
}
