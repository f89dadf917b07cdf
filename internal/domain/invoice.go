package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// HoursMode tells whether the entered hours are a weekly figure or a
// one-time total.
type HoursMode string

const (
	HoursPerWeek HoursMode = "per-week"
	HoursTotal   HoursMode = "total"
)

// ParseHoursMode falls back to [HoursPerWeek] for anything it does not know.
func ParseHoursMode(s string) HoursMode {
	switch HoursMode(s) {
	case HoursTotal:
		return HoursTotal
	default:
		return HoursPerWeek
	}
}

func (m HoursMode) String() string { return string(m) }

// Label is the human name of the mode as shown on the form.
func (m HoursMode) Label() string {
	if m == HoursTotal {
		return "Total Hours"
	}
	return "Hours/week"
}

// Draft is the unsaved set of form values for one invoice being composed.
// Zero dates are unset.
type Draft struct {
	ClientName   string
	BusinessName string
	Description  string
	HourlyRate   decimal.Decimal
	Hours        decimal.Decimal
	HoursMode    HoursMode
	StartDate    time.Time
	EndDate      time.Time
	DueDate      time.Time
}

// HasRange reports whether both ends of the date range are set.
func (d Draft) HasRange() bool {
	return !d.StartDate.IsZero() && !d.EndDate.IsZero()
}

// Normalize coerces negative numbers to zero, truncates dates to calendar
// days and drops an inverted date range. It returns ErrInvalidRange when the
// range had to be dropped; the draft is usable either way.
func (d *Draft) Normalize() error {
	if d.HourlyRate.IsNegative() {
		d.HourlyRate = decimal.Zero
	}
	if d.Hours.IsNegative() {
		d.Hours = decimal.Zero
	}
	if d.HoursMode != HoursTotal {
		d.HoursMode = HoursPerWeek
	}

	d.StartDate = CalendarDay(d.StartDate)
	d.EndDate = CalendarDay(d.EndDate)
	d.DueDate = CalendarDay(d.DueDate)

	if d.HasRange() && d.EndDate.Before(d.StartDate) {
		d.StartDate, d.EndDate = time.Time{}, time.Time{}
		return ErrInvalidRange
	}
	return nil
}

// CalendarDay strips the clock and location from t, keeping the date the
// caller saw. The zero time stays zero.
func CalendarDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var ErrInvalidRange = errors.New("end date is before start date")
