package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	week       = 7
	secondsDay = 24 * 60 * 60
)

// MaxAmountDigits bounds both the integer and the fractional digits of a
// rate or hour count.
const MaxAmountDigits = 12

var (
	ErrNegativeAmount = errors.New("cannot be less than zero")
	ErrAmountTooLarge = errors.New("has too many digits")
)

// ParseAmount parses a rate or hour count. The digit bounds are checked on
// the coefficient and exponent before any arithmetic, so "1e3000000" is
// rejected without building a three-million-digit number.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	exp := int64(d.Exponent())
	if exp < -MaxAmountDigits || int64(d.NumDigits())+exp > MaxAmountDigits {
		return decimal.Zero, ErrAmountTooLarge
	}
	return d, nil
}

// InclusiveWeeks counts the calendar weeks spanned by start..end, counting a
// partial week as a full one. A single day is one week.
func InclusiveWeeks(start, end time.Time) (int, error) {
	start, end = CalendarDay(start), CalendarDay(end)
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	// Unix seconds, not time.Duration: a Duration overflows past ~292 years.
	days := (end.Unix() - start.Unix()) / secondsDay
	return int(days/week) + 1, nil
}

// Weeks returns the number of weeks the draft bills for: the inclusive week
// count of its range, or 1 without a range.
func Weeks(d Draft) (int, error) {
	if !d.HasRange() {
		return 1, nil
	}
	return InclusiveWeeks(d.StartDate, d.EndDate)
}

// Amount is the invoice total for d.
func Amount(d Draft) (decimal.Decimal, error) {
	if !d.HourlyRate.IsPositive() || !d.Hours.IsPositive() {
		return decimal.Zero, nil
	}

	base := d.HourlyRate.Mul(d.Hours)
	if d.HoursMode == HoursTotal {
		return base, nil
	}

	weeks, err := Weeks(d)
	if err != nil {
		return decimal.Zero, err
	}
	return base.Mul(decimal.NewFromInt(int64(weeks))), nil
}

// Quantity is the hour count printed on the invoice row. Weekly hours are
// multiplied out only when a range says for how many weeks.
func Quantity(d Draft) (decimal.Decimal, error) {
	if d.HoursMode == HoursTotal || !d.HasRange() {
		return d.Hours, nil
	}
	weeks, err := InclusiveWeeks(d.StartDate, d.EndDate)
	if err != nil {
		return d.Hours, err
	}
	return d.Hours.Mul(decimal.NewFromInt(int64(weeks))), nil
}
