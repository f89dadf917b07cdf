package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseHoursMode(t *testing.T) {
	tests := map[string]HoursMode{
		"total":    HoursTotal,
		"per-week": HoursPerWeek,
		"":         HoursPerWeek,
		"monthly":  HoursPerWeek,
	}
	for in, want := range tests {
		if got := ParseHoursMode(in); got != want {
			t.Errorf("ParseHoursMode(%q): want %s, got %s", in, want, got)
		}
	}
}

func TestDraft_Normalize(t *testing.T) {
	t.Run("coerces negatives", func(t *testing.T) {
		d := Draft{HourlyRate: decimal.NewFromInt(-5), Hours: decimal.NewFromInt(-1)}
		if err := d.Normalize(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.HourlyRate.IsZero() || !d.Hours.IsZero() {
			t.Errorf("want zero rate and hours, got %s and %s", d.HourlyRate, d.Hours)
		}
		if d.HoursMode != HoursPerWeek {
			t.Errorf("want default mode %s, got %s", HoursPerWeek, d.HoursMode)
		}
	})

	t.Run("drops inverted range", func(t *testing.T) {
		d := Draft{StartDate: day(9), EndDate: day(2), DueDate: day(30)}
		err := d.Normalize()
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("want ErrInvalidRange, got %v", err)
		}
		if d.HasRange() {
			t.Error("range should have been dropped")
		}
		if !d.DueDate.Equal(day(30)) {
			t.Errorf("due date should survive, got %v", d.DueDate)
		}
	})

	t.Run("truncates to calendar days", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		d := Draft{
			StartDate: time.Date(2024, time.March, 3, 22, 30, 0, 0, loc),
			EndDate:   time.Date(2024, time.March, 4, 1, 0, 0, 0, loc),
		}
		if err := d.Normalize(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
		if !d.StartDate.Equal(want) {
			t.Errorf("start: want %v, got %v", want, d.StartDate)
		}
	})
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"0.5", "$0.50"},
		{"1234.5", "$1234.50"},
		{"1234.567", "$1234.57"},
	}
	for _, tt := range tests {
		if got := FormatMoney(decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Errorf("FormatMoney(%s): want %s, got %s", tt.amount, tt.want, got)
		}
	}
}

func TestFormatDisplayAmount(t *testing.T) {
	if got := FormatDisplayAmount(1234.5); got != "1,234.50" {
		t.Errorf("want 1,234.50, got %s", got)
	}
	if got := FormatDisplayAmount(0); got != "0.00" {
		t.Errorf("want 0.00, got %s", got)
	}
}

func TestFormatRange(t *testing.T) {
	got := FormatRange(day(0), day(13))
	if got != "01/01/2024 - 01/14/2024" {
		t.Errorf("unexpected range %q", got)
	}
	if PluralWeeks(1) != "1 week" || PluralWeeks(3) != "3 weeks" {
		t.Errorf("unexpected pluralization: %q, %q", PluralWeeks(1), PluralWeeks(3))
	}
}
