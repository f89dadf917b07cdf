package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(n int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestInclusiveWeeks(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantWeeks int
		wantErr   error
	}{
		{name: "same day", start: day(0), end: day(0), wantWeeks: 1},
		{name: "six days", start: day(0), end: day(6), wantWeeks: 1},
		{name: "seven days", start: day(0), end: day(7), wantWeeks: 2},
		{name: "fourteen days inclusive", start: day(0), end: day(13), wantWeeks: 2},
		{name: "four weeks", start: day(0), end: day(28), wantWeeks: 5},
		{name: "inverted", start: day(5), end: day(1), wantErr: ErrInvalidRange},
		{
			name:      "whole calendar",
			start:     time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC),
			wantWeeks: 521723,
		},
		{
			name:      "three centuries",
			start:     time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2200, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantWeeks: 15654,
		},
		{
			name:      "clock time ignored",
			start:     day(0).Add(23 * time.Hour),
			end:       day(7).Add(time.Hour),
			wantWeeks: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InclusiveWeeks(tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error: want %v, got %v", tt.wantErr, err)
			}
			if got != tt.wantWeeks {
				t.Errorf("weeks: want %d, got %d", tt.wantWeeks, got)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		want    string
		wantErr error
	}{
		{
			name:  "zero rate",
			draft: Draft{Hours: decimal.NewFromInt(10), HoursMode: HoursTotal},
			want:  "0",
		},
		{
			name:  "zero hours",
			draft: Draft{HourlyRate: decimal.NewFromInt(50), HoursMode: HoursPerWeek},
			want:  "0",
		},
		{
			name: "zero hours ignores inverted range",
			draft: Draft{
				HourlyRate: decimal.NewFromInt(50),
				HoursMode:  HoursPerWeek,
				StartDate:  day(10),
				EndDate:    day(0),
			},
			want: "0",
		},
		{
			name:  "total mode",
			draft: Draft{HourlyRate: decimal.NewFromInt(50), Hours: decimal.NewFromInt(10), HoursMode: HoursTotal},
			want:  "500",
		},
		{
			name: "total mode ignores dates",
			draft: Draft{
				HourlyRate: decimal.NewFromInt(50),
				Hours:      decimal.NewFromInt(10),
				HoursMode:  HoursTotal,
				StartDate:  day(0),
				EndDate:    day(30),
			},
			want: "500",
		},
		{
			name:  "per week without range defaults to one week",
			draft: Draft{HourlyRate: decimal.NewFromInt(50), Hours: decimal.NewFromInt(10), HoursMode: HoursPerWeek},
			want:  "500",
		},
		{
			name: "per week over two weeks",
			draft: Draft{
				HourlyRate: decimal.NewFromInt(50),
				Hours:      decimal.NewFromInt(10),
				HoursMode:  HoursPerWeek,
				StartDate:  day(0),
				EndDate:    day(13),
			},
			want: "1000",
		},
		{
			name: "per week with only a start date",
			draft: Draft{
				HourlyRate: decimal.NewFromInt(50),
				Hours:      decimal.NewFromInt(10),
				HoursMode:  HoursPerWeek,
				StartDate:  day(0),
			},
			want: "500",
		},
		{
			name: "fractional values",
			draft: Draft{
				HourlyRate: decimal.RequireFromString("42.5"),
				Hours:      decimal.RequireFromString("7.5"),
				HoursMode:  HoursTotal,
			},
			want: "318.75",
		},
		{
			name: "inverted range",
			draft: Draft{
				HourlyRate: decimal.NewFromInt(50),
				Hours:      decimal.NewFromInt(10),
				HoursMode:  HoursPerWeek,
				StartDate:  day(10),
				EndDate:    day(0),
			},
			want:    "0",
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Amount(tt.draft)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error: want %v, got %v", tt.wantErr, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("amount: want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAmount_Idempotent(t *testing.T) {
	d := Draft{
		HourlyRate: decimal.NewFromInt(75),
		Hours:      decimal.NewFromInt(20),
		HoursMode:  HoursPerWeek,
		StartDate:  day(0),
		EndDate:    day(20),
	}
	first, _ := Amount(d)
	second, _ := Amount(d)
	if !first.Equal(second) {
		t.Errorf("want identical results, got %s and %s", first, second)
	}
}

func TestQuantity(t *testing.T) {
	ten := decimal.NewFromInt(10)

	tests := []struct {
		name  string
		draft Draft
		want  string
	}{
		{name: "total mode", draft: Draft{Hours: ten, HoursMode: HoursTotal, StartDate: day(0), EndDate: day(13)}, want: "10"},
		{name: "per week without range", draft: Draft{Hours: ten, HoursMode: HoursPerWeek}, want: "10"},
		{name: "per week with range", draft: Draft{Hours: ten, HoursMode: HoursPerWeek, StartDate: day(0), EndDate: day(13)}, want: "20"},
		{name: "half hours", draft: Draft{Hours: decimal.RequireFromString("7.5"), HoursMode: HoursPerWeek, StartDate: day(0), EndDate: day(7)}, want: "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quantity(tt.draft)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("quantity: want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "50", want: "50"},
		{in: " 7.25 ", want: "7.25"},
		{in: "1e2", want: "100"},
		{in: "999999999999.999999999999", want: "999999999999.999999999999"},
		{in: "-1", wantErr: ErrNegativeAmount},
		{in: "1000000000000", wantErr: ErrAmountTooLarge},
		{in: "1e12", wantErr: ErrAmountTooLarge},
		{in: "1e3000000", wantErr: ErrAmountTooLarge},
		{in: "1e-3000000", wantErr: ErrAmountTooLarge},
		{in: "0.0000000000001", wantErr: ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error: want %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && got.String() != tt.want {
				t.Errorf("want %s, got %s", tt.want, got)
			}
		})
	}

	if _, err := ParseAmount("fifty"); err == nil {
		t.Error("non-numeric input should fail")
	}
}
