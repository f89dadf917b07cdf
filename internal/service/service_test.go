package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/angelofallars/hyperinvoice/internal/render"
	"github.com/shopspring/decimal"
)

func newTestService() *invoice {
	return NewInvoice(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		render.New(render.WithInvoiceNumber(func() string { return "54321" })),
	)
}

func day(n int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestInvoice_Calculate(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name  string
		draft domain.Draft
		want  string
	}{
		{
			name:  "negative rate coerced",
			draft: domain.Draft{HourlyRate: decimal.NewFromInt(-50), Hours: decimal.NewFromInt(10)},
			want:  "0",
		},
		{
			name: "two weeks",
			draft: domain.Draft{
				HourlyRate: decimal.NewFromInt(50),
				Hours:      decimal.NewFromInt(10),
				HoursMode:  domain.HoursPerWeek,
				StartDate:  day(0),
				EndDate:    day(13),
			},
			want: "1000",
		},
		{
			name: "inverted range falls back to one week",
			draft: domain.Draft{
				HourlyRate: decimal.NewFromInt(50),
				Hours:      decimal.NewFromInt(10),
				HoursMode:  domain.HoursPerWeek,
				StartDate:  day(13),
				EndDate:    day(0),
			},
			want: "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.draft
			got := svc.Calculate(&d)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestInvoice_Create(t *testing.T) {
	svc := newTestService()

	doc, err := svc.Create(context.Background(), domain.Draft{
		ClientName: "Acme",
		HourlyRate: decimal.NewFromInt(50),
		Hours:      decimal.NewFromInt(10),
		HoursMode:  domain.HoursTotal,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if doc.Number != "54321" {
		t.Errorf("want invoice number 54321, got %s", doc.Number)
	}
	amount, ok := doc.Layout.Lookup(render.FieldAmountDue)
	if !ok || amount.Value != "$500.00" {
		t.Errorf("want amount due $500.00, got %+v", amount)
	}
	if len(doc.PDF) == 0 {
		t.Error("expected PDF bytes")
	}
}
