package render

import (
	"bytes"
	"context"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/shopspring/decimal"
)

var issued = time.Date(2024, time.May, 6, 15, 4, 5, 0, time.UTC)

func fixedRenderer() *Renderer {
	return New(
		WithClock(func() time.Time { return issued }),
		WithInvoiceNumber(func() string { return "12345" }),
	)
}

func day(n int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func sampleDraft() domain.Draft {
	return domain.Draft{
		ClientName:   "Acme Corp",
		BusinessName: "Jane Doe Studio",
		HourlyRate:   decimal.NewFromInt(50),
		Hours:        decimal.NewFromInt(10),
		HoursMode:    domain.HoursPerWeek,
		StartDate:    day(0),
		EndDate:      day(13),
	}
}

func mustLookup(t *testing.T, l Layout, f Field) Text {
	t.Helper()
	text, ok := l.Lookup(f)
	if !ok {
		t.Fatalf("field %s not placed", f)
	}
	return text
}

func TestLayout_FooterAmount(t *testing.T) {
	r := fixedRenderer()

	tests := []struct {
		total float64
		want  string
	}{
		{0, "$0.00"},
		{0.5, "$0.50"},
		{1234.5, "$1234.50"},
		{1234.567, "$1234.57"},
	}

	for _, tt := range tests {
		l := r.Layout(sampleDraft(), decimal.NewFromFloat(tt.total), Meta{Number: "1", IssuedAt: issued})
		if got := mustLookup(t, l, FieldAmountDue).Value; got != tt.want {
			t.Errorf("total %v: want footer %s, got %s", tt.total, tt.want, got)
		}
		if got := mustLookup(t, l, FieldRowAmount).Value; got != tt.want {
			t.Errorf("total %v: want row amount %s, got %s", tt.total, tt.want, got)
		}
	}
}

func TestLayout_WithRange(t *testing.T) {
	l := fixedRenderer().Layout(sampleDraft(), decimal.NewFromInt(1000), Meta{Number: "12345", IssuedAt: issued})

	checks := map[Field]string{
		FieldTitle:        "INVOICE",
		FieldBusiness:     "Jane Doe Studio",
		FieldClient:       "Acme Corp",
		FieldInvoiceID:    "12345",
		FieldIssueDate:    "05/06/2024",
		FieldDueDate:      "05/06/2024 (upon receipt)",
		FieldRange:        "01/01/2024 - 01/14/2024 (2 weeks)",
		FieldRowType:      "Service",
		FieldRowDesc:      "01/01/2024 - 01/14/2024",
		FieldRowQuantity:  "20",
		FieldRowUnitPrice: "$50.00",
		FieldRowAmount:    "$1000.00",
		FieldAmountDue:    "$1000.00",
	}
	for f, want := range checks {
		if got := mustLookup(t, l, f).Value; got != want {
			t.Errorf("%s: want %q, got %q", f, want, got)
		}
	}

	if got := mustLookup(t, l, FieldAmountDue).Y; got != 195 {
		t.Errorf("amount due should sit below the table at y=195, got %v", got)
	}
	if len(l.Rules) != 2 || l.Rules[0].Y1 != 150 || l.Rules[1].Y1 != 175 {
		t.Errorf("unexpected table rules: %+v", l.Rules)
	}
}

func TestLayout_BusinessRightAligned(t *testing.T) {
	l := fixedRenderer().Layout(sampleDraft(), decimal.NewFromInt(1000), Meta{Number: "1", IssuedAt: issued})

	b := mustLookup(t, l, FieldBusiness)
	if !b.AlignRight || b.X != 190 {
		t.Fatalf("business name should end at the right margin, got %+v", b)
	}
	if got := b.Start(40); got != 150 {
		t.Errorf("a 40mm name should start at 150, got %v", got)
	}
	if got := mustLookup(t, l, FieldClient).Start(40); got != 170 {
		t.Errorf("left-aligned text should start at its X, got %v", got)
	}
}

func TestLayout_WithoutRange(t *testing.T) {
	d := sampleDraft()
	d.StartDate, d.EndDate = time.Time{}, time.Time{}
	d.Description = "Web development"
	d.DueDate = day(40)

	l := fixedRenderer().Layout(d, decimal.NewFromInt(500), Meta{Number: "12345", IssuedAt: issued})

	if _, ok := l.Lookup(FieldRange); ok {
		t.Error("date range line should be omitted without a range")
	}
	if got := mustLookup(t, l, FieldDueDate).Value; got != "02/10/2024" {
		t.Errorf("due date: want 02/10/2024, got %s", got)
	}
	if got := mustLookup(t, l, FieldRowDesc).Value; got != "Web development" {
		t.Errorf("description: want free text, got %q", got)
	}
	if got := mustLookup(t, l, FieldRowQuantity).Value; got != "10" {
		t.Errorf("quantity: want raw hours, got %s", got)
	}
	if got := mustLookup(t, l, FieldAmountDue).Y; got != 180 {
		t.Errorf("amount due y: want 180, got %v", got)
	}
}

func TestLayout_EmptyDraft(t *testing.T) {
	l := fixedRenderer().Layout(domain.Draft{}, decimal.Zero, Meta{IssuedAt: issued})

	for _, f := range []Field{FieldBusiness, FieldClient, FieldRowDesc} {
		if got := mustLookup(t, l, f).Value; got != "" {
			t.Errorf("%s: want empty string, got %q", f, got)
		}
	}
	if got := mustLookup(t, l, FieldAmountDue).Value; got != "$0.00" {
		t.Errorf("want $0.00, got %s", got)
	}
}

func TestLayout_InvertedRangeOmitted(t *testing.T) {
	d := sampleDraft()
	d.StartDate, d.EndDate = day(13), day(0)

	l := fixedRenderer().Layout(d, decimal.NewFromInt(500), Meta{IssuedAt: issued})
	if _, ok := l.Lookup(FieldRange); ok {
		t.Error("inverted range should not be printed")
	}
}

func TestLayout_Headers(t *testing.T) {
	l := fixedRenderer().Layout(sampleDraft(), decimal.Zero, Meta{IssuedAt: issued})

	var got []string
	for _, text := range l.Texts {
		if text.Field == FieldHeader {
			got = append(got, text.Value)
		}
	}
	want := []string{"Item type", "Description", "Quantity", "Unit price", "Amount"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("headers: want %v, got %v", want, got)
	}
}

func TestRender_IdempotentLayout(t *testing.T) {
	r := New()
	d := sampleDraft()

	first, err := r.Render(context.Background(), d, decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := r.Render(context.Background(), d, decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	stamped := map[Field]bool{FieldInvoiceID: true, FieldIssueDate: true, FieldDueDate: true}
	if len(first.Layout.Texts) != len(second.Layout.Texts) {
		t.Fatalf("layouts differ in size: %d vs %d", len(first.Layout.Texts), len(second.Layout.Texts))
	}
	for i, a := range first.Layout.Texts {
		b := second.Layout.Texts[i]
		if stamped[a.Field] {
			continue
		}
		if a != b {
			t.Errorf("text %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestRender_PDF(t *testing.T) {
	doc, err := fixedRenderer().Render(context.Background(), sampleDraft(), decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !bytes.HasPrefix(doc.PDF, []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", doc.PDF[:min(len(doc.PDF), 16)])
	}
	if doc.Filename != "invoice.pdf" {
		t.Errorf("filename: want invoice.pdf, got %s", doc.Filename)
	}
	if doc.Number != "12345" || !doc.IssuedAt.Equal(issued) {
		t.Errorf("unexpected stamp: %s %v", doc.Number, doc.IssuedAt)
	}
}

func TestRender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().Render(ctx, sampleDraft(), decimal.Zero); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}

func TestRandomInvoiceNumber(t *testing.T) {
	digits := regexp.MustCompile(`^[1-9][0-9]{4}$`)
	for i := 0; i < 200; i++ {
		if n := RandomInvoiceNumber(); !digits.MatchString(n) {
			t.Fatalf("not a 5-digit number: %q", n)
		}
	}
}
