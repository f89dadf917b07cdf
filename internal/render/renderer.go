// Package render lays out an invoice draft on a single A4 page and writes
// it as PDF.
package render

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Filename is the name the rendered invoice is downloaded as.
const Filename = "invoice.pdf"

const fontFamily = "Helvetica"

// Document is a rendered invoice.
type Document struct {
	Number   string
	IssuedAt time.Time
	Filename string
	Layout   Layout
	PDF      []byte
}

type Renderer struct {
	now    func() time.Time
	number func() string
}

type Option func(*Renderer)

// WithClock sets the source of the issue date.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithInvoiceNumber sets the generator of invoice identifiers.
func WithInvoiceNumber(number func() string) Option {
	return func(r *Renderer) { r.number = number }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		now:    time.Now,
		number: RandomInvoiceNumber,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RandomInvoiceNumber returns a 5-digit numeric identifier.
func RandomInvoiceNumber() string {
	return strconv.Itoa(10000 + rand.IntN(90000))
}

// Render stamps d with a fresh invoice number and issue date and draws it.
func (r *Renderer) Render(ctx context.Context, d domain.Draft, total decimal.Decimal) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	meta := Meta{
		Number:   r.number(),
		IssuedAt: r.now(),
	}
	layout := r.Layout(d, total, meta)

	pdf, err := draw(layout, meta)
	if err != nil {
		return nil, err
	}

	return &Document{
		Number:   meta.Number,
		IssuedAt: meta.IssuedAt,
		Filename: Filename,
		Layout:   layout,
		PDF:      pdf,
	}, nil
}

func draw(l Layout, meta Meta) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+meta.Number, true)
	pdf.SetCreator("hyperinvoice", true)
	pdf.SetCreationDate(meta.IssuedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Core fonts are cp1252; names typed into the form are UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, t := range l.Texts {
		style := ""
		if t.Bold {
			style = "B"
		}
		pdf.SetFont(fontFamily, style, t.Size)
		value := tr(t.Value)
		pdf.Text(t.Start(pdf.GetStringWidth(value)), t.Y, value)
	}

	pdf.SetDrawColor(200, 200, 200)
	for _, rule := range l.Rules {
		pdf.Line(rule.X1, rule.Y1, rule.X2, rule.Y2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
