package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/angelofallars/hyperinvoice/internal/render"
	"github.com/shopspring/decimal"
)

type Invoice interface {
	Calculate(d *domain.Draft) decimal.Decimal
	Create(ctx context.Context, d domain.Draft) (*render.Document, error)
}

type invoice struct {
	slog     *slog.Logger
	renderer *render.Renderer
}

func NewInvoice(slog *slog.Logger, renderer *render.Renderer) *invoice {
	return &invoice{
		slog:     slog,
		renderer: renderer,
	}
}

// Calculate normalizes d in place and returns its total. It never fails:
// anything the calculator rejects degrades to a zero total.
func (i *invoice) Calculate(d *domain.Draft) decimal.Decimal {
	if err := d.Normalize(); errors.Is(err, domain.ErrInvalidRange) {
		i.slog.Debug("ignoring inverted date range", "error", err)
	}

	total, err := domain.Amount(*d)
	if err != nil {
		i.slog.Warn("amount calculation failed", "error", err)
		return decimal.Zero
	}
	return total
}

func (i *invoice) Create(ctx context.Context, d domain.Draft) (*render.Document, error) {
	total := i.Calculate(&d)

	doc, err := i.renderer.Render(ctx, d, total)
	if err != nil {
		return nil, err
	}

	i.slog.Info("invoice created",
		"number", doc.Number,
		"total", domain.FormatMoney(total),
		"bytes", len(doc.PDF),
	)
	return doc, nil
}
