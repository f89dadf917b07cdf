package invoice

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/angelofallars/htmx-go"
	"github.com/angelofallars/hyperinvoice/app/auth"
	"github.com/angelofallars/hyperinvoice/app/component"
	"github.com/angelofallars/hyperinvoice/app/event"
	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/angelofallars/hyperinvoice/internal/service"
	"github.com/angelofallars/hyperinvoice/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
)

type HandlerGroup struct {
	slog       *slog.Logger
	svcInvoice service.Invoice
	forms      *session.Store
}

func NewHandlerGroup(slog *slog.Logger, svcInvoice service.Invoice, forms *session.Store) *HandlerGroup {
	return &HandlerGroup{
		slog:       slog,
		svcInvoice: svcInvoice,
		forms:      forms,
	}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Get("/", hg.handleIndex)
	r.Route("/drafts/{"+auth.FormIDParam+"}", func(r chi.Router) {
		r.Use(auth.RequireForm(hg.forms))
		r.Post("/total", hg.handleTotal)
		r.Get("/ticker", hg.handleTicker)
		r.Post("/preview", hg.handlePreview)
		r.Post("/invoice", hg.handleCreateInvoice)
		r.Get("/invoice.pdf", hg.handleDownloadInvoice)
	})
}

func (hg *HandlerGroup) handleIndex(w http.ResponseWriter, r *http.Request) {
	form := hg.forms.Create()
	templ.Handler(component.FullPage("Invoice Generator", page(form.ID))).ServeHTTP(w, r)
}

// bindDraft reads the posted form into the request's form session and
// returns the recalculated draft and total.
func (hg *HandlerGroup) bindDraft(w http.ResponseWriter, r *http.Request) (*session.Form, domain.Draft, decimal.Decimal, bool) {
	form, err := auth.GetForm(r.Context())
	if err != nil {
		showError(w, http.StatusInternalServerError, err)
		return nil, domain.Draft{}, decimal.Zero, false
	}

	req := &DraftRequest{}
	if err := render.Bind(r, req); err != nil {
		showError(w, http.StatusBadRequest, err)
		return nil, domain.Draft{}, decimal.Zero, false
	}

	draft := req.Draft()
	total := hg.svcInvoice.Calculate(&draft)
	form.Update(draft, total)

	return form, draft, total, true
}

func (hg *HandlerGroup) handleTotal(w http.ResponseWriter, r *http.Request) {
	_, _, total, ok := hg.bindDraft(w, r)
	if !ok {
		return
	}

	_ = htmx.NewResponse().
		AddTrigger(
			event.TriggerTotalChanged(domain.FormatMoney(total)),
			event.TriggerClearErrMessage,
		).
		RenderTempl(r.Context(), w, Total(total))
}

func (hg *HandlerGroup) handlePreview(w http.ResponseWriter, r *http.Request) {
	form, draft, total, ok := hg.bindDraft(w, r)
	if !ok {
		return
	}

	weeks, err := domain.Weeks(draft)
	if err != nil {
		weeks = 1
	}

	_ = htmx.NewResponse().
		AddTrigger(
			event.TriggerOpenPreview,
			event.TriggerClearErrMessage,
		).
		RenderTempl(r.Context(), w, Preview(PreviewProps{
			FormID: form.ID,
			Draft:  draft,
			Total:  total,
			Weeks:  weeks,
		}))
}

// handleCreateInvoice takes the final state of the form and sends the
// browser off to download the PDF.
func (hg *HandlerGroup) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	form, _, _, ok := hg.bindDraft(w, r)
	if !ok {
		return
	}

	_ = htmx.NewResponse().
		AddTrigger(
			event.TriggerInvoiceCreated,
			event.TriggerClearErrMessage,
		).
		Redirect(formPath(form.ID, "invoice.pdf")).
		Write(w)
}

func (hg *HandlerGroup) handleDownloadInvoice(w http.ResponseWriter, r *http.Request) {
	form, err := auth.GetForm(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	draft, _ := form.Snapshot()
	doc, err := hg.svcInvoice.Create(r.Context(), draft)
	if err != nil {
		hg.slog.Error("rendering invoice failed", "form", form.ID, "error", err)
		http.Error(w, "Rendering the invoice failed.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+doc.Filename)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.PDF)))
	_, _ = w.Write(doc.PDF)
}

func showError(w http.ResponseWriter, code int, err error) {
	_ = htmx.NewResponse().
		StatusCode(code).
		Reswap(htmx.SwapNone).
		AddTrigger(event.TriggerSetErrMessage(err.Error())).
		Write(w)
}
