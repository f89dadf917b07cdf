// Package auth resolves the form a request belongs to. Forms are
// capabilities: whoever holds the form ID in the page may edit that draft.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/angelofallars/htmx-go"
	"github.com/angelofallars/hyperinvoice/app/event"
	"github.com/angelofallars/hyperinvoice/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FormIDParam is the URL parameter carrying the form ID.
const FormIDParam = "formID"

// RequireForm loads the form named in the URL onto the request context.
// An expired form makes an htmx page reload itself with a fresh draft.
func RequireForm(forms *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(chi.URLParam(r, FormIDParam))
			if err != nil {
				http.Error(w, "invalid form ID", http.StatusBadRequest)
				return
			}

			form, ok := forms.Get(id)
			if !ok {
				if htmx.IsHTMX(r) {
					_ = htmx.NewResponse().
						StatusCode(http.StatusGone).
						Reswap(htmx.SwapNone).
						AddTrigger(event.TriggerSetErrMessage("This form expired. Reloading...")).
						Refresh(true).
						Write(w)
					return
				}
				http.Error(w, "form not found or expired", http.StatusNotFound)
				return
			}

			r = r.WithContext(context.WithValue(r.Context(), formKey, form))
			next.ServeHTTP(w, r)
		})
	}
}

func GetForm(c context.Context) (*session.Form, error) {
	form, ok := c.Value(formKey).(*session.Form)
	if !ok {
		return nil, errors.New("Form not found on request context")
	}
	return form, nil
}

type key struct{}

var formKey = key{}
