package invoice

import (
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/shopspring/decimal"
)

const maxTextLength = 200

// DraftRequest is the invoice form as posted by the page. Every field is
// kept as text: bad numbers and dates degrade to zero and unset instead of
// failing the request.
type DraftRequest struct {
	ClientName   string `form:"client-name"`
	BusinessName string `form:"business-name"`
	Description  string `form:"description"`
	HourlyRate   string `form:"hourly-rate"`
	Hours        string `form:"hours"`
	HoursMode    string `form:"hours-mode"`
	StartDate    string `form:"start-date"`
	EndDate      string `form:"end-date"`
	DueDate      string `form:"due-date"`
}

// DraftRequest satisfies [render.Binder]
func (dr *DraftRequest) Bind(r *http.Request) error {
	dr.ClientName = strings.TrimSpace(dr.ClientName)
	dr.BusinessName = strings.TrimSpace(dr.BusinessName)
	dr.Description = strings.TrimSpace(dr.Description)

	for _, field := range []struct{ name, value string }{
		{"Client name", dr.ClientName},
		{"Business name", dr.BusinessName},
		{"Description", dr.Description},
	} {
		if utf8.RuneCountInString(field.value) > maxTextLength {
			return fmt.Errorf("%s cannot be longer than %d characters.", field.name, maxTextLength)
		}
	}

	return nil
}

// Draft converts the request into a domain draft.
func (dr *DraftRequest) Draft() domain.Draft {
	return domain.Draft{
		ClientName:   dr.ClientName,
		BusinessName: dr.BusinessName,
		Description:  dr.Description,
		HourlyRate:   parseAmount(dr.HourlyRate),
		Hours:        parseAmount(dr.Hours),
		HoursMode:    domain.ParseHoursMode(dr.HoursMode),
		StartDate:    parseDate(dr.StartDate),
		EndDate:      parseDate(dr.EndDate),
		DueDate:      parseDate(dr.DueDate),
	}
}

func parseAmount(s string) decimal.Decimal {
	d, err := domain.ParseAmount(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}
