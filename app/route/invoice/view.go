package invoice

import (
	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate templ generate

func formPath(formID uuid.UUID, action string) string {
	return "/drafts/" + formID.String() + "/" + action
}

type PreviewProps struct {
	FormID uuid.UUID
	Draft  domain.Draft
	Total  decimal.Decimal
	Weeks  int
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
