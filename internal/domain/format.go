package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the MM/DD/YYYY form used on invoices.
const DateLayout = "01/02/2006"

var displayPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatMoney renders an amount the way it is printed on the invoice: a
// dollar sign, no grouping and exactly two decimals.
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatDisplayAmount groups thousands for the on-page total, without the
// currency symbol.
func FormatDisplayAmount(amount float64) string {
	return displayPrinter.Sprintf("%.2f", amount)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatRange(start, end time.Time) string {
	return FormatDate(start) + " - " + FormatDate(end)
}

func PluralWeeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}
