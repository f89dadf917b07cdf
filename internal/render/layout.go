package render

import (
	"time"

	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/shopspring/decimal"
)

// Field names the semantic slot a text run fills on the page.
type Field string

const (
	FieldTitle        Field = "title"
	FieldFromLabel    Field = "from-label"
	FieldBusiness     Field = "business"
	FieldInvoiceLabel Field = "invoice-id-label"
	FieldInvoiceID    Field = "invoice-id"
	FieldIssueLabel   Field = "issue-date-label"
	FieldIssueDate    Field = "issue-date"
	FieldDueLabel     Field = "due-date-label"
	FieldDueDate      Field = "due-date"
	FieldClientLabel  Field = "client-label"
	FieldClient       Field = "client"
	FieldRangeLabel   Field = "date-range-label"
	FieldRange        Field = "date-range"
	FieldHeader       Field = "table-header"
	FieldRowType      Field = "row-type"
	FieldRowDesc      Field = "row-description"
	FieldRowQuantity  Field = "row-quantity"
	FieldRowUnitPrice Field = "row-unit-price"
	FieldRowAmount    Field = "row-amount"
	FieldAmountLabel  Field = "amount-due-label"
	FieldAmountDue    Field = "amount-due"
)

// Text is one run of text placed at an absolute position. X and Y are in
// millimetres from the top-left corner, Y being the baseline. A
// right-aligned run ends at X instead of starting there.
type Text struct {
	Field      Field
	X, Y       float64
	Size       float64
	Bold       bool
	AlignRight bool
	Value      string
}

// Start is where drawing begins for a run width millimetres wide.
func (t Text) Start(width float64) float64 {
	if t.AlignRight {
		return t.X - width
	}
	return t.X
}

// Rule is a straight line between two points.
type Rule struct {
	X1, Y1, X2, Y2 float64
}

// Layout is everything drawn on the single invoice page.
type Layout struct {
	Texts []Text
	Rules []Rule
}

// Lookup returns the first text run filling field.
func (l Layout) Lookup(field Field) (Text, bool) {
	for _, t := range l.Texts {
		if t.Field == field {
			return t, true
		}
	}
	return Text{}, false
}

// Meta carries the values stamped on an invoice at render time.
type Meta struct {
	Number   string
	IssuedAt time.Time
}

var (
	columns = [...]float64{20, 80, 140, 160, 180}
	headers = [...]string{"Item type", "Description", "Quantity", "Unit price", "Amount"}
)

const (
	marginLeft  = 20.0
	marginRight = 190.0
	valueX      = 80.0
	rightLabelX = 140.0
	rightValueX = 170.0
)

// Layout places d on the page. It never fails: missing values render as
// empty strings and an inverted range is left off the page.
func (r *Renderer) Layout(d domain.Draft, total decimal.Decimal, meta Meta) Layout {
	_ = d.Normalize()

	var l Layout
	text := func(f Field, x, y, size float64, bold bool, v string) {
		l.Texts = append(l.Texts, Text{Field: f, X: x, Y: y, Size: size, Bold: bold, Value: v})
	}

	text(FieldTitle, marginLeft, 40, 36, true, "INVOICE")

	text(FieldFromLabel, rightLabelX, 30, 10, false, "From")
	l.Texts = append(l.Texts, Text{Field: FieldBusiness, X: marginRight, Y: 30, Size: 12, Bold: true, AlignRight: true, Value: d.BusinessName})

	text(FieldInvoiceLabel, marginLeft, 80, 10, false, "Invoice ID")
	text(FieldIssueLabel, marginLeft, 95, 10, false, "Issue date")
	text(FieldDueLabel, marginLeft, 110, 10, false, "Due date")

	issued := domain.FormatDate(meta.IssuedAt)
	due := issued + " (upon receipt)"
	if !d.DueDate.IsZero() {
		due = domain.FormatDate(d.DueDate)
	}
	text(FieldInvoiceID, valueX, 80, 10, true, meta.Number)
	text(FieldIssueDate, valueX, 95, 10, true, issued)
	text(FieldDueDate, valueX, 110, 10, true, due)

	text(FieldClientLabel, rightLabelX, 80, 10, false, "Invoice for")
	text(FieldClient, rightValueX, 80, 10, true, d.ClientName)

	tableY := 135.0
	var dateRange string
	if d.HasRange() {
		weeks, _ := domain.InclusiveWeeks(d.StartDate, d.EndDate)
		dateRange = domain.FormatRange(d.StartDate, d.EndDate)
		text(FieldRangeLabel, marginLeft, 125, 10, false, "Date Range")
		text(FieldRange, valueX, 125, 10, true, dateRange+" ("+domain.PluralWeeks(weeks)+")")
		tableY = 150
	}

	l.Rules = append(l.Rules, Rule{X1: marginLeft, Y1: tableY, X2: marginRight, Y2: tableY})
	for i, h := range headers {
		text(FieldHeader, columns[i], tableY-5, 10, true, h)
	}

	description := d.Description
	if description == "" {
		description = dateRange
	}
	quantity, _ := domain.Quantity(d)

	rowY := tableY + 15
	text(FieldRowType, columns[0], rowY, 10, false, "Service")
	text(FieldRowDesc, columns[1], rowY, 10, false, description)
	text(FieldRowQuantity, columns[2], rowY, 10, false, quantity.String())
	text(FieldRowUnitPrice, columns[3], rowY, 10, false, domain.FormatMoney(d.HourlyRate))
	text(FieldRowAmount, columns[4], rowY, 10, false, domain.FormatMoney(total))

	l.Rules = append(l.Rules, Rule{X1: marginLeft, Y1: tableY + 25, X2: marginRight, Y2: tableY + 25})

	text(FieldAmountLabel, rightLabelX, tableY+45, 12, true, "Amount due")
	text(FieldAmountDue, columns[4], tableY+45, 12, true, domain.FormatMoney(total))

	return l
}
