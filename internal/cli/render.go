package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/angelofallars/hyperinvoice/internal/render"
	"github.com/angelofallars/hyperinvoice/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

var boxStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// renderFlags maps each flag to the draft file field it overrides.
var renderFlags = []struct {
	name  string
	usage string
	field func(*draftFile) *string
}{
	{"client", "client name", func(f *draftFile) *string { return &f.Client }},
	{"business", "your business or legal name", func(f *draftFile) *string { return &f.Business }},
	{"description", "service description", func(f *draftFile) *string { return &f.Description }},
	{"rate", "hourly rate", func(f *draftFile) *string { return &f.HourlyRate }},
	{"hours", "hours worked", func(f *draftFile) *string { return &f.Hours }},
	{"mode", "hours mode: per-week or total", func(f *draftFile) *string { return &f.HoursMode }},
	{"start", "start of the billed range (YYYY-MM-DD)", func(f *draftFile) *string { return &f.StartDate }},
	{"end", "end of the billed range, inclusive (YYYY-MM-DD)", func(f *draftFile) *string { return &f.EndDate }},
	{"due", "due date (YYYY-MM-DD); defaults to upon receipt", func(f *draftFile) *string { return &f.DueDate }},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an invoice PDF from flags or a YAML draft",
	Example: `  hyperinvoice render --client "Acme" --business "Jane Doe" --rate 50 --hours 10 --start 2024-01-01 --end 2024-01-14
  hyperinvoice render --draft draft.yaml --out acme.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		file := &draftFile{}
		if path, _ := cmd.Flags().GetString("draft"); path != "" {
			if file, err = readDraftFile(path); err != nil {
				return err
			}
		}
		for _, f := range renderFlags {
			if cmd.Flags().Changed(f.name) {
				*f.field(file), _ = cmd.Flags().GetString(f.name)
			}
		}

		draft, err := file.draft()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := draft.Normalize(); errors.Is(err, domain.ErrInvalidRange) {
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("warning: end date is before start date, ignoring the range"))
		}

		svc := service.NewInvoice(cfg.Logger(cmd.ErrOrStderr()), render.New())
		doc, err := svc.Create(cmd.Context(), draft)
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("out")
		if err := os.WriteFile(path, doc.PDF, 0o644); err != nil {
			return fmt.Errorf("writing invoice: %w", err)
		}

		amount, _ := doc.Layout.Lookup(render.FieldAmountDue)
		row := func(label, value string) string {
			return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
		}
		summary := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Invoice "+doc.Number),
			row("Client", draft.ClientName),
			row("From", draft.BusinessName),
			row("Amount due", amount.Value),
			row("Written to", path),
		)
		fmt.Fprintln(out, boxStyle.Render(summary))
		return nil
	},
}

func init() {
	renderCmd.Flags().String("draft", "", "YAML file with the draft fields")
	renderCmd.Flags().StringP("out", "o", render.Filename, "where to write the PDF")
	for _, f := range renderFlags {
		renderCmd.Flags().String(f.name, "", f.usage)
	}
	RootCmd.AddCommand(renderCmd)
}
