package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// draftFile is the YAML form of a draft accepted by `render --draft`.
type draftFile struct {
	Client      string `yaml:"client"`
	Business    string `yaml:"business"`
	Description string `yaml:"description"`
	HourlyRate  string `yaml:"hourly_rate"`
	Hours       string `yaml:"hours"`
	HoursMode   string `yaml:"hours_mode"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	DueDate     string `yaml:"due_date"`
}

func readDraftFile(path string) (*draftFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading draft: %w", err)
	}

	var f draftFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing draft %s: %w", path, err)
	}
	return &f, nil
}

// draft converts the file into a domain draft. Unlike the browser form the
// command line rejects bad input instead of zeroing it.
func (f *draftFile) draft() (domain.Draft, error) {
	var errs []error

	amount := func(name, s string) decimal.Decimal {
		s = strings.TrimSpace(s)
		if s == "" {
			return decimal.Zero
		}
		d, err := domain.ParseAmount(s)
		switch {
		case errors.Is(err, domain.ErrNegativeAmount), errors.Is(err, domain.ErrAmountTooLarge):
			errs = append(errs, fmt.Errorf("%s %w", name, err))
		case err != nil:
			errs = append(errs, fmt.Errorf("invalid %s %q", name, s))
		}
		return d
	}

	date := func(name, s string) time.Time {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}
		}
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s %q, want YYYY-MM-DD", name, s))
		}
		return t
	}

	mode := domain.HoursPerWeek
	switch strings.TrimSpace(f.HoursMode) {
	case "", string(domain.HoursPerWeek):
	case string(domain.HoursTotal):
		mode = domain.HoursTotal
	default:
		errs = append(errs, fmt.Errorf("invalid hours mode %q, want %s or %s", f.HoursMode, domain.HoursPerWeek, domain.HoursTotal))
	}

	d := domain.Draft{
		ClientName:   strings.TrimSpace(f.Client),
		BusinessName: strings.TrimSpace(f.Business),
		Description:  strings.TrimSpace(f.Description),
		HourlyRate:   amount("hourly rate", f.HourlyRate),
		Hours:        amount("hours", f.Hours),
		HoursMode:    mode,
		StartDate:    date("start date", f.StartDate),
		EndDate:      date("end date", f.EndDate),
		DueDate:      date("due date", f.DueDate),
	}

	return d, errors.Join(errs...)
}
