package calculator

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/fitqa/revcheck/internal/browser"
	"github.com/fitqa/revcheck/internal/locator"
	"github.com/fitqa/revcheck/internal/model"
	"github.com/fitqa/revcheck/internal/money"
)

// Validator computes the expected monthly reimbursement from the collected
// amounts and compares it against the page's displayed aggregate.
type Validator struct {
	session *browser.Session
	loc     locator.Provider
	logger  *slog.Logger
}

// NewValidator builds a Validator over the session.
func NewValidator(session *browser.Session, loc locator.Provider, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{session: session, loc: loc, logger: logger}
}

// Totals scrapes the displayed aggregate and the patient count, then builds
// both sides of the comparison from the collected amounts.
func (v *Validator) Totals(collected []model.Reimbursement) (*model.Totals, error) {
	aggElem, err := v.session.WaitPresent(v.loc.MonthlyTotal())
	if err != nil {
		return nil, err
	}
	aggText, err := aggElem.Text()
	if err != nil {
		return nil, fmt.Errorf("reading aggregate total: %w", err)
	}
	displayed, err := money.ParseInt(aggText)
	if err != nil {
		return nil, fmt.Errorf("aggregate total: %w", err)
	}

	countField, err := v.session.Find(v.loc.PatientCountInput())
	if err != nil {
		return nil, err
	}
	countText, err := countField.GetAttribute("value")
	if err != nil {
		return nil, fmt.Errorf("reading patient count: %w", err)
	}
	count, err := strconv.Atoi(countText)
	if err != nil {
		return nil, fmt.Errorf("patient count %q is not an integer: %w", countText, err)
	}

	sum := model.RecurringSum(collected)
	totals := &model.Totals{
		RecurringSum: sum,
		PatientCount: count,
		Computed:     sum * float64(count),
		Displayed:    float64(displayed),
	}

	v.logger.Debug("reimbursement totals",
		"recurringSum", totals.RecurringSum,
		"patientCount", totals.PatientCount,
		"computed", totals.Computed,
		"displayed", totals.Displayed,
	)
	return totals, nil
}

// Validate fails unless the computed total equals the displayed aggregate.
// Both values appear in the failure so a mismatch is diagnosable from the
// error alone.
func (v *Validator) Validate(totals *model.Totals) error {
	if !totals.Matches() {
		return fmt.Errorf("%w: computed %.2f (%.2f × %d patients), displayed %.2f",
			ErrReimbursementMismatch,
			totals.Computed, totals.RecurringSum, totals.PatientCount, totals.Displayed)
	}
	return nil
}
