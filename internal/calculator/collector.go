package calculator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fitqa/revcheck/internal/browser"
	"github.com/fitqa/revcheck/internal/locator"
	"github.com/fitqa/revcheck/internal/model"
	"github.com/fitqa/revcheck/internal/money"
)

// Collector selects the CPT-code checkboxes and scrapes their reimbursement
// amounts.
type Collector struct {
	session *browser.Session
	loc     locator.Provider
	logger  *slog.Logger
}

// NewCollector builds a Collector over the session.
func NewCollector(session *browser.Session, loc locator.Provider, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{session: session, loc: loc, logger: logger}
}

// Collect processes the codes in list order: click the checkbox, scrape the
// adjacent amount, and classify the code as recurring unless its row carries
// a "One Time" chip. The context is checked between codes; the individual
// WebDriver calls are not cancellable.
func (c *Collector) Collect(ctx context.Context, codes []string) ([]model.Reimbursement, error) {
	collected := make([]model.Reimbursement, 0, len(codes))
	for _, code := range codes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := c.collectOne(code)
		if err != nil {
			return nil, fmt.Errorf("code %s: %w", code, err)
		}
		c.logger.Debug("collected reimbursement",
			"code", r.Code,
			"amount", r.Amount,
			"recurring", r.Recurring,
		)
		collected = append(collected, r)
	}
	return collected, nil
}

// collectOne handles a single code. Clicking toggles the checkbox; the
// collector assumes an unchecked starting state and does not verify the
// post-click state, matching the widget's observed behavior.
func (c *Collector) collectOne(code string) (model.Reimbursement, error) {
	var r model.Reimbursement

	checkbox, err := c.session.WaitClickable(c.loc.Checkbox(code))
	if err != nil {
		return r, err
	}

	// The row container, two structural levels up, is only used to bring
	// the row into the viewport; all interaction targets the checkbox.
	container, err := c.session.WaitClickable(c.loc.CheckboxContainer(code))
	if err != nil {
		return r, err
	}
	if err := c.session.ScrollIntoView(container); err != nil {
		return r, err
	}

	if err := checkbox.Click(); err != nil {
		return r, fmt.Errorf("clicking checkbox: %w", err)
	}

	amountElem, err := c.session.WaitPresent(c.loc.Amount(code))
	if err != nil {
		return r, err
	}
	text, err := amountElem.Text()
	if err != nil {
		return r, fmt.Errorf("reading amount: %w", err)
	}
	amount, err := money.Parse(text)
	if err != nil {
		return r, err
	}

	// The chip either is in the DOM or it isn't; probe without waiting so
	// the common recurring case does not pay a timeout.
	oneTime, err := c.session.Exists(c.loc.OneTimeMarker(code))
	if err != nil {
		return r, err
	}

	return model.Reimbursement{Code: code, Amount: amount, Recurring: !oneTime}, nil
}
