package calculator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fitqa/revcheck/internal/browser"
	"github.com/fitqa/revcheck/internal/config"
	"github.com/fitqa/revcheck/internal/locator"
	"github.com/fitqa/revcheck/internal/model"
)

// Calculator runs the check scenarios against one browser session.
type Calculator struct {
	session *browser.Session
	loc     locator.Provider
	cfg     *config.Config
	logger  *slog.Logger
}

// New builds a Calculator. The session must already be started; the
// Calculator never closes it; ownership stays with the caller so teardown
// happens on every exit path.
func New(session *browser.Session, cfg *config.Config, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		session: session,
		loc:     locator.New(),
		cfg:     cfg,
		logger:  logger,
	}
}

// Open navigates to the configured page and reveals the Revenue Calculator
// widget via its navigation entry. Both scenarios require this first.
func (c *Calculator) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.session.Open(c.cfg.URL); err != nil {
		return err
	}

	nav, err := c.session.WaitClickable(c.loc.RevenueCalculatorNav())
	if err != nil {
		return err
	}
	if err := nav.Click(); err != nil {
		return fmt.Errorf("opening revenue calculator: %w", err)
	}
	c.logger.Debug("revenue calculator opened", "url", c.cfg.URL)
	return nil
}

// RunSlider executes the slider scenario: position the slider to the
// configured target, then set and verify the numeric input. Returns the
// slider's final reported value and the textbox's verified content.
func (c *Calculator) RunSlider(ctx context.Context) (sliderValue int, textboxValue string, err error) {
	if err := ctx.Err(); err != nil {
		return 0, "", err
	}

	handle, err := c.session.WaitClickable(c.loc.SliderHandle())
	if err != nil {
		return 0, "", err
	}
	track, err := c.session.Find(c.loc.SliderTrack())
	if err != nil {
		return 0, "", err
	}

	rng := model.SliderRange{
		Min:    c.cfg.SliderMin,
		Max:    c.cfg.SliderMax,
		Target: c.cfg.SliderTarget,
	}
	slider := NewSlider(c.session, handle, track, rng, c.logger)
	sliderValue, err = slider.Position()
	if err != nil {
		return 0, "", err
	}
	c.logger.Info("slider positioned", "value", sliderValue)

	if err := ctx.Err(); err != nil {
		return sliderValue, "", err
	}

	input, err := c.session.Find(c.loc.PatientCountInput())
	if err != nil {
		return sliderValue, "", err
	}
	field := NewValueField(input)
	if err := field.SetExact(c.cfg.TextboxTarget); err != nil {
		return sliderValue, "", err
	}
	if err := field.AssertValue(c.cfg.TextboxTarget); err != nil {
		return sliderValue, "", err
	}
	c.logger.Info("textbox verified", "value", c.cfg.TextboxTarget)

	return sliderValue, c.cfg.TextboxTarget, nil
}

// RunReimbursement executes the reimbursement scenario: select the
// configured codes, collect their amounts, and validate the monthly total.
// The collected amounts and the totals comparison are returned even when
// validation fails, so reports can show what was scraped.
func (c *Calculator) RunReimbursement(ctx context.Context) ([]model.Reimbursement, *model.Totals, error) {
	collector := NewCollector(c.session, c.loc, c.logger)
	collected, err := collector.Collect(ctx, c.cfg.Codes)
	if err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return collected, nil, err
	}

	validator := NewValidator(c.session, c.loc, c.logger)
	totals, err := validator.Totals(collected)
	if err != nil {
		return collected, nil, err
	}
	if err := validator.Validate(totals); err != nil {
		return collected, totals, err
	}

	c.logger.Info("reimbursement total validated",
		"computed", totals.Computed,
		"displayed", totals.Displayed,
	)
	return collected, totals, nil
}
