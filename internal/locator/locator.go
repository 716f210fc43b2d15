package locator

import "fmt"

// Queries for the Revenue Calculator page. All locators are XPath because the
// page offers no stable IDs; they lean on MUI class fragments and literal
// label text, which is as stable as this page gets.
const (
	// revenueCalculatorNav is the navigation entry that reveals the
	// calculator widget.
	revenueCalculatorNav = "//div[text()='Revenue Calculator']"

	// sliderHandle is the range input that both reports aria-valuenow and
	// receives drag gestures and arrow-key events.
	sliderHandle = "//input[@type='range']"

	// sliderTrack is the rail the handle moves along; its geometry anchors
	// the pixel-offset computation.
	sliderTrack = "//span[contains(@class,'MuiSlider-rail')]"

	// patientCountInput is the numeric input holding the patient count.
	patientCountInput = "//input[@type='number' and contains(@class,'MuiInputBase-input')]"

	// monthlyTotal is the displayed aggregate recurring reimbursement.
	monthlyTotal = "//p[contains(text(),'Total Recurring Reimbursement for all Patients Per Month')]/following-sibling::p[1]"

	// checkboxTemplate resolves the checkbox control for one CPT code; the
	// single %s is the code's literal label text.
	checkboxTemplate = "//p[text()='%s']/following-sibling::label[contains(@class,'MuiFormControlLabel-root')]//span[contains(@class,'MuiButtonBase-root')]"

	// containerSuffix climbs two structural levels from the checkbox to the
	// row container, used only for scroll-into-view.
	containerSuffix = "/parent::*/parent::*"

	// amountSuffix selects the reimbursement amount rendered next to the
	// checkbox.
	amountSuffix = "/following-sibling::span"

	// oneTimeSuffix probes the row container for the "One Time" chip that
	// marks a non-recurring code.
	oneTimeSuffix = "//div[contains(@class,'MuiChip-root')]//span[text()='One Time']"
)

// Provider builds the structural queries for the Revenue Calculator page.
//
// Design decision: The provider is a value type with no state. It exists so
// that the scenarios depend on named operations ("the checkbox for this
// code") rather than raw XPath strings, and so tests can pin the exact
// queries we emit.
type Provider struct{}

// New returns a locator provider for the Revenue Calculator page.
func New() Provider {
	return Provider{}
}

// RevenueCalculatorNav locates the navigation entry for the calculator.
func (Provider) RevenueCalculatorNav() string {
	return revenueCalculatorNav
}

// SliderHandle locates the slider's range input.
func (Provider) SliderHandle() string {
	return sliderHandle
}

// SliderTrack locates the slider rail.
func (Provider) SliderTrack() string {
	return sliderTrack
}

// PatientCountInput locates the numeric patient-count field.
func (Provider) PatientCountInput() string {
	return patientCountInput
}

// MonthlyTotal locates the displayed aggregate monthly reimbursement.
func (Provider) MonthlyTotal() string {
	return monthlyTotal
}

// Checkbox locates the checkbox control for the given CPT code.
func (Provider) Checkbox(code string) string {
	return fmt.Sprintf(checkboxTemplate, code)
}

// CheckboxContainer locates the row container two structural levels above
// the code's checkbox.
func (p Provider) CheckboxContainer(code string) string {
	return p.Checkbox(code) + containerSuffix
}

// Amount locates the reimbursement amount adjacent to the code's checkbox.
func (p Provider) Amount(code string) string {
	return p.Checkbox(code) + amountSuffix
}

// OneTimeMarker locates the "One Time" chip within the code's row container.
// Absence of a match means the code's amount recurs monthly.
func (p Provider) OneTimeMarker(code string) string {
	return p.CheckboxContainer(code) + oneTimeSuffix
}
