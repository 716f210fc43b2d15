package model

// Reimbursement is one scraped per-patient reimbursement amount, keyed by the
// CPT code whose checkbox exposed it.
type Reimbursement struct {
	// Code is the CPT code identifier, e.g. "CPT-99454".
	Code string `json:"code"`

	// Amount is the scraped per-patient dollar amount.
	Amount float64 `json:"amount"`

	// Recurring is false when the code carried a "One Time" chip.
	// One-time amounts are excluded from the monthly total.
	Recurring bool `json:"recurring"`
}

// RecurringSum returns the sum of the recurring amounts in the list.
// One-time amounts do not contribute.
func RecurringSum(list []Reimbursement) float64 {
	var sum float64
	for _, r := range list {
		if r.Recurring {
			sum += r.Amount
		}
	}
	return sum
}

// Totals holds both sides of the final reimbursement comparison.
type Totals struct {
	// RecurringSum is the sum of recurring per-patient amounts.
	RecurringSum float64 `json:"recurring_sum"`

	// PatientCount is the value read from the patient-count input.
	PatientCount int `json:"patient_count"`

	// Computed is RecurringSum multiplied by PatientCount.
	Computed float64 `json:"computed"`

	// Displayed is the aggregate monthly reimbursement scraped from the page.
	Displayed float64 `json:"displayed"`
}

// Matches reports whether the computed total equals the displayed aggregate.
// Both sides are compared in whole cents: the per-code amounts are scraped
// floating-point values and a naive == against the integer aggregate would
// be at the mercy of float summation order.
func (t Totals) Matches() bool {
	return toCents(t.Computed) == toCents(t.Displayed)
}

// toCents converts a dollar amount to an integer number of cents,
// rounding half away from zero.
func toCents(amount float64) int64 {
	if amount < 0 {
		return int64(amount*100 - 0.5)
	}
	return int64(amount*100 + 0.5)
}
