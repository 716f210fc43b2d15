package model

import (
	"errors"
	"testing"
)

var errTest = errors.New("boom")

func TestRecurringSum(t *testing.T) {
	t.Parallel()

	t.Run("excludes one-time amounts", func(t *testing.T) {
		t.Parallel()
		list := []Reimbursement{
			{Code: "CPT-99091", Amount: 10.0, Recurring: true},
			{Code: "CPT-99453", Amount: 100.0, Recurring: false},
			{Code: "CPT-99454", Amount: 20.0, Recurring: true},
			{Code: "CPT-99474", Amount: 5.0, Recurring: true},
		}
		if got := RecurringSum(list); got != 35.0 {
			t.Errorf("RecurringSum() = %v, want 35.0", got)
		}
	})

	t.Run("empty list sums to zero", func(t *testing.T) {
		t.Parallel()
		if got := RecurringSum(nil); got != 0 {
			t.Errorf("RecurringSum(nil) = %v, want 0", got)
		}
	})
}

func TestTotalsMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		totals Totals
		want   bool
	}{
		{
			name:   "exact integer match",
			totals: Totals{Computed: 1750, Displayed: 1750},
			want:   true,
		},
		{
			name:   "mismatch",
			totals: Totals{Computed: 1750, Displayed: 1700},
			want:   false,
		},
		{
			// 0.1+0.2 style float residue must not fail the comparison
			// once both sides round to the same cent.
			name:   "float residue within a cent",
			totals: Totals{Computed: 0.30000000000000004 * 100, Displayed: 30},
			want:   true,
		},
		{
			name:   "one cent apart",
			totals: Totals{Computed: 1750.01, Displayed: 1750.00},
			want:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.totals.Matches(); got != tt.want {
				t.Errorf("Matches() = %v, want %v (computed=%v displayed=%v)",
					got, tt.want, tt.totals.Computed, tt.totals.Displayed)
			}
		})
	}
}

func TestRunReport(t *testing.T) {
	t.Parallel()

	t.Run("passed when all scenarios pass", func(t *testing.T) {
		t.Parallel()
		var r RunReport
		r.AddResult("slider", nil)
		r.AddResult("reimburse", nil)
		if !r.Passed() {
			t.Error("expected run to pass")
		}
	})

	t.Run("failed when any scenario fails", func(t *testing.T) {
		t.Parallel()
		var r RunReport
		r.AddResult("slider", nil)
		r.AddResult("reimburse", errTest)
		if r.Passed() {
			t.Error("expected run to fail")
		}
		if got := r.Scenarios[1].Error; got != "boom" {
			t.Errorf("expected failure message recorded, got %q", got)
		}
	})
}
