package domain

import "time"

// CalculateFine computes the overdue fine for a loan record under the
// given tier policy. A loan on or before its due date owes nothing.
// For a closed loan the return date fixes the fine; an open loan accrues
// against asOf, so the result is non-decreasing as asOf advances.
//
// Pure function: per-tier rates are swapped by handing in a different
// policy, never by touching this code.
func CalculateFine(rec *LoanRecord, asOf time.Time, policy MembershipPolicy) float64 {
	if !rec.Overdue(asOf) {
		return 0
	}
	return float64(rec.OverdueDays(asOf)) * policy.FinePerDay
}
