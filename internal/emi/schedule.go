package emi

// ScheduleRow is one month of a reducing-balance amortization schedule.
type ScheduleRow struct {
	Month              int     `json:"month"`
	Payment            float64 `json:"payment"`
	Interest           float64 `json:"interest"`
	PrincipalComponent float64 `json:"principal_component"`
	RemainingPrincipal float64 `json:"remaining_principal"`
}

// Schedule expands a calculation result into its month-by-month amortization
// rows. The final row absorbs rounding drift so the balance lands on zero.
// A zero payment yields an empty schedule.
func Schedule(res Result) []ScheduleRow {
	if res.TenureMonths <= 0 || res.PaymentPerMonth <= 0 {
		return nil
	}

	monthlyRate := res.AnnualRatePercent / 12 / 100
	remaining := res.FinanceAmount
	rows := make([]ScheduleRow, 0, res.TenureMonths)

	for m := 1; m <= res.TenureMonths; m++ {
		interest := round2(remaining * monthlyRate)
		principalComponent := round2(res.PaymentPerMonth - interest)
		payment := res.PaymentPerMonth

		if m == res.TenureMonths {
			principalComponent = round2(remaining)
			payment = round2(principalComponent + interest)
		}

		remaining = round2(remaining - principalComponent)
		if remaining < 0 {
			remaining = 0
		}

		rows = append(rows, ScheduleRow{
			Month:              m,
			Payment:            payment,
			Interest:           interest,
			PrincipalComponent: principalComponent,
			RemainingPrincipal: remaining,
		})
	}
	return rows
}
