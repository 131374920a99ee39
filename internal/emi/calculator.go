package emi

import (
	"math"
	"strconv"
	"strings"
)

// Input carries the parameters for an installment calculation. DownPayment
// is either an absolute amount ("15000") or a percent of the principal
// ("20%"). When AnnualRatePercent is zero the rate is resolved through the
// bank registry via BankID.
type Input struct {
	Principal         float64 `json:"principal"`
	TenureMonths      int     `json:"tenure_months"`
	DownPayment       string  `json:"down_payment"`
	AnnualRatePercent float64 `json:"annual_rate_percent,omitempty"`
	BankID            string  `json:"bank_id,omitempty"`
}

// Result is the full financial breakdown of an installment plan.
type Result struct {
	Principal          float64 `json:"principal"`
	TenureMonths       int     `json:"tenure_months"`
	DownPaymentAmount  float64 `json:"down_payment_amount"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	FinanceAmount      float64 `json:"finance_amount"`
	PaymentPerMonth    float64 `json:"payment_per_month"`
	TotalPayment       float64 `json:"total_payment"`
	TotalInterest      float64 `json:"total_interest"`
	AnnualRatePercent  float64 `json:"annual_rate_percent"`
	MonthlyRatePercent float64 `json:"monthly_rate_percent"`
	IsZeroInterest     bool    `json:"is_zero_interest"`
}

// Calculator computes installment breakdowns, resolving bank rates through
// the provider registry.
type Calculator struct {
	banks *Registry
}

// NewCalculator creates a Calculator backed by the given registry.
func NewCalculator(banks *Registry) *Calculator {
	return &Calculator{banks: banks}
}

// Calculate maps an Input to its full breakdown using the reducing-balance
// annuity formula. It never fails: out-of-range inputs are clamped, a zero
// tenure or fully covered principal yields a zero payment.
func (c *Calculator) Calculate(in Input) Result {
	principal := in.Principal
	if principal < 0 {
		principal = 0
	}
	tenure := in.TenureMonths
	if tenure < 0 {
		tenure = 0
	}

	rate := in.AnnualRatePercent
	if rate <= 0 && in.BankID != "" && c.banks != nil {
		if bank, err := c.banks.FindBank(in.BankID); err == nil {
			rate = bank.AnnualRatePercent
		}
	}
	if rate < 0 {
		rate = 0
	}

	downPayment := resolveDownPayment(in.DownPayment, principal)
	financeAmount := principal - downPayment

	var payment float64
	if financeAmount > 0 && tenure > 0 {
		if rate > 0 {
			monthlyRate := rate / 12 / 100
			factor := math.Pow(1+monthlyRate, float64(tenure))
			payment = financeAmount * monthlyRate * factor / (factor - 1)
		} else {
			payment = financeAmount / float64(tenure)
		}
	}
	payment = round2(payment)

	totalPayment := round2(payment * float64(tenure))
	totalInterest := round2(totalPayment - financeAmount)
	if totalInterest < 0 {
		totalInterest = 0
	}

	downPaymentPercent := 0.0
	if principal > 0 {
		downPaymentPercent = round2(downPayment / principal * 100)
	}

	return Result{
		Principal:          principal,
		TenureMonths:       tenure,
		DownPaymentAmount:  round2(downPayment),
		DownPaymentPercent: downPaymentPercent,
		FinanceAmount:      round2(financeAmount),
		PaymentPerMonth:    payment,
		TotalPayment:       totalPayment,
		TotalInterest:      totalInterest,
		AnnualRatePercent:  rate,
		MonthlyRatePercent: round2(rate / 12),
		IsZeroInterest:     rate == 0,
	}
}

// resolveDownPayment parses an absolute or percent down payment and clamps
// the result to [0, principal]. Unparseable values count as zero.
func resolveDownPayment(raw string, principal float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	var amount float64
	if strings.HasSuffix(raw, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return 0
		}
		amount = pct / 100 * principal
	} else {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0
		}
		amount = parsed
	}

	if amount < 0 {
		return 0
	}
	if amount > principal {
		return principal
	}
	return amount
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
