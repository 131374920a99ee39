package emi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_BalanceReachesZero(t *testing.T) {
	calc := newTestCalculator()
	result := calc.Calculate(Input{
		Principal:         100000,
		TenureMonths:      12,
		AnnualRatePercent: 12,
	})

	rows := Schedule(result)
	require.Len(t, rows, 12)

	assert.Equal(t, 1, rows[0].Month)
	assert.InDelta(t, 1000.0, rows[0].Interest, 0.01)
	assert.Equal(t, 0.0, rows[len(rows)-1].RemainingPrincipal)

	// Interest shrinks month over month on a reducing balance.
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i].Interest, rows[i-1].Interest)
	}

	// Principal components sum back to the financed amount.
	var principalSum float64
	for _, row := range rows {
		principalSum += row.PrincipalComponent
	}
	assert.InDelta(t, result.FinanceAmount, principalSum, 0.05)
}

func TestSchedule_ZeroInterest(t *testing.T) {
	calc := newTestCalculator()
	result := calc.Calculate(Input{
		Principal:    60000,
		TenureMonths: 6,
	})

	rows := Schedule(result)
	require.Len(t, rows, 6)
	for _, row := range rows {
		assert.Equal(t, 0.0, row.Interest)
		assert.Equal(t, 10000.0, row.PrincipalComponent)
	}
	assert.Equal(t, 0.0, rows[5].RemainingPrincipal)
}

func TestSchedule_EmptyOnZeroPayment(t *testing.T) {
	assert.Nil(t, Schedule(Result{TenureMonths: 0}))
	assert.Nil(t, Schedule(Result{TenureMonths: 12, PaymentPerMonth: 0}))
}
