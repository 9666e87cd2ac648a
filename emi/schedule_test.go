package emi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-webapp/errors"
)

var anchor = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func TestBuildScheduleEvenSplit(t *testing.T) {
	plan, err := BuildSchedule(12000, 6, anchor)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), plan.MonthlyAmount)
	assert.Len(t, plan.Installments, 6)
	for _, inst := range plan.Installments {
		assert.Equal(t, int64(2000), inst.Amount)
		assert.Equal(t, StatusPending, inst.Status)
	}
	assert.Equal(t, int64(12000), sumAmounts(plan))
}

func TestBuildScheduleRemainderOnLast(t *testing.T) {
	plan, err := BuildSchedule(10000, 3, anchor)
	require.NoError(t, err)

	assert.Equal(t, int64(3333), plan.Installments[0].Amount)
	assert.Equal(t, int64(3333), plan.Installments[1].Amount)
	assert.Equal(t, int64(3334), plan.Installments[2].Amount)
	assert.Equal(t, int64(10000), sumAmounts(plan))
}

func TestBuildScheduleSumIsExactForAllTenures(t *testing.T) {
	// awkward amount that leaves a remainder for most tenures
	const total = int64(99999)
	for tenure := MinTenure; tenure <= MaxTenure; tenure++ {
		plan, err := BuildSchedule(total, tenure, anchor)
		require.NoError(t, err, "tenure %d", tenure)

		assert.Equal(t, total, sumAmounts(plan), "tenure %d", tenure)
		for i, inst := range plan.Installments {
			assert.Equal(t, i+1, inst.InstallmentNumber, "tenure %d", tenure)
			if i < tenure-1 {
				assert.Equal(t, total/int64(tenure), inst.Amount, "tenure %d", tenure)
			}
		}
	}
}

func TestBuildScheduleDueDates(t *testing.T) {
	plan, err := BuildSchedule(16000, 16, anchor)
	require.NoError(t, err)

	for i, inst := range plan.Installments {
		expected := anchor.Add(time.Duration(i) * 30 * 24 * time.Hour)
		assert.True(t, inst.DueDate.Equal(expected), "installment %d", i+1)
		if i > 0 {
			assert.True(t, inst.DueDate.After(plan.Installments[i-1].DueDate))
		}
	}

	require.NotNil(t, plan.NextDueDate)
	assert.True(t, plan.NextDueDate.Equal(plan.Installments[0].DueDate))
	assert.Equal(t, 0, plan.PaidCount)
	assert.True(t, plan.IsEmiBooking)
}

func TestBuildScheduleInvalidTenure(t *testing.T) {
	for _, tenure := range []int{-1, 0, 1, 2, 17, 100} {
		_, err := BuildSchedule(10000, tenure, anchor)
		assert.ErrorIs(t, err, errors.ErrInvalidTenure, "tenure %d", tenure)
	}
}

func TestBuildScheduleRejectsNonPositiveAmount(t *testing.T) {
	_, err := BuildSchedule(0, 6, anchor)
	assert.Error(t, err)

	_, err = BuildSchedule(-500, 6, anchor)
	assert.Error(t, err)
}

func TestBuildScheduleWithMonthlyOverride(t *testing.T) {
	plan, err := BuildScheduleWithMonthly(10000, 3000, 3, anchor)
	require.NoError(t, err)

	assert.Equal(t, int64(3000), plan.MonthlyAmount)
	assert.Equal(t, int64(3000), plan.Installments[0].Amount)
	assert.Equal(t, int64(3000), plan.Installments[1].Amount)
	assert.Equal(t, int64(4000), plan.Installments[2].Amount)
	assert.Equal(t, int64(10000), sumAmounts(plan))

	_, err = BuildScheduleWithMonthly(10000, 0, 3, anchor)
	assert.Error(t, err)
}

func TestBuildScheduleWithMonthlyRejectsOversizedOverride(t *testing.T) {
	// 2 x 6000 already exceeds the total, the final installment would be -2000
	_, err := BuildScheduleWithMonthly(10000, 6000, 3, anchor)
	assert.Error(t, err)

	// 2 x 5000 consumes the total exactly, the final installment would be 0
	_, err = BuildScheduleWithMonthly(10000, 5000, 3, anchor)
	assert.Error(t, err)

	// largest override that still leaves a positive final installment
	plan, err := BuildScheduleWithMonthly(10000, 4999, 3, anchor)
	require.NoError(t, err)
	assert.Equal(t, int64(2), plan.Installments[2].Amount)
	assert.Equal(t, int64(10000), sumAmounts(plan))
}

func TestBuildScheduleRejectsAmountSmallerThanTenure(t *testing.T) {
	// floor(2/3) == 0, no positive monthly amount exists
	_, err := BuildSchedule(2, 3, anchor)
	assert.Error(t, err)

	plan, err := BuildSchedule(3, 3, anchor)
	require.NoError(t, err)
	for _, inst := range plan.Installments {
		assert.Equal(t, int64(1), inst.Amount)
	}
}

func TestAdvanceMarksPaidAndTracksNextDue(t *testing.T) {
	plan, err := BuildSchedule(12000, 4, anchor)
	require.NoError(t, err)

	updated, err := Advance(plan, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, updated.PaidCount)
	assert.Equal(t, StatusPaid, updated.Installments[0].Status)
	require.NotNil(t, updated.NextDueDate)
	assert.True(t, updated.NextDueDate.Equal(updated.Installments[1].DueDate))

	// input plan stays untouched so the caller controls persistence
	assert.Equal(t, 0, plan.PaidCount)
	assert.Equal(t, StatusPending, plan.Installments[0].Status)
}

func TestAdvanceOutOfOrderNextDue(t *testing.T) {
	plan, err := BuildSchedule(12000, 4, anchor)
	require.NoError(t, err)

	updated, err := Advance(plan, 2)
	require.NoError(t, err)

	// earliest still-pending installment is #1
	require.NotNil(t, updated.NextDueDate)
	assert.True(t, updated.NextDueDate.Equal(updated.Installments[0].DueDate))
}

func TestAdvanceIsIdempotent(t *testing.T) {
	plan, err := BuildSchedule(12000, 4, anchor)
	require.NoError(t, err)

	once, err := Advance(plan, 2)
	require.NoError(t, err)
	twice, err := Advance(once, 2)
	require.NoError(t, err)

	assert.Equal(t, once.PaidCount, twice.PaidCount)
	assert.Equal(t, once.Installments, twice.Installments)
}

func TestAdvanceInstallmentNotFound(t *testing.T) {
	plan, err := BuildSchedule(12000, 4, anchor)
	require.NoError(t, err)

	_, err = Advance(plan, 5)
	assert.ErrorIs(t, err, errors.ErrInstallmentNotFound)

	_, err = Advance(plan, 0)
	assert.ErrorIs(t, err, errors.ErrInstallmentNotFound)
}

func TestAdvanceAllInstallmentsPaid(t *testing.T) {
	plan, err := BuildSchedule(9000, 3, anchor)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		plan, err = Advance(plan, i)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, plan.PaidCount)
	assert.Nil(t, plan.NextDueDate)

	_, err = Advance(plan, 1)
	assert.ErrorIs(t, err, errors.ErrAllInstallmentsPaid)
}

func sumAmounts(plan Plan) int64 {
	var sum int64
	for _, inst := range plan.Installments {
		sum += inst.Amount
	}
	return sum
}
