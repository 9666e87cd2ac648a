package emi

import (
	"fmt"
	"time"

	"travel-webapp/errors"
)

const (
	MinTenure = 3
	MaxTenure = 16

	StatusPending = "pending"
	StatusPaid    = "paid"
)

// dueDateInterval is the fixed gap between installments. The schedule is
// not calendar-month aware: due dates do not land on the same day of the
// month across the tenure.
const dueDateInterval = 30 * 24 * time.Hour

// Installment is one scheduled payment. The sequence is created once and
// stays immutable; only the status (and the plan's derived fields) change.
type Installment struct {
	InstallmentNumber int       `json:"installmentNumber" bson:"installmentNumber"`
	Amount            int64     `json:"amount" bson:"amount"`
	DueDate           time.Time `json:"dueDate" bson:"dueDate"`
	Status            string    `json:"status" bson:"status"`
}

// Plan is the installment schedule embedded in a booking.
type Plan struct {
	IsEmiBooking  bool          `json:"isEmiBooking" bson:"isEmiBooking"`
	TotalTenure   int           `json:"totalTenure" bson:"totalTenure"`
	MonthlyAmount int64         `json:"monthlyAmount" bson:"monthlyAmount"`
	TotalAmount   int64         `json:"totalAmount" bson:"totalAmount"`
	PaidCount     int           `json:"paidCount" bson:"paidCount"`
	NextDueDate   *time.Time    `json:"nextDueDate,omitempty" bson:"nextDueDate,omitempty"`
	Installments  []Installment `json:"installments" bson:"installments"`
}

// BuildSchedule partitions totalAmount (whole rupees) into tenureMonths
// equal installments 30 days apart starting at anchor. The last installment
// absorbs the floor-division remainder so the amounts always sum to
// totalAmount exactly.
func BuildSchedule(totalAmount int64, tenureMonths int, anchor time.Time) (Plan, error) {
	return buildSchedule(totalAmount, 0, tenureMonths, anchor)
}

// BuildScheduleWithMonthly is BuildSchedule with a caller-chosen monthly
// amount; the final installment still absorbs the difference.
func BuildScheduleWithMonthly(totalAmount, monthlyAmount int64, tenureMonths int, anchor time.Time) (Plan, error) {
	if monthlyAmount <= 0 {
		return Plan{}, fmt.Errorf("monthly amount must be positive, got %v", monthlyAmount)
	}
	return buildSchedule(totalAmount, monthlyAmount, tenureMonths, anchor)
}

func buildSchedule(totalAmount, monthlyAmount int64, tenureMonths int, anchor time.Time) (Plan, error) {
	if tenureMonths < MinTenure || tenureMonths > MaxTenure {
		return Plan{}, errors.ErrInvalidTenure
	}
	if totalAmount <= 0 {
		return Plan{}, fmt.Errorf("total amount must be positive, got %v", totalAmount)
	}

	if monthlyAmount == 0 {
		monthlyAmount = totalAmount / int64(tenureMonths)
	}
	if monthlyAmount <= 0 {
		return Plan{}, fmt.Errorf("total amount %v is too small to split over %v months", totalAmount, tenureMonths)
	}

	// every installment must stay a positive amount, including the final
	// one after it absorbs the remainder
	lastAmount := totalAmount - monthlyAmount*int64(tenureMonths-1)
	if lastAmount <= 0 {
		return Plan{}, fmt.Errorf("monthly amount %v leaves no positive final installment for total %v over %v months", monthlyAmount, totalAmount, tenureMonths)
	}

	installments := make([]Installment, 0, tenureMonths)
	for i := 1; i <= tenureMonths; i++ {
		amount := monthlyAmount
		if i == tenureMonths {
			amount = lastAmount
		}
		installments = append(installments, Installment{
			InstallmentNumber: i,
			Amount:            amount,
			DueDate:           anchor.Add(time.Duration(i-1) * dueDateInterval),
			Status:            StatusPending,
		})
	}

	firstDue := installments[0].DueDate
	return Plan{
		IsEmiBooking:  true,
		TotalTenure:   tenureMonths,
		MonthlyAmount: monthlyAmount,
		TotalAmount:   totalAmount,
		PaidCount:     0,
		NextDueDate:   &firstDue,
		Installments:  installments,
	}, nil
}

// Advance marks one installment paid and returns the updated plan. The
// input plan is left untouched so the caller decides when to persist.
// Paying an already-paid installment is a no-op, not an error.
func Advance(plan Plan, installmentNumber int) (Plan, error) {
	pending := 0
	for i := range plan.Installments {
		if plan.Installments[i].Status != StatusPaid {
			pending++
		}
	}
	if pending == 0 {
		return Plan{}, errors.ErrAllInstallmentsPaid
	}

	updated := plan
	updated.Installments = make([]Installment, len(plan.Installments))
	copy(updated.Installments, plan.Installments)

	found := false
	for i := range updated.Installments {
		if updated.Installments[i].InstallmentNumber == installmentNumber {
			updated.Installments[i].Status = StatusPaid
			found = true
			break
		}
	}
	if !found {
		return Plan{}, errors.ErrInstallmentNotFound
	}

	updated.PaidCount = 0
	updated.NextDueDate = nil
	for i := range updated.Installments {
		if updated.Installments[i].Status == StatusPaid {
			updated.PaidCount++
		} else if updated.NextDueDate == nil {
			due := updated.Installments[i].DueDate
			updated.NextDueDate = &due
		}
	}

	return updated, nil
}
