// Package paystore holds transient payment-session records keyed by
// session id. It replaces the previous process-global payment map with an
// explicit store handed to the handlers, so the backing lifecycle (shared
// Redis or a per-process cache) is a deployment choice.
package paystore

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("payment session not found")

const (
	SessionInitiated = "initiated"
	SessionCaptured  = "captured"
)

// PaymentRecord is one transient payment session: which installment of
// which booking is being paid and for how much.
type PaymentRecord struct {
	Id                string    `json:"id"`
	BookingId         string    `json:"bookingId"`
	InstallmentNumber int       `json:"installmentNumber"`
	Amount            int64     `json:"amount"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Store interface {
	Put(ctx context.Context, record PaymentRecord) error
	Get(ctx context.Context, id string) (PaymentRecord, error)
	Delete(ctx context.Context, id string) error
}
