package entities

import (
	"errors"
	"time"
)

// OrderStatus is the closed set of order lifecycle states. Order lines carry
// the same states, with rejection possible per line independently of the order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusApproved  OrderStatus = "approved"
	StatusRejected  OrderStatus = "rejected"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// CanCancel reports whether a caller-triggered cancellation is still legal.
// Only pending orders can be cancelled; every other state is terminal.
func (s OrderStatus) CanCancel() bool {
	return s == StatusPending
}

type PaymentMethod string

const (
	PaymentCOD        PaymentMethod = "cod"
	PaymentMomo       PaymentMethod = "momo"
	PaymentVNPay      PaymentMethod = "vnpay"
	PaymentCreditCard PaymentMethod = "credit_card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentMomo, PaymentVNPay, PaymentCreditCard:
		return true
	}
	return false
}

// RefundMethod is the refund wording shown to the customer on cancellation.
func (m PaymentMethod) RefundMethod() string {
	if m == PaymentCreditCard {
		return "Credit Card"
	}
	return "Bank Transfer"
}

// Order totals are integer VND amounts. VAT applies to products only,
// shipping is included in both totals untaxed.
type Order struct {
	OrderID        int64
	DeliveryID     int64
	TrackingCode   string
	TotalBeforeVAT int64
	TotalAfterVAT  int64
	VAT            int64
	Status         OrderStatus
	PaymentMethod  PaymentMethod
	CreatedAt      time.Time
}

// OrderLine is immutable after creation except for its status.
// DeliveryTime carries one of the rush time slots and is only meaningful
// when RushOrder is true; Instructions holds rush handling instructions or,
// for regular lines, the line's own free-text note.
type OrderLine struct {
	OrderLineID  int64
	OrderID      int64
	ProductID    int64
	Title        string
	Status       OrderStatus
	Quantity     int
	UnitPrice    int64
	TotalFee     int64
	RushOrder    bool
	DeliveryTime string
	Instructions string
}

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidTrackingCode = errors.New("invalid tracking code")
	ErrOrderNotCancellable = errors.New("order cannot be cancelled")
)
