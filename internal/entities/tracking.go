package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"time"
)

// Tracking codes look like AIMS-00123-ABC: literal prefix, exactly five
// digits carrying the order id, then exactly three uppercase letters.
// Matching is case-sensitive; callers upper-case input before submission.
var trackingCodeRe = regexp.MustCompile(`^AIMS-(\d{5})-[A-Z]{3}$`)

// ParseTrackingCode extracts the order id from a tracking code.
// Any deviation from the format yields ErrInvalidTrackingCode.
func ParseTrackingCode(code string) (int64, error) {
	m := trackingCodeRe.FindStringSubmatch(code)
	if m == nil {
		return 0, ErrInvalidTrackingCode
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidTrackingCode
	}
	return id, nil
}

// NewTrackingCode builds the public tracking code for a freshly created
// order. The letter segment is random and carries no information.
func NewTrackingCode(orderID int64) string {
	letters := make([]byte, 3)
	for i := range letters {
		letters[i] = byte('A' + rand.Intn(26))
	}
	return fmt.Sprintf("AIMS-%05d-%s", orderID, letters)
}

// TrackingEvent is one entry of the order's status timeline.
type TrackingEvent struct {
	EventID     int64
	Status      OrderStatus
	Description string
	Location    string
	Timestamp   time.Time
}

// TrackedItem is the per-line view exposed on the tracking snapshot.
type TrackedItem struct {
	ProductID int64
	Title     string
	Quantity  int
	Price     int64
	RushOrder bool
}

// OrderTrackingInfo is the read-model snapshot returned to customers.
// It is regenerated from storage on each request, never persisted as is.
type OrderTrackingInfo struct {
	OrderID           int64
	TrackingCode      string
	Status            OrderStatus
	OrderDate         time.Time
	EstimatedDelivery time.Time
	CanCancel         bool
	TotalAmount       int64
	PaymentMethod     PaymentMethod
	DeliveryAddress   string
	Items             []TrackedItem
	Events            []TrackingEvent
}

// CancellationResult is the uniform outcome of a cancellation attempt.
// Business-rule rejections land here with Success=false, they are not errors.
type CancellationResult struct {
	Success       bool
	Message       string
	RefundAmount  int64
	RefundMethod  string
	UpdatedStatus OrderStatus
}

func (o *OrderTrackingInfo) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *OrderTrackingInfo) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(o)
}

func init() {
	gob.Register(OrderTrackingInfo{})
	gob.Register(TrackingEvent{})
	gob.Register(TrackedItem{})
}
