package repo

import (
	"database/sql"
	"time"

	"github.com/aims-store/order-service/internal/entities"
)

type Delivery struct {
	DeliveryID      int64          `db:"delivery_id"`
	Name            string         `db:"name"`
	Phone           string         `db:"phone"`
	Email           string         `db:"email"`
	Address         string         `db:"address"`
	Province        string         `db:"province"`
	ShippingMessage sql.NullString `db:"shipping_message"`
	ShippingFee     int64          `db:"shipping_fee"`
}

type Order struct {
	OrderID        int64          `db:"order_id"`
	DeliveryID     int64          `db:"delivery_id"`
	TrackingCode   sql.NullString `db:"tracking_code"`
	TotalBeforeVAT int64          `db:"total_before_vat"`
	TotalAfterVAT  int64          `db:"total_after_vat"`
	VAT            int64          `db:"vat"`
	Status         string         `db:"status"`
	PaymentMethod  string         `db:"payment_method"`
	CreatedAt      time.Time      `db:"created_at"`
}

type OrderLine struct {
	OrderLineID  int64          `db:"odline_id"`
	OrderID      int64          `db:"order_id"`
	ProductID    int64          `db:"product_id"`
	Title        string         `db:"title"`
	Status       string         `db:"status"`
	Quantity     int            `db:"quantity"`
	UnitPrice    int64          `db:"unit_price"`
	TotalFee     int64          `db:"total_fee"`
	RushOrder    bool           `db:"rush_order"`
	DeliveryTime sql.NullString `db:"delivery_time"`
	Instructions sql.NullString `db:"instructions"`
}

type TrackingEvent struct {
	EventID     int64          `db:"event_id"`
	OrderID     int64          `db:"order_id"`
	Status      string         `db:"status"`
	Description string         `db:"description"`
	Location    sql.NullString `db:"location"`
	CreatedAt   time.Time      `db:"created_at"`
}

func TrackingEventToEntity(e TrackingEvent) entities.TrackingEvent {
	return entities.TrackingEvent{
		EventID:     e.EventID,
		Status:      entities.OrderStatus(e.Status),
		Description: e.Description,
		Location:    nullStringToString(e.Location),
		Timestamp:   e.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
