package handler

import (
	"time"

	"github.com/aims-store/order-service/internal/entities"
)

// CartItem is one selected cart position sent by the storefront
type CartItem struct {
	ProductID int64   `json:"product_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Price     int64   `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Weight    float64 `json:"weight" validate:"gte=0"`
	RushOrder bool    `json:"rush_order"`
}

// ShippingQuoteRequest asks for a shipping fee preview
type ShippingQuoteRequest struct {
	Province string     `json:"province" validate:"required"`
	Items    []CartItem `json:"items" validate:"required,min=1,dive"`
}

// ShippingQuote is the full shipping fee breakdown
type ShippingQuote struct {
	RegularShipping      int64   `json:"regular_shipping"`
	RushShipping         int64   `json:"rush_shipping"`
	FreeShippingDiscount int64   `json:"free_shipping_discount"`
	TotalShipping        int64   `json:"total_shipping"`
	RegularItemsTotal    int64   `json:"regular_items_total"`
	RushItemsTotal       int64   `json:"rush_items_total"`
	HeaviestItemWeight   float64 `json:"heaviest_item_weight"`
}

// DeliveryInformation is the recipient block of the checkout form
type DeliveryInformation struct {
	Name            string `json:"name" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Address         string `json:"address" validate:"required"`
	Province        string `json:"province" validate:"required"`
	ShippingMessage string `json:"shipping_message,omitempty"`
}

// OrderLine is one requested order line
type OrderLine struct {
	ProductID    int64  `json:"product_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	RushOrder    bool   `json:"rush_order"`
	Instructions string `json:"instructions,omitempty"`
}

// RushDeliveryInfo carries the time window for a rush-flagged product
type RushDeliveryInfo struct {
	ProductID    int64  `json:"product_id" validate:"required"`
	DeliveryTime string `json:"delivery_time" validate:"required"`
	Instructions string `json:"instructions,omitempty"`
}

// CheckoutRequest is the complete checkout form
type CheckoutRequest struct {
	Delivery      DeliveryInformation `json:"delivery_info" validate:"required"`
	Items         []CartItem          `json:"items" validate:"required,min=1,dive"`
	OrderLines    []OrderLine         `json:"order_lines" validate:"required,min=1,dive"`
	RushInfo      []RushDeliveryInfo  `json:"rush_delivery_info,omitempty" validate:"omitempty,dive"`
	PaymentMethod string              `json:"payment_method" validate:"required,oneof=cod momo vnpay credit_card"`
}

// CheckoutResponse is returned on successful checkout
type CheckoutResponse struct {
	Success        bool          `json:"success"`
	OrderID        int64         `json:"order_id"`
	TrackingCode   string        `json:"tracking_code"`
	TotalBeforeVAT int64         `json:"total_before_vat"`
	TotalAfterVAT  int64         `json:"total_after_vat"`
	VAT            int64         `json:"vat"`
	Shipping       ShippingQuote `json:"shipping"`
	ClearCart      bool          `json:"clear_cart"`
}

// TrackingEvent is one entry of the order status timeline
type TrackingEvent struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// TrackedItem is the per-line view on the tracking snapshot
type TrackedItem struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	RushOrder bool   `json:"rush_order"`
}

// OrderDetails is the order summary block of the tracking snapshot
type OrderDetails struct {
	TotalAmount     int64         `json:"total_amount"`
	PaymentMethod   string        `json:"payment_method"`
	DeliveryAddress string        `json:"delivery_address"`
	Items           []TrackedItem `json:"items"`
}

// TrackingResponse is the customer-facing order tracking snapshot
type TrackingResponse struct {
	OrderID           int64           `json:"order_id"`
	TrackingCode      string          `json:"tracking_code"`
	CurrentStatus     string          `json:"current_status"`
	OrderDate         time.Time       `json:"order_date"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	CanCancel         bool            `json:"can_cancel"`
	TrackingEvents    []TrackingEvent `json:"tracking_events"`
	OrderDetails      OrderDetails    `json:"order_details"`
}

// CancelRequest identifies the order to cancel
type CancelRequest struct {
	OrderID      int64  `json:"order_id" validate:"required"`
	TrackingCode string `json:"tracking_code" validate:"required"`
}

// CancelResponse is the outcome of a cancellation attempt
type CancelResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	RefundAmount  int64  `json:"refund_amount,omitempty"`
	RefundMethod  string `json:"refund_method,omitempty"`
	UpdatedStatus string `json:"updated_status,omitempty"`
}

// FailureResponse is the uniform failure outcome
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func CartItemToEntity(i CartItem) entities.CartItem {
	return entities.CartItem{
		ProductID: i.ProductID,
		Title:     i.Title,
		Price:     i.Price,
		Quantity:  i.Quantity,
		Weight:    i.Weight,
		RushOrder: i.RushOrder,
	}
}

func CartItemsToEntity(items []CartItem) []entities.CartItem {
	out := make([]entities.CartItem, 0, len(items))
	for _, i := range items {
		out = append(out, CartItemToEntity(i))
	}
	return out
}

func ShippingCalcToJSON(c entities.ShippingCalculation) ShippingQuote {
	return ShippingQuote{
		RegularShipping:      c.RegularShipping,
		RushShipping:         c.RushShipping,
		FreeShippingDiscount: c.FreeShippingDiscount,
		TotalShipping:        c.TotalShipping,
		RegularItemsTotal:    c.RegularItemsTotal,
		RushItemsTotal:       c.RushItemsTotal,
		HeaviestItemWeight:   c.HeaviestItemWeight,
	}
}

func CheckoutJSONToEntity(r CheckoutRequest) entities.CheckoutRequest {
	lines := make([]entities.CheckoutLine, 0, len(r.OrderLines))
	for _, l := range r.OrderLines {
		lines = append(lines, entities.CheckoutLine{
			ProductID:    l.ProductID,
			Quantity:     l.Quantity,
			RushOrder:    l.RushOrder,
			Instructions: l.Instructions,
		})
	}

	rush := make([]entities.RushDeliveryInfo, 0, len(r.RushInfo))
	for _, info := range r.RushInfo {
		rush = append(rush, entities.RushDeliveryInfo{
			ProductID:    info.ProductID,
			DeliveryTime: info.DeliveryTime,
			Instructions: info.Instructions,
		})
	}

	return entities.CheckoutRequest{
		Delivery: entities.DeliveryInformation{
			Name:            r.Delivery.Name,
			Phone:           r.Delivery.Phone,
			Email:           r.Delivery.Email,
			Address:         r.Delivery.Address,
			Province:        r.Delivery.Province,
			ShippingMessage: r.Delivery.ShippingMessage,
		},
		Items:         CartItemsToEntity(r.Items),
		Lines:         lines,
		RushInfo:      rush,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
	}
}

func CheckoutResultToJSON(res entities.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Success:        true,
		OrderID:        res.OrderID,
		TrackingCode:   res.TrackingCode,
		TotalBeforeVAT: res.TotalBeforeVAT,
		TotalAfterVAT:  res.TotalAfterVAT,
		VAT:            res.VAT,
		Shipping:       ShippingCalcToJSON(res.Shipping),
		ClearCart:      res.ClearCart,
	}
}

func TrackingInfoToJSON(info entities.OrderTrackingInfo) TrackingResponse {
	events := make([]TrackingEvent, 0, len(info.Events))
	for _, e := range info.Events {
		events = append(events, TrackingEvent{
			ID:          e.EventID,
			Status:      string(e.Status),
			Description: e.Description,
			Location:    e.Location,
			Timestamp:   e.Timestamp,
		})
	}

	items := make([]TrackedItem, 0, len(info.Items))
	for _, it := range info.Items {
		items = append(items, TrackedItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			Price:     it.Price,
			RushOrder: it.RushOrder,
		})
	}

	return TrackingResponse{
		OrderID:           info.OrderID,
		TrackingCode:      info.TrackingCode,
		CurrentStatus:     string(info.Status),
		OrderDate:         info.OrderDate,
		EstimatedDelivery: info.EstimatedDelivery,
		CanCancel:         info.CanCancel,
		TrackingEvents:    events,
		OrderDetails: OrderDetails{
			TotalAmount:     info.TotalAmount,
			PaymentMethod:   string(info.PaymentMethod),
			DeliveryAddress: info.DeliveryAddress,
			Items:           items,
		},
	}
}

func CancellationResultToJSON(res entities.CancellationResult) CancelResponse {
	return CancelResponse{
		Success:       res.Success,
		Message:       res.Message,
		RefundAmount:  res.RefundAmount,
		RefundMethod:  res.RefundMethod,
		UpdatedStatus: string(res.UpdatedStatus),
	}
}
