package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aims-store/order-service/internal/entities"
	"github.com/aims-store/order-service/internal/shipping"
	"github.com/aims-store/order-service/pkg/trm"
	"github.com/aims-store/order-service/pkg/utils"
)

// VAT applies to the product subtotal only, never to shipping.
const vatRatePercent = 10

var ErrInvalidCheckout = errors.New("invalid checkout request")

type CheckoutRepo interface {
	CreateDelivery(ctx context.Context, d entities.DeliveryInformation) (int64, error)
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	CreateOrderLines(ctx context.Context, lines []entities.OrderLine) ([]int64, error)
	AddTrackingEvent(ctx context.Context, orderID int64, e entities.TrackingEvent) error
}

type EventPublisher interface {
	OrderPlaced(ctx context.Context, order entities.Order) error
	OrderCancelled(ctx context.Context, orderID int64, refundAmount int64) error
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CheckoutRepo
	events    EventPublisher
}

func NewCheckoutService(logger *slog.Logger, txManager trm.Manager, repo CheckoutRepo, events EventPublisher) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		repo:      repo,
		events:    events,
	}
}

// QuoteShipping recomputes the shipping breakdown for the storefront preview.
func (s *checkoutService) QuoteShipping(province string, items []entities.CartItem) entities.ShippingCalculation {
	return shipping.Calculate(province, items)
}

// ProcessCheckout turns a validated checkout form into persisted order
// records. Delivery info, order and all order lines are written in a single
// transaction, so a mid-sequence failure leaves no orphaned records.
func (s *checkoutService) ProcessCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error) {
	if err := validateCheckout(req); err != nil {
		return entities.CheckoutResult{}, err
	}

	calc := shipping.Calculate(req.Delivery.Province, req.Items)

	var subtotal int64
	for _, item := range req.Items {
		subtotal += item.Price * int64(item.Quantity)
	}
	vat := subtotal * vatRatePercent / 100

	order := entities.Order{
		TotalBeforeVAT: subtotal + calc.TotalShipping,
		TotalAfterVAT:  subtotal + vat + calc.TotalShipping,
		VAT:            vat,
		Status:         entities.StatusPending,
		PaymentMethod:  req.PaymentMethod,
	}

	itemsByProduct := make(map[int64]entities.CartItem, len(req.Items))
	for _, item := range req.Items {
		itemsByProduct[item.ProductID] = item
	}
	rushByProduct := make(map[int64]entities.RushDeliveryInfo, len(req.RushInfo))
	for _, info := range req.RushInfo {
		rushByProduct[info.ProductID] = info
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			delivery := req.Delivery
			delivery.ShippingFee = calc.TotalShipping
			deliveryID, err := s.repo.CreateDelivery(ctx, delivery)
			if err != nil {
				return fmt.Errorf("failed to create delivery: %w", err)
			}

			order.DeliveryID = deliveryID
			order, err = s.repo.CreateOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}

			lines, err := buildOrderLines(order.OrderID, req.Lines, itemsByProduct, rushByProduct)
			if err != nil {
				return err
			}
			if _, err := s.repo.CreateOrderLines(ctx, lines); err != nil {
				return fmt.Errorf("failed to create order lines: %w", err)
			}

			event := entities.TrackingEvent{
				Status:      entities.StatusPending,
				Description: "Order received and payment confirmed",
				Location:    "AIMS Warehouse",
			}
			if err := s.repo.AddTrackingEvent(ctx, order.OrderID, event); err != nil {
				return fmt.Errorf("failed to add tracking event: %w", err)
			}

			s.logger.DebugContext(ctx, "order placed",
				slog.Int64("order_id", order.OrderID),
				slog.String("tracking_code", order.TrackingCode),
			)
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, ErrInvalidCheckout); err != nil {
		return entities.CheckoutResult{}, err
	}

	// events are best effort, an unreachable broker must not fail the checkout
	if err := s.events.OrderPlaced(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order placed event",
			slog.Any("error", err), slog.Int64("order_id", order.OrderID))
	}

	return entities.CheckoutResult{
		OrderID:        order.OrderID,
		TrackingCode:   order.TrackingCode,
		TotalBeforeVAT: order.TotalBeforeVAT,
		TotalAfterVAT:  order.TotalAfterVAT,
		VAT:            order.VAT,
		Shipping:       calc,
		ClearCart:      true,
	}, nil
}

func validateCheckout(req entities.CheckoutRequest) error {
	if !entities.ValidProvince(req.Delivery.Province) {
		return fmt.Errorf("%w: unknown province %q", ErrInvalidCheckout, req.Delivery.Province)
	}
	if !req.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidCheckout, req.PaymentMethod)
	}
	if len(req.Items) == 0 || len(req.Lines) == 0 {
		return fmt.Errorf("%w: empty cart", ErrInvalidCheckout)
	}

	items := make(map[int64]entities.CartItem, len(req.Items))
	for _, item := range req.Items {
		items[item.ProductID] = item
	}

	// shipping is billed from the cart items while the lines get persisted;
	// the two encodings of the same purchase must agree
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: non-positive quantity for product %d", ErrInvalidCheckout, line.ProductID)
		}
		item, ok := items[line.ProductID]
		if !ok {
			return fmt.Errorf("%w: no cart item for product %d", ErrInvalidCheckout, line.ProductID)
		}
		if line.Quantity != item.Quantity {
			return fmt.Errorf("%w: quantity mismatch for product %d", ErrInvalidCheckout, line.ProductID)
		}
		if line.RushOrder != item.RushOrder {
			return fmt.Errorf("%w: rush flag mismatch for product %d", ErrInvalidCheckout, line.ProductID)
		}
	}
	for _, info := range req.RushInfo {
		if !entities.ValidRushTimeSlot(info.DeliveryTime) {
			return fmt.Errorf("%w: unknown rush time slot %q", ErrInvalidCheckout, info.DeliveryTime)
		}
	}
	return nil
}

func buildOrderLines(
	orderID int64,
	reqLines []entities.CheckoutLine,
	items map[int64]entities.CartItem,
	rush map[int64]entities.RushDeliveryInfo,
) ([]entities.OrderLine, error) {
	lines := make([]entities.OrderLine, 0, len(reqLines))
	for _, req := range reqLines {
		item, ok := items[req.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: no cart item for product %d", ErrInvalidCheckout, req.ProductID)
		}

		line := entities.OrderLine{
			OrderID:      orderID,
			ProductID:    req.ProductID,
			Title:        item.Title,
			Status:       entities.StatusPending,
			Quantity:     req.Quantity,
			UnitPrice:    item.Price,
			TotalFee:     item.Price * int64(req.Quantity),
			RushOrder:    req.RushOrder,
			Instructions: req.Instructions,
		}

		if req.RushOrder {
			info, ok := rush[req.ProductID]
			if !ok {
				return nil, fmt.Errorf("%w: missing rush delivery info for product %d", ErrInvalidCheckout, req.ProductID)
			}
			line.DeliveryTime = info.DeliveryTime
			line.Instructions = info.Instructions
		}

		lines = append(lines, line)
	}
	return lines, nil
}
