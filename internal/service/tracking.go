package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/aims-store/order-service/internal/entities"
	"github.com/aims-store/order-service/pkg/trm"
	"github.com/aims-store/order-service/pkg/utils"
)

const estimatedDeliveryAfter = 5 * 24 * time.Hour

const (
	msgInvalidTrackingCode = "Invalid tracking code"
	msgCannotCancel        = "This order cannot be cancelled as it has already been shipped"
	msgCancelled           = "Your order has been successfully cancelled. Refund will be processed within 3-5 business days."
)

type TrackingRepo interface {
	GetOrderTracking(ctx context.Context, orderID int64) (entities.OrderTrackingInfo, error)
	CancelOrder(ctx context.Context, orderID int64) error
	AddTrackingEvent(ctx context.Context, orderID int64, e entities.TrackingEvent) error
	LatestOrderIDs(ctx context.Context, count int) ([]int64, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Del(key string)
}

type trackingService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      TrackingRepo
	cache     Cache
	events    EventPublisher
}

func NewTrackingService(logger *slog.Logger, txManager trm.Manager, repo TrackingRepo, cache Cache, events EventPublisher) *trackingService {
	return &trackingService{
		logger:    logger.With(slog.String("service", "tracking")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		events:    events,
	}
}

// TrackOrder resolves a tracking code to the customer-facing snapshot.
// Any format deviation is reported as not-found; callers upper-case the
// code before submission, there is no case-insensitive fallback.
func (s *trackingService) TrackOrder(ctx context.Context, trackingCode string) (entities.OrderTrackingInfo, error) {
	orderID, err := entities.ParseTrackingCode(trackingCode)
	if err != nil {
		return entities.OrderTrackingInfo{}, entities.ErrOrderNotFound
	}

	key := snapshotKey(orderID)
	if data, ok := s.cache.Get(key); ok {
		var info entities.OrderTrackingInfo
		if err := info.Unmarshal(data); err == nil {
			info.TrackingCode = trackingCode
			return info, nil
		}
		// a corrupt entry falls through to storage
		s.cache.Del(key)
	}

	var info entities.OrderTrackingInfo
	fn := func() error {
		var err error
		info, err = s.repo.GetOrderTracking(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.OrderTrackingInfo{}, err
	}

	info = finalizeSnapshot(info, trackingCode)

	if data, err := info.Marshal(); err == nil {
		s.cache.Set(key, data)
	}
	return info, nil
}

// CancelOrder is the only caller-triggered status transition. The order is
// re-resolved from storage first; caller-supplied cached state is never
// trusted. Business-rule rejections come back as a failed result, not as an
// error; only backend failures are errors.
func (s *trackingService) CancelOrder(ctx context.Context, orderID int64, trackingCode string) (entities.CancellationResult, error) {
	parsedID, err := entities.ParseTrackingCode(trackingCode)
	if err != nil || parsedID != orderID {
		return entities.CancellationResult{Success: false, Message: msgInvalidTrackingCode}, nil
	}

	info, err := s.repo.GetOrderTracking(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.CancellationResult{Success: false, Message: msgInvalidTrackingCode}, nil
	}
	if err != nil {
		return entities.CancellationResult{}, err
	}

	if !info.Status.CanCancel() {
		return entities.CancellationResult{Success: false, Message: msgCannotCancel}, nil
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.CancelOrder(ctx, orderID); err != nil {
			return err
		}
		event := entities.TrackingEvent{
			Status:      entities.StatusCancelled,
			Description: "Order cancelled by customer",
		}
		return s.repo.AddTrackingEvent(ctx, orderID, event)
	})
	if errors.Is(err, entities.ErrOrderNotCancellable) {
		// lost the race against an approval or another cancel
		return entities.CancellationResult{Success: false, Message: msgCannotCancel}, nil
	}
	if err != nil {
		return entities.CancellationResult{}, err
	}

	s.cache.Del(snapshotKey(orderID))

	if err := s.events.OrderCancelled(ctx, orderID, info.TotalAmount); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order cancelled event",
			slog.Any("error", err), slog.Int64("order_id", orderID))
	}

	s.logger.InfoContext(ctx, "order cancelled",
		slog.Int64("order_id", orderID),
		slog.Int64("refund_amount", info.TotalAmount),
	)

	return entities.CancellationResult{
		Success:       true,
		Message:       msgCancelled,
		RefundAmount:  info.TotalAmount,
		RefundMethod:  info.PaymentMethod.RefundMethod(),
		UpdatedStatus: entities.StatusCancelled,
	}, nil
}

// WarmUpCache preloads snapshots of the most recent orders.
func (s *trackingService) WarmUpCache(ctx context.Context, count int) error {
	ids, err := s.repo.LatestOrderIDs(ctx, count)
	if err != nil {
		return err
	}

	for _, id := range ids {
		info, err := s.repo.GetOrderTracking(ctx, id)
		if err != nil {
			s.logger.Warn("failed to warm up order", slog.Any("error", err), slog.Int64("order_id", id))
			continue
		}
		if info.TrackingCode == "" {
			continue
		}
		info = finalizeSnapshot(info, info.TrackingCode)
		data, err := info.Marshal()
		if err != nil {
			s.logger.Warn("failed to warm up order", slog.Any("error", err), slog.Int64("order_id", id))
			continue
		}
		s.cache.Set(snapshotKey(id), data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(ids)))
	return nil
}

// snapshotKey keys cached snapshots by order id, so every letter-suffix
// variant of a tracking code hits, and invalidates, the same entry.
func snapshotKey(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}

func finalizeSnapshot(info entities.OrderTrackingInfo, trackingCode string) entities.OrderTrackingInfo {
	info.TrackingCode = trackingCode
	info.CanCancel = info.Status.CanCancel()
	info.EstimatedDelivery = info.OrderDate.Add(estimatedDeliveryAfter)
	return info
}
