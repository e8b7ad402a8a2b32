package service_test

import (
	"context"

	"github.com/aims-store/order-service/internal/entities"
	"github.com/aims-store/order-service/pkg/trm"
	"github.com/stretchr/testify/mock"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) CreateDelivery(ctx context.Context, d entities.DeliveryInformation) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(entities.Order), args.Error(1)
}

func (m *mockOrderRepo) CreateOrderLines(ctx context.Context, lines []entities.OrderLine) ([]int64, error) {
	args := m.Called(ctx, lines)
	if ids := args.Get(0); ids != nil {
		return ids.([]int64), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) AddTrackingEvent(ctx context.Context, orderID int64, e entities.TrackingEvent) error {
	args := m.Called(ctx, orderID, e)
	return args.Error(0)
}

func (m *mockOrderRepo) GetOrderTracking(ctx context.Context, orderID int64) (entities.OrderTrackingInfo, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(entities.OrderTrackingInfo), args.Error(1)
}

func (m *mockOrderRepo) CancelOrder(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *mockOrderRepo) LatestOrderIDs(ctx context.Context, count int) ([]int64, error) {
	args := m.Called(ctx, count)
	if ids := args.Get(0); ids != nil {
		return ids.([]int64), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(key string) ([]byte, bool) {
	args := m.Called(key)
	if data := args.Get(0); data != nil {
		return data.([]byte), args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *mockCache) Set(key string, value []byte) {
	m.Called(key, value)
}

func (m *mockCache) Del(key string) {
	m.Called(key)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) OrderPlaced(ctx context.Context, order entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockPublisher) OrderCancelled(ctx context.Context, orderID int64, refundAmount int64) error {
	args := m.Called(ctx, orderID, refundAmount)
	return args.Error(0)
}

// fakeTxManager runs callbacks without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	return ctx, fakeTx{}, nil
}

func (fakeTxManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return callback(ctx)
}

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }
