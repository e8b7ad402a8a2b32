package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aims-store/order-service/internal/entities"
	"github.com/aims-store/order-service/internal/handler"
	"github.com/aims-store/order-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCheckoutService struct {
	mock.Mock
}

func (m *mockCheckoutService) QuoteShipping(province string, items []entities.CartItem) entities.ShippingCalculation {
	args := m.Called(province, items)
	return args.Get(0).(entities.ShippingCalculation)
}

func (m *mockCheckoutService) ProcessCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entities.CheckoutResult), args.Error(1)
}

type mockTrackingService struct {
	mock.Mock
}

func (m *mockTrackingService) TrackOrder(ctx context.Context, trackingCode string) (entities.OrderTrackingInfo, error) {
	args := m.Called(ctx, trackingCode)
	return args.Get(0).(entities.OrderTrackingInfo), args.Error(1)
}

func (m *mockTrackingService) CancelOrder(ctx context.Context, orderID int64, trackingCode string) (entities.CancellationResult, error) {
	args := m.Called(ctx, orderID, trackingCode)
	return args.Get(0).(entities.CancellationResult), args.Error(1)
}

func newTestRouter(checkout *mockCheckoutService, tracking *mockTrackingService) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, checkout, tracking)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

const checkoutBody = `{
	"delivery_info": {
		"name": "Nguyen Van A",
		"phone": "0912345678",
		"email": "nguyenvana@example.com",
		"address": "123 Nguyen Hue Street, District 1",
		"province": "TP Hồ Chí Minh"
	},
	"items": [
		{"product_id": 1, "title": "Product 1", "price": 500000, "quantity": 1, "weight": 0.5}
	],
	"order_lines": [
		{"product_id": 1, "quantity": 1}
	],
	"payment_method": "momo"
}`

func TestHTTPHandler_Checkout(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mockCheckoutService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: checkoutBody,
			mockBehavior: func(svc *mockCheckoutService) {
				svc.On("ProcessCheckout", mock.Anything, mock.Anything).
					Return(entities.CheckoutResult{
						OrderID:       123,
						TrackingCode:  "AIMS-00123-ABC",
						TotalAfterVAT: 572_000,
						ClearCart:     true,
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"tracking_code":"AIMS-00123-ABC"`,
		},
		{
			name: "invalid checkout",
			body: checkoutBody,
			mockBehavior: func(svc *mockCheckoutService) {
				svc.On("ProcessCheckout", mock.Anything, mock.Anything).
					Return(entities.CheckoutResult{}, service.ErrInvalidCheckout).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid checkout request"`,
		},
		{
			name: "backend failure is a generic outcome",
			body: checkoutBody,
			mockBehavior: func(svc *mockCheckoutService) {
				svc.On("ProcessCheckout", mock.Anything, mock.Anything).
					Return(entities.CheckoutResult{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"Failed to process checkout"`,
		},
		{
			name:         "missing payment method fails validation",
			body:         `{"delivery_info":{"name":"A","phone":"1","email":"a@b.c","address":"x","province":"Hà Nội"},"items":[{"product_id":1,"title":"P","price":1,"quantity":1,"weight":1}],"order_lines":[{"product_id":1,"quantity":1}]}`,
			mockBehavior: func(svc *mockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "malformed json",
			body:         `{`,
			mockBehavior: func(svc *mockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkout := new(mockCheckoutService)
			tracking := new(mockTrackingService)
			tc.mockBehavior(checkout)

			r := newTestRouter(checkout, tracking)

			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
			checkout.AssertExpectations(t)
		})
	}
}

func TestHTTPHandler_QuoteShipping(t *testing.T) {
	checkout := new(mockCheckoutService)
	tracking := new(mockTrackingService)

	checkout.On("QuoteShipping", "Hà Nội", mock.Anything).
		Return(entities.ShippingCalculation{
			RegularShipping:    22_000,
			TotalShipping:      22_000,
			RegularItemsTotal:  50_000,
			HeaviestItemWeight: 2,
		}).Once()

	r := newTestRouter(checkout, tracking)

	body := `{"province":"Hà Nội","items":[{"product_id":1,"title":"P","price":50000,"quantity":1,"weight":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/checkout/shipping", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var quote map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&quote))
	assert.Equal(t, float64(22_000), quote["total_shipping"])
}

func TestHTTPHandler_TrackOrder(t *testing.T) {
	orderDate := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		trackingCode string
		mockBehavior func(svc *mockTrackingService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:         "success",
			trackingCode: "AIMS-00123-ABC",
			mockBehavior: func(svc *mockTrackingService) {
				svc.On("TrackOrder", mock.Anything, "AIMS-00123-ABC").
					Return(entities.OrderTrackingInfo{
						OrderID:      123,
						TrackingCode: "AIMS-00123-ABC",
						Status:       entities.StatusPending,
						OrderDate:    orderDate,
						CanCancel:    true,
						TotalAmount:  1_672_000,
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"can_cancel":true`,
		},
		{
			name:         "not found",
			trackingCode: "AIMS-99999-ZZZ",
			mockBehavior: func(svc *mockTrackingService) {
				svc.On("TrackOrder", mock.Anything, "AIMS-99999-ZZZ").
					Return(entities.OrderTrackingInfo{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"Order not found"`,
		},
		{
			name:         "malformed code is not found",
			trackingCode: "AIMS-123-ABC",
			mockBehavior: func(svc *mockTrackingService) {
				svc.On("TrackOrder", mock.Anything, "AIMS-123-ABC").
					Return(entities.OrderTrackingInfo{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"Order not found"`,
		},
		{
			name:         "internal error",
			trackingCode: "AIMS-00123-ABC",
			mockBehavior: func(svc *mockTrackingService) {
				svc.On("TrackOrder", mock.Anything, "AIMS-00123-ABC").
					Return(entities.OrderTrackingInfo{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkout := new(mockCheckoutService)
			tracking := new(mockTrackingService)
			tc.mockBehavior(tracking)

			r := newTestRouter(checkout, tracking)

			req := httptest.NewRequest(http.MethodGet, "/orders/tracking/"+tc.trackingCode, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
			tracking.AssertExpectations(t)
		})
	}
}

func TestHTTPHandler_CancelOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mockTrackingService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"order_id":123,"tracking_code":"AIMS-00123-ABC"}`,
			mockBehavior: func(svc *mockTrackingService) {
				svc.On("CancelOrder", mock.Anything, int64(123), "AIMS-00123-ABC").
					Return(entities.CancellationResult{
						Success:       true,
						Message:       "Your order has been successfully cancelled. Refund will be processed within 3-5 business days.",
						RefundAmount:  1_672_000,
						RefundMethod:  "Bank Transfer",
						UpdatedStatus: entities.StatusCancelled,
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"refund_amount":1672000`,
		},
		{
			name: "business rejection is a 200 outcome",
			body: `{"order_id":123,"tracking_code":"AIMS-00123-ABC"}`,
			mockBehavior: func(svc *mockTrackingService) {
				svc.On("CancelOrder", mock.Anything, int64(123), "AIMS-00123-ABC").
					Return(entities.CancellationResult{
						Success: false,
						Message: "This order cannot be cancelled as it has already been shipped",
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":false`,
		},
		{
			name: "backend failure",
			body: `{"order_id":123,"tracking_code":"AIMS-00123-ABC"}`,
			mockBehavior: func(svc *mockTrackingService) {
				svc.On("CancelOrder", mock.Anything, int64(123), "AIMS-00123-ABC").
					Return(entities.CancellationResult{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"Failed to cancel order"`,
		},
		{
			name:         "missing tracking code fails validation",
			body:         `{"order_id":123}`,
			mockBehavior: func(svc *mockTrackingService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkout := new(mockCheckoutService)
			tracking := new(mockTrackingService)
			tc.mockBehavior(tracking)

			r := newTestRouter(checkout, tracking)

			req := httptest.NewRequest(http.MethodPost, "/orders/cancel", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
			tracking.AssertExpectations(t)
		})
	}
}
