package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aims-store/order-service/internal/entities"
	"github.com/aims-store/order-service/internal/service"
	"github.com/aims-store/order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	QuoteShipping(province string, items []entities.CartItem) entities.ShippingCalculation
	ProcessCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error)
}

type TrackingService interface {
	TrackOrder(ctx context.Context, trackingCode string) (entities.OrderTrackingInfo, error)
	CancelOrder(ctx context.Context, orderID int64, trackingCode string) (entities.CancellationResult, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	checkout CheckoutService
	tracking TrackingService
}

func NewHTTPHandler(logger *slog.Logger, checkout CheckoutService, tracking TrackingService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		checkout: checkout,
		tracking: tracking,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/checkout/shipping", h.QuoteShipping)
	r.Post("/checkout", h.Checkout)
	r.Get("/orders/tracking/{tracking_code}", h.TrackOrder)
	r.Post("/orders/cancel", h.CancelOrder)
}

// QuoteShipping previews the shipping fee for the current cart.
// @Summary      Shipping fee quote
// @Description  Computes the shipping fee breakdown for the selected cart items
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      ShippingQuoteRequest  true  "Destination and cart items"
// @Success      200  {object}  ShippingQuote
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /checkout/shipping [post]
func (h *HTTPHandler) QuoteShipping(w http.ResponseWriter, r *http.Request) {
	var req ShippingQuoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	calc := h.checkout.QuoteShipping(req.Province, CartItemsToEntity(req.Items))
	utils.WriteJSON(w, ShippingCalcToJSON(calc), http.StatusOK)
}

// Checkout processes a validated checkout form.
// @Summary      Process checkout
// @Description  Creates delivery information, the order, and its order lines
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      CheckoutRequest  true  "Checkout form"
// @Success      201  {object}  CheckoutResponse
// @Failure      400  {object}  FailureResponse
// @Failure      500  {object}  FailureResponse
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		checkoutsTotal.WithLabelValues(outcomeRejected).Inc()
		utils.WriteJSON(w, FailureResponse{Message: "invalid request body"}, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		checkoutsTotal.WithLabelValues(outcomeRejected).Inc()
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.checkout.ProcessCheckout(ctx, CheckoutJSONToEntity(req))

	if errors.Is(err, service.ErrInvalidCheckout) {
		checkoutsTotal.WithLabelValues(outcomeRejected).Inc()
		utils.WriteJSON(w, FailureResponse{Message: "Invalid checkout request"}, http.StatusBadRequest)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "checkout failed", slog.Any("error", err))
		checkoutsTotal.WithLabelValues(outcomeFailed).Inc()
		utils.WriteJSON(w, FailureResponse{Message: "Failed to process checkout"}, http.StatusInternalServerError)
		return
	}

	checkoutsTotal.WithLabelValues(outcomeSucceeded).Inc()
	checkoutDuration.Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, CheckoutResultToJSON(res), http.StatusCreated)
}

// TrackOrder returns the tracking snapshot for a public tracking code.
// @Summary      Track an order
// @Description  Resolves a tracking code of the form AIMS-DDDDD-LLL to the order status snapshot
// @Tags         orders
// @Produce      json
// @Param        tracking_code  path      string  true  "Tracking code"
// @Success      200  {object}  TrackingResponse
// @Failure      404  {object}  FailureResponse
// @Failure      500  {object}  FailureResponse
// @Router       /orders/tracking/{tracking_code} [get]
func (h *HTTPHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trackingCode := chi.URLParam(r, "tracking_code")

	if err := h.validate.Var(trackingCode, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	info, err := h.tracking.TrackOrder(ctx, trackingCode)

	if errors.Is(err, entities.ErrOrderNotFound) {
		trackingRequestsTotal.WithLabelValues(outcomeNotFound).Inc()
		utils.WriteJSON(w, FailureResponse{Message: "Order not found"}, http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to track order",
			slog.Any("error", err), slog.String("tracking_code", trackingCode))
		trackingRequestsTotal.WithLabelValues(outcomeFailed).Inc()
		utils.WriteJSON(w, FailureResponse{Message: "internal server error"}, http.StatusInternalServerError)
		return
	}

	trackingRequestsTotal.WithLabelValues(outcomeSucceeded).Inc()
	utils.WriteJSON(w, TrackingInfoToJSON(info), http.StatusOK)
}

// CancelOrder cancels a pending order.
// @Summary      Cancel an order
// @Description  Cancels a pending order; business-rule rejections come back as a failed outcome
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      CancelRequest  true  "Order id and tracking code"
// @Success      200  {object}  CancelResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      500  {object}  FailureResponse
// @Router       /orders/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CancelRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteJSON(w, FailureResponse{Message: "invalid request body"}, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.tracking.CancelOrder(ctx, req.OrderID, req.TrackingCode)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to cancel order",
			slog.Any("error", err), slog.Int64("order_id", req.OrderID))
		cancellationsTotal.WithLabelValues(outcomeFailed).Inc()
		utils.WriteJSON(w, FailureResponse{Message: "Failed to cancel order"}, http.StatusInternalServerError)
		return
	}

	if res.Success {
		cancellationsTotal.WithLabelValues(outcomeSucceeded).Inc()
	} else {
		cancellationsTotal.WithLabelValues(outcomeRejected).Inc()
	}
	utils.WriteJSON(w, CancellationResultToJSON(res), http.StatusOK)
}
