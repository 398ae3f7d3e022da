package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fincarts/internal/domain"
	"fincarts/internal/dto"
	apperrors "fincarts/internal/errors"
)

// SellerIDHeader carries the authenticated seller identity. Session
// handling itself lives outside this service.
const SellerIDHeader = "X-Seller-Id"

type QueryService interface {
	ListOrders(ctx context.Context, sellerID string, status *domain.Status, page, limit int) (*dto.OrdersData, error)
}

type ActionService interface {
	Perform(ctx context.Context, sellerID, orderID string, action domain.Action, receiptURL string) (domain.Status, error)
}

type Controller struct {
	query   QueryService
	actions ActionService
	logger  *zap.Logger
}

func NewController(query QueryService, actions ActionService, logger *zap.Logger) *Controller {
	return &Controller{
		query:   query,
		actions: actions,
		logger:  logger,
	}
}

// GetOrders handles GET /seller/order/get-orders/{sellerId}.
func (c *Controller) GetOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	sellerID := chi.URLParam(r, "sellerId")
	if sellerID == "" {
		c.writeValidationError(w, "invalid sellerId", apperrors.ValidationDetail{
			Field:   "sellerId",
			Message: "sellerId is required",
		})
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.writeValidationError(w, "invalid page", apperrors.ValidationDetail{
				Field:   "page",
				Message: "page must be a positive integer",
			})
			return
		}
		page = parsed
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.writeValidationError(w, "invalid limit", apperrors.ValidationDetail{
				Field:   "limit",
				Message: "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	var status *domain.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := domain.ParseStatus(raw)
		if err != nil {
			c.writeValidationError(w, "invalid status", apperrors.ValidationDetail{
				Field:   "status",
				Message: "status must be one of pending, confirmed, processing, shipped, delivered, cancelled",
			})
			return
		}
		status = &parsed
	}

	data, err := c.query.ListOrders(r.Context(), sellerID, status, page, limit)
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.OrdersResponse{
		Success: true,
		Message: "orders fetched",
		Data:    *data,
	})
}

// OrderAction handles POST /seller/order/order-action.
func (c *Controller) OrderAction(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	sellerID := r.Header.Get(SellerIDHeader)
	if sellerID == "" {
		c.writeJSON(w, http.StatusUnauthorized, dto.ActionResponse{
			Success: false,
			Message: "missing seller identity",
		})
		return
	}

	q := r.URL.Query()
	orderID := q.Get("orderId")
	if orderID == "" {
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId is required",
		})
		return
	}

	action, err := domain.ParseAction(q.Get("action"))
	if err != nil {
		c.writeValidationError(w, "invalid action", apperrors.ValidationDetail{
			Field:   "action",
			Message: "action must be one of accept, decline, receipt",
		})
		return
	}

	status, err := c.actions.Perform(r.Context(), sellerID, orderID, action, q.Get("receipt"))
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ActionResponse{
		Success: true,
		Message: "order action applied",
		Data: dto.ActionData{
			Order: dto.ActionOrder{Status: status.String()},
		},
	})
}

type errorResponse struct {
	Success bool                         `json:"success"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: "NOT_FOUND", Message: nf.Message})
		return
	}
	if fe, ok := apperrors.IsForbiddenError(err); ok {
		c.writeJSON(w, http.StatusForbidden, errorResponse{Error: "FORBIDDEN", Message: fe.Message})
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, errorResponse{Error: "CONFLICT", Message: ce.Message})
		return
	}

	logger.Error("order request failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		c.logger.Error("encoding response", zap.Error(err))
	}
}
