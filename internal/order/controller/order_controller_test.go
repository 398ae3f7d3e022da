package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"fincarts/internal/domain"
	"fincarts/internal/dto"
	apperrors "fincarts/internal/errors"
)

type mockQueryService struct {
	ListOrdersFunc func(ctx context.Context, sellerID string, status *domain.Status, page, limit int) (*dto.OrdersData, error)
}

func (m *mockQueryService) ListOrders(ctx context.Context, sellerID string, status *domain.Status, page, limit int) (*dto.OrdersData, error) {
	return m.ListOrdersFunc(ctx, sellerID, status, page, limit)
}

type mockActionService struct {
	PerformFunc func(ctx context.Context, sellerID, orderID string, action domain.Action, receiptURL string) (domain.Status, error)
}

func (m *mockActionService) Perform(ctx context.Context, sellerID, orderID string, action domain.Action, receiptURL string) (domain.Status, error) {
	return m.PerformFunc(ctx, sellerID, orderID, action, receiptURL)
}

func newTestRouter(query QueryService, actions ActionService) *chi.Mux {
	c := NewController(query, actions, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/seller/order/get-orders/{sellerId}", c.GetOrders)
	r.Post("/seller/order/order-action", c.OrderAction)
	return r
}

func TestGetOrders_PassesFilterAndPaging(t *testing.T) {
	var gotSeller string
	var gotStatus *domain.Status
	var gotPage, gotLimit int
	query := &mockQueryService{
		ListOrdersFunc: func(ctx context.Context, sellerID string, status *domain.Status, page, limit int) (*dto.OrdersData, error) {
			gotSeller, gotStatus, gotPage, gotLimit = sellerID, status, page, limit
			return &dto.OrdersData{
				Orders:     []dto.OrderDTO{},
				Pagination: dto.NewPagination(0, page, limit),
			}, nil
		},
	}
	router := newTestRouter(query, &mockActionService{})

	req := httptest.NewRequest(http.MethodGet, "/seller/order/get-orders/seller-1?page=2&limit=5&status=shipped", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "seller-1", gotSeller)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, 5, gotLimit)
	if assert.NotNil(t, gotStatus) {
		assert.Equal(t, domain.StatusShipped, *gotStatus)
	}

	var body dto.OrdersResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
}

func TestGetOrders_RejectsBadQueryParams(t *testing.T) {
	router := newTestRouter(&mockQueryService{}, &mockActionService{})

	for _, target := range []string{
		"/seller/order/get-orders/seller-1?page=zero",
		"/seller/order/get-orders/seller-1?limit=-3",
		"/seller/order/get-orders/seller-1?status=paid",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestOrderAction_RequiresSellerHeader(t *testing.T) {
	router := newTestRouter(&mockQueryService{}, &mockActionService{})

	req := httptest.NewRequest(http.MethodPost, "/seller/order/order-action?orderId=ord-1&action=accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderAction_ReturnsNewStatus(t *testing.T) {
	actions := &mockActionService{
		PerformFunc: func(ctx context.Context, sellerID, orderID string, action domain.Action, receiptURL string) (domain.Status, error) {
			assert.Equal(t, "seller-1", sellerID)
			assert.Equal(t, "ord-1", orderID)
			assert.Equal(t, domain.ActionAccept, action)
			return domain.StatusConfirmed, nil
		},
	}
	router := newTestRouter(&mockQueryService{}, actions)

	req := httptest.NewRequest(http.MethodPost, "/seller/order/order-action?orderId=ord-1&action=accept", nil)
	req.Header.Set(SellerIDHeader, "seller-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body dto.ActionResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "confirmed", body.Data.Order.Status)
}

func TestOrderAction_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", apperrors.NewValidationError("receipt is required"), http.StatusBadRequest},
		{"not found", apperrors.NewNotFoundError("order not found"), http.StatusNotFound},
		{"forbidden", apperrors.NewForbiddenError("order belongs to another seller"), http.StatusForbidden},
		{"conflict", apperrors.NewConflictError("action accept is not allowed"), http.StatusConflict},
		{"internal", apperrors.NewInternalError("boom", nil), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actions := &mockActionService{
				PerformFunc: func(ctx context.Context, sellerID, orderID string, action domain.Action, receiptURL string) (domain.Status, error) {
					return "", tc.err
				},
			}
			router := newTestRouter(&mockQueryService{}, actions)

			req := httptest.NewRequest(http.MethodPost, "/seller/order/order-action?orderId=ord-1&action=decline", nil)
			req.Header.Set(SellerIDHeader, "seller-1")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestOrderAction_RejectsUnknownAction(t *testing.T) {
	router := newTestRouter(&mockQueryService{}, &mockActionService{})

	req := httptest.NewRequest(http.MethodPost, "/seller/order/order-action?orderId=ord-1&action=refund", nil)
	req.Header.Set(SellerIDHeader, "seller-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
