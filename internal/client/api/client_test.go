package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"fincarts/internal/client/session"
	"fincarts/internal/domain"
	apperrors "fincarts/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess, err := session.New("seller-1")
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	return NewClient(server.URL, server.Client(), sess, zap.NewNop()), server
}

func TestGetOrders_BuildsRequestAndDecodes(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/seller/order/get-orders/seller-1", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "pending", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "orders fetched",
			"data": {
				"orders": [{"id": "ord-1", "order_id": "FC-1", "status": "pending", "total_amount": 120.5,
					"users": {"id": "u1", "full_name": "Asha Nair"},
					"order_items": [{"id": "i1", "quantity": 2, "price": 60.25,
						"fish_listings": {"id": "fish-1", "name": "Neon Tetra", "images": [], "price": 60.25}}]}],
				"pagination": {"total": 23, "page": 2, "limit": 10, "pages": 3},
				"summary": {"totalRevenue": 900, "totalOrders": 23, "statusBreakdown": {"pending": 23}}
			}
		}`))
	})

	pending := domain.StatusPending
	data, err := client.GetOrders(context.Background(), OrdersQuery{Page: 2, Limit: 10, Status: &pending})
	assert.NoError(t, err)
	assert.Len(t, data.Orders, 1)
	assert.Equal(t, "ord-1", data.Orders[0].ID)
	assert.Equal(t, 3, data.Pagination.Pages)
	assert.Equal(t, 23, data.Summary.TotalOrders)
}

func TestGetOrders_Non2xxIsFetchError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetOrders(context.Background(), OrdersQuery{Page: 1})
	fe, ok := apperrors.IsFetchError(err)
	assert.True(t, ok)
	assert.Contains(t, fe.Error(), "502")
}

func TestGetOrders_ReportedFailureIsFetchError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "message": "seller suspended"}`))
	})

	_, err := client.GetOrders(context.Background(), OrdersQuery{Page: 1})
	fe, ok := apperrors.IsFetchError(err)
	assert.True(t, ok)
	assert.Contains(t, fe.Error(), "seller suspended")
}

func TestPerformAction_SendsQueryAndSellerHeader(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/seller/order/order-action", r.URL.Path)
		assert.Equal(t, "accept", r.URL.Query().Get("action"))
		assert.Equal(t, "ord-1", r.URL.Query().Get("orderId"))
		assert.Empty(t, r.URL.Query().Get("receipt"))
		assert.Equal(t, "seller-1", r.Header.Get(SellerIDHeader))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"order": {"status": "confirmed"}}}`))
	})

	status, hasStatus, err := client.PerformAction(context.Background(), "ord-1", domain.ActionAccept, "")
	assert.NoError(t, err)
	assert.True(t, hasStatus)
	assert.Equal(t, domain.StatusConfirmed, status)
}

func TestPerformAction_ReceiptIncludesURL(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "receipt", r.URL.Query().Get("action"))
		assert.Equal(t, "https://assets.example.com/r.jpg", r.URL.Query().Get("receipt"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"order": {"status": "processing"}}}`))
	})

	status, hasStatus, err := client.PerformAction(context.Background(), "ord-1", domain.ActionReceipt, "https://assets.example.com/r.jpg")
	assert.NoError(t, err)
	assert.True(t, hasStatus)
	assert.Equal(t, domain.StatusProcessing, status)
}

func TestPerformAction_MissingStatusIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"order": {}}}`))
	})

	status, hasStatus, err := client.PerformAction(context.Background(), "ord-1", domain.ActionAccept, "")
	assert.NoError(t, err)
	assert.False(t, hasStatus)
	assert.Empty(t, status)
}

func TestPerformAction_FailureIsActionError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success": false, "message": "action not allowed"}`))
	})

	_, _, err := client.PerformAction(context.Background(), "ord-1", domain.ActionAccept, "")
	ae, ok := apperrors.IsActionError(err)
	assert.True(t, ok)
	assert.Equal(t, "ord-1", ae.OrderID)
}
