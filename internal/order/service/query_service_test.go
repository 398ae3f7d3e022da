package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"fincarts/internal/domain"
)

type mockOrderLister struct {
	ListBySellerFunc func(ctx context.Context, sellerID string, status *domain.Status, page, limit int) ([]domain.Order, int, error)
	SummaryFunc      func(ctx context.Context, sellerID string) (map[string]int, float64, int, error)
}

func (m *mockOrderLister) ListBySeller(ctx context.Context, sellerID string, status *domain.Status, page, limit int) ([]domain.Order, int, error) {
	return m.ListBySellerFunc(ctx, sellerID, status, page, limit)
}

func (m *mockOrderLister) Summary(ctx context.Context, sellerID string) (map[string]int, float64, int, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, sellerID)
	}
	return map[string]int{}, 0, 0, nil
}

func TestListOrders_ClampsPageAndLimit(t *testing.T) {
	var gotPage, gotLimit int
	lister := &mockOrderLister{
		ListBySellerFunc: func(ctx context.Context, sellerID string, status *domain.Status, page, limit int) ([]domain.Order, int, error) {
			gotPage, gotLimit = page, limit
			return nil, 0, nil
		},
	}
	svc := NewQueryService(lister, zap.NewNop())

	if _, err := svc.ListOrders(context.Background(), "seller-1", nil, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPage != 1 || gotLimit != defaultPageLimit {
		t.Errorf("expected page 1 limit %d, got page %d limit %d", defaultPageLimit, gotPage, gotLimit)
	}

	if _, err := svc.ListOrders(context.Background(), "seller-1", nil, 2, 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != maxPageLimit {
		t.Errorf("expected limit clamped to %d, got %d", maxPageLimit, gotLimit)
	}
}

func TestListOrders_SummaryCoversAllStatuses(t *testing.T) {
	var gotStatus *domain.Status
	lister := &mockOrderLister{
		ListBySellerFunc: func(ctx context.Context, sellerID string, status *domain.Status, page, limit int) ([]domain.Order, int, error) {
			gotStatus = status
			return []domain.Order{{ID: "ord-1", Status: domain.StatusPending, TotalAmount: 42.5}}, 1, nil
		},
		SummaryFunc: func(ctx context.Context, sellerID string) (map[string]int, float64, int, error) {
			return map[string]int{"pending": 1, "delivered": 4}, 310.0, 5, nil
		},
	}
	svc := NewQueryService(lister, zap.NewNop())

	status := domain.StatusPending
	data, err := svc.ListOrders(context.Background(), "seller-1", &status, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStatus == nil || *gotStatus != domain.StatusPending {
		t.Errorf("filter must reach the repository, got %v", gotStatus)
	}
	// The summary stays seller-wide even when the list is filtered.
	if data.Summary.TotalOrders != 5 || data.Summary.TotalRevenue != 310.0 {
		t.Errorf("unexpected summary: %+v", data.Summary)
	}
	if data.Summary.StatusBreakdown["delivered"] != 4 {
		t.Errorf("breakdown must include statuses outside the filter: %+v", data.Summary.StatusBreakdown)
	}
	if len(data.Orders) != 1 || data.Orders[0].ID != "ord-1" {
		t.Errorf("unexpected orders payload: %+v", data.Orders)
	}
}

func TestListOrders_PaginationFromTotal(t *testing.T) {
	lister := &mockOrderLister{
		ListBySellerFunc: func(ctx context.Context, sellerID string, status *domain.Status, page, limit int) ([]domain.Order, int, error) {
			return make([]domain.Order, 10), 23, nil
		},
	}
	svc := NewQueryService(lister, zap.NewNop())

	data, err := svc.ListOrders(context.Background(), "seller-1", nil, 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := data.Pagination
	if p.Total != 23 || p.Page != 2 || p.Limit != 10 || p.Pages != 3 {
		t.Errorf("unexpected pagination: %+v", p)
	}
}
