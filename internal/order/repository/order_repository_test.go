package repository

import (
	"context"
	"testing"
	"time"

	"fincarts/internal/domain"
	apperrors "fincarts/internal/errors"
	"fincarts/internal/testutil"
)

func TestOrderRepository_ListBySeller(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	testutil.SeedSeller(t, db, "seller-1")
	testutil.SeedListing(t, db, "fish-1", "seller-1", "Atlantic Salmon", 25.0)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testutil.SeedOrder(t, db, "ord-1", "seller-1", "fish-1", "pending", 50.0, base)
	testutil.SeedOrder(t, db, "ord-2", "seller-1", "fish-1", "delivered", 25.0, base.Add(time.Hour))
	testutil.SeedOrder(t, db, "ord-3", "seller-1", "fish-1", "cancelled", 75.0, base.Add(2*time.Hour))

	repo := NewMySQLOrderRepository(db)

	orders, total, err := repo.ListBySeller(context.Background(), "seller-1", nil, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(orders) != 3 {
		t.Fatalf("expected 3 orders, got total=%d len=%d", total, len(orders))
	}
	// Newest first.
	if orders[0].ID != "ord-3" || orders[2].ID != "ord-1" {
		t.Errorf("unexpected ordering: %s, %s, %s", orders[0].ID, orders[1].ID, orders[2].ID)
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].Listing == nil {
		t.Errorf("items must be hydrated with their listing: %+v", orders[0].Items)
	}

	status := domain.StatusPending
	filtered, total, err := repo.ListBySeller(context.Background(), "seller-1", &status, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(filtered) != 1 || filtered[0].ID != "ord-1" {
		t.Errorf("expected only the pending order, got total=%d %+v", total, filtered)
	}
}

func TestOrderRepository_SummaryExcludesCancelledRevenue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	testutil.SeedSeller(t, db, "seller-1")
	testutil.SeedListing(t, db, "fish-1", "seller-1", "Atlantic Salmon", 25.0)

	base := time.Now().UTC().Truncate(time.Second)
	testutil.SeedOrder(t, db, "ord-1", "seller-1", "fish-1", "delivered", 100.0, base)
	testutil.SeedOrder(t, db, "ord-2", "seller-1", "fish-1", "shipped", 40.0, base)
	testutil.SeedOrder(t, db, "ord-3", "seller-1", "fish-1", "cancelled", 500.0, base)

	repo := NewMySQLOrderRepository(db)

	breakdown, revenue, totalOrders, err := repo.Summary(context.Background(), "seller-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totalOrders != 3 {
		t.Errorf("expected 3 orders in summary, got %d", totalOrders)
	}
	if revenue != 140.0 {
		t.Errorf("cancelled orders must not count toward revenue, got %f", revenue)
	}
	if breakdown["cancelled"] != 1 || breakdown["delivered"] != 1 {
		t.Errorf("unexpected breakdown: %v", breakdown)
	}
}

func TestOrderRepository_UpdateStatusAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	testutil.SeedSeller(t, db, "seller-1")
	testutil.SeedListing(t, db, "fish-1", "seller-1", "Atlantic Salmon", 25.0)
	testutil.SeedOrder(t, db, "ord-1", "seller-1", "fish-1", "pending", 25.0, time.Now().UTC())

	repo := NewMySQLOrderRepository(db)

	if err := repo.UpdateStatus(context.Background(), "ord-1", domain.StatusConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := repo.FindByID(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.StatusConfirmed {
		t.Errorf("expected confirmed, got %s", order.Status)
	}

	_, err = repo.FindByID(context.Background(), "no-such-order")
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestOrderRepository_AttachReceipt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	testutil.SeedSeller(t, db, "seller-1")
	testutil.SeedListing(t, db, "fish-1", "seller-1", "Atlantic Salmon", 25.0)
	testutil.SeedOrder(t, db, "ord-1", "seller-1", "fish-1", "processing", 25.0, time.Now().UTC())

	repo := NewMySQLOrderRepository(db)

	url := "https://assets.example.com/receipts/ord-1.jpg"
	if err := repo.AttachReceipt(context.Background(), "ord-1", url, "ship-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := repo.FindByID(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Shipping == nil || order.Shipping.Receipt != url {
		t.Errorf("expected receipt on shipping details, got %+v", order.Shipping)
	}
	if order.Status != domain.StatusProcessing {
		t.Errorf("attaching a receipt must not change the status, got %s", order.Status)
	}

	// Idempotent on repeat upload.
	if err := repo.AttachReceipt(context.Background(), "ord-1", url+"?v=2", "ship-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, err = repo.FindByID(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Shipping.Receipt != url+"?v=2" {
		t.Errorf("expected the newer receipt, got %s", order.Shipping.Receipt)
	}
}
