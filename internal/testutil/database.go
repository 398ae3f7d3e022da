package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"

	"fincarts/migrations"
)

// SetupTestDB opens the test database, skipping the test when it is not
// reachable. Expects a MySQL instance at localhost:3306 with a database
// named fincarts_test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "root:@tcp(localhost:3306)/fincarts_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("mysql"); err != nil {
		t.Fatalf("setting goose dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}

// CleanupTestDB empties all tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	if db == nil {
		return
	}

	tables := []string{"payment_details", "shipping_details", "order_items", "orders", "fish_listings", "sellers"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SeedSeller inserts a seller row for fixtures.
func SeedSeller(t *testing.T, db *sql.DB, id string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO sellers (id, business_name, display_name, email)
		VALUES (?, ?, ?, ?)`,
		id, "Fincarts Test Aquatics", "Test Aquatics", fmt.Sprintf("%s@example.com", id),
	)
	if err != nil {
		t.Fatalf("seeding seller: %v", err)
	}
}

// SeedListing inserts a fish listing owned by the seller.
func SeedListing(t *testing.T, db *sql.DB, id, sellerID, name string, price float64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO fish_listings (id, seller_id, name, price, images)
		VALUES (?, ?, ?, ?, '[]')`,
		id, sellerID, name, price,
	)
	if err != nil {
		t.Fatalf("seeding listing: %v", err)
	}
}

// SeedOrder inserts an order with one line item.
func SeedOrder(t *testing.T, db *sql.DB, id, sellerID, listingID, status string, amount float64, createdAt time.Time) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO orders (id, order_ref, seller_id, status, total_amount,
		                    customer_id, customer_name, customer_email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, "FC-"+id, sellerID, status, amount,
		"cust-"+id, "Test Customer", "customer@example.com", createdAt,
	)
	if err != nil {
		t.Fatalf("seeding order: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO order_items (id, order_id, listing_id, quantity, unit_price)
		VALUES (?, ?, ?, 1, ?)`,
		"item-"+id, id, listingID, amount,
	)
	if err != nil {
		t.Fatalf("seeding order item: %v", err)
	}
}
