package repository

import (
	"context"
	"database/sql"
	"fmt"

	"fincarts/internal/domain"
	"fincarts/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, order_ref, seller_id, status, total_amount,
		       customer_id, customer_name, customer_email, customer_phone,
		       created_at, updated_at
		FROM orders
		WHERE id = ?
	`

	var order domain.Order
	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.OrderRef, &order.SellerID, &status, &order.TotalAmount,
		&order.Customer.ID, &order.Customer.FullName, &order.Customer.Email, &order.Customer.Phone,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	order.Status, err = domain.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", id, err)
	}

	if err := r.loadDetails(ctx, []*domain.Order{&order}); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListBySeller returns one page of the seller's orders plus the unfiltered
// total count for the given status filter. A nil status means all statuses.
func (r *MySQLOrderRepository) ListBySeller(
	ctx context.Context,
	sellerID string,
	status *domain.Status,
	page, limit int,
) ([]domain.Order, int, error) {
	countQuery := `SELECT COUNT(*) FROM orders WHERE seller_id = ?`
	listQuery := `
		SELECT id, order_ref, seller_id, status, total_amount,
		       customer_id, customer_name, customer_email, customer_phone,
		       created_at, updated_at
		FROM orders
		WHERE seller_id = ?
	`
	args := []any{sellerID}
	if status != nil {
		countQuery += ` AND status = ?`
		listQuery += ` AND status = ?`
		args = append(args, status.String())
	}
	listQuery += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting seller orders: %w", err)
	}

	offset := (page - 1) * limit
	rows, err := r.db.QueryContext(ctx, listQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing seller orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var rawStatus string
		err := rows.Scan(
			&order.ID, &order.OrderRef, &order.SellerID, &rawStatus, &order.TotalAmount,
			&order.Customer.ID, &order.Customer.FullName, &order.Customer.Email, &order.Customer.Phone,
			&order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning order row: %w", err)
		}
		if order.Status, err = domain.ParseStatus(rawStatus); err != nil {
			return nil, 0, fmt.Errorf("order %s: %w", order.ID, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating order rows: %w", err)
	}

	refs := make([]*domain.Order, len(orders))
	for i := range orders {
		refs[i] = &orders[i]
	}
	if err := r.loadDetails(ctx, refs); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// Summary aggregates status counts and revenue over the seller's whole
// order set, independent of any list filter.
func (r *MySQLOrderRepository) Summary(ctx context.Context, sellerID string) (map[string]int, float64, int, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE seller_id = ?
		GROUP BY status
	`

	rows, err := r.db.QueryContext(ctx, query, sellerID)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("querying order summary: %w", err)
	}
	defer rows.Close()

	breakdown := make(map[string]int)
	totalRevenue := 0.0
	totalOrders := 0
	for rows.Next() {
		var status string
		var count int
		var revenue float64
		if err := rows.Scan(&status, &count, &revenue); err != nil {
			return nil, 0, 0, fmt.Errorf("scanning summary row: %w", err)
		}
		breakdown[status] = count
		totalOrders += count
		if status != domain.StatusCancelled.String() {
			totalRevenue += revenue
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, fmt.Errorf("iterating summary rows: %w", err)
	}

	return breakdown, totalRevenue, totalOrders, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	query := `UPDATE orders SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status.String(), id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	return nil
}

// AttachReceipt stores the hosted receipt URL on the order's shipping
// record, creating the record if the order has none yet.
func (r *MySQLOrderRepository) AttachReceipt(ctx context.Context, orderID, receiptURL, shippingID string) error {
	query := `
		INSERT INTO shipping_details (id, order_id, receipt)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE receipt = VALUES(receipt)
	`

	if _, err := r.db.ExecContext(ctx, query, shippingID, orderID, receiptURL); err != nil {
		return fmt.Errorf("attaching receipt: %w", err)
	}

	return nil
}

// loadDetails hydrates items, shipping and payment records for the given
// orders in three batch queries.
func (r *MySQLOrderRepository) loadDetails(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Order, len(orders))
	ids := make([]any, 0, len(orders))
	placeholders := ""
	for i, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
		if i > 0 {
			placeholders += ","
		}
		placeholders += "?"
	}

	itemQuery := fmt.Sprintf(`
		SELECT oi.id, oi.order_id, oi.listing_id, oi.quantity, oi.unit_price,
		       fl.name, fl.price, fl.images
		FROM order_items oi
		JOIN fish_listings fl ON fl.id = oi.listing_id
		WHERE oi.order_id IN (%s)
		ORDER BY oi.order_id, oi.id
	`, placeholders)

	rows, err := r.db.QueryContext(ctx, itemQuery, ids...)
	if err != nil {
		return fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		var orderID, listingName, rawImages string
		var listingPrice float64
		if err := rows.Scan(&item.ID, &orderID, &item.ListingID, &item.Quantity, &item.UnitPrice,
			&listingName, &listingPrice, &rawImages); err != nil {
			return fmt.Errorf("scanning order item: %w", err)
		}
		item.Listing = &domain.Listing{
			ID:     item.ListingID,
			Name:   listingName,
			Price:  listingPrice,
			Images: decodeImages(rawImages),
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating order items: %w", err)
	}

	shippingQuery := fmt.Sprintf(`
		SELECT id, order_id, carrier, receipt, tracking_number, shipping_method,
		       estimated_delivery, actual_delivery
		FROM shipping_details
		WHERE order_id IN (%s)
	`, placeholders)

	shipRows, err := r.db.QueryContext(ctx, shippingQuery, ids...)
	if err != nil {
		return fmt.Errorf("querying shipping details: %w", err)
	}
	defer shipRows.Close()

	for shipRows.Next() {
		var s domain.ShippingDetails
		var orderID string
		if err := shipRows.Scan(&s.ID, &orderID, &s.Carrier, &s.Receipt, &s.TrackingNumber,
			&s.ShippingMethod, &s.EstimatedDelivery, &s.ActualDelivery); err != nil {
			return fmt.Errorf("scanning shipping details: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Shipping = &s
		}
	}
	if err := shipRows.Err(); err != nil {
		return fmt.Errorf("iterating shipping details: %w", err)
	}

	paymentQuery := fmt.Sprintf(`
		SELECT id, order_id, payment_method, status, payment_date
		FROM payment_details
		WHERE order_id IN (%s)
	`, placeholders)

	payRows, err := r.db.QueryContext(ctx, paymentQuery, ids...)
	if err != nil {
		return fmt.Errorf("querying payment details: %w", err)
	}
	defer payRows.Close()

	for payRows.Next() {
		var p domain.PaymentDetails
		var orderID string
		if err := payRows.Scan(&p.ID, &orderID, &p.PaymentMethod, &p.Status, &p.PaymentDate); err != nil {
			return fmt.Errorf("scanning payment details: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Payment = &p
		}
	}
	if err := payRows.Err(); err != nil {
		return fmt.Errorf("iterating payment details: %w", err)
	}

	return nil
}
