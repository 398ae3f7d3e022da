package repository

import (
	"context"
	"database/sql"
	"fmt"

	"fincarts/internal/domain"
	"fincarts/internal/errors"
)

type MySQLSellerRepository struct {
	db *sql.DB
}

func NewMySQLSellerRepository(db *sql.DB) *MySQLSellerRepository {
	return &MySQLSellerRepository{db: db}
}

func (r *MySQLSellerRepository) FindByID(ctx context.Context, id string) (*domain.Seller, error) {
	query := `
		SELECT id, business_name, display_name, email, phone, status,
		       auto_accept_orders, default_warranty_period, return_window, min_order_value,
		       created_at, updated_at
		FROM sellers
		WHERE id = ?
	`

	var seller domain.Seller
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&seller.ID, &seller.BusinessName, &seller.DisplayName, &seller.Email,
		&seller.Phone, &seller.Status,
		&seller.Settings.AutoAcceptOrders, &seller.Settings.DefaultWarrantyPeriod,
		&seller.Settings.ReturnWindow, &seller.Settings.MinOrderValue,
		&seller.CreatedAt, &seller.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("seller %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying seller by id: %w", err)
	}

	return &seller, nil
}
