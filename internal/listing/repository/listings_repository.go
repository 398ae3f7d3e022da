package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"fincarts/internal/domain"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindByIDsAndSeller(ctx context.Context, ids []string, sellerID string) ([]domain.Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf(`
		SELECT id, seller_id, name, description, price, stock, category, images,
		       is_active, created_at, updated_at
		FROM fish_listings
		WHERE seller_id = ? AND id IN (%s)
	`, placeholders)

	args := make([]any, 0, len(ids)+1)
	args = append(args, sellerID)
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		var rawImages string
		err := rows.Scan(
			&l.ID, &l.SellerID, &l.Name, &l.Description, &l.Price, &l.Stock,
			&l.Category, &rawImages, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning listing row: %w", err)
		}
		if rawImages != "" {
			if err := json.Unmarshal([]byte(rawImages), &l.Images); err != nil {
				return nil, fmt.Errorf("decoding listing images: %w", err)
			}
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listing rows: %w", err)
	}

	return listings, nil
}
