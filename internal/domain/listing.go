package domain

import "time"

type Listing struct {
	ID          string
	SellerID    string
	Name        string
	Description string
	Price       float64
	Stock       *int
	Category    string
	Images      []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (l Listing) InStock() bool {
	return l.Stock == nil || *l.Stock > 0
}
