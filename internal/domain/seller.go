package domain

import "time"

type Seller struct {
	ID           string
	BusinessName string
	DisplayName  string
	Email        string
	Phone        string
	Status       string
	Settings     SellerSettings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SellerSettings struct {
	AutoAcceptOrders      bool
	DefaultWarrantyPeriod int
	ReturnWindow          int
	MinOrderValue         float64
}
