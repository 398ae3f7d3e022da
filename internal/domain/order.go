package domain

import "time"

type Order struct {
	ID          string
	OrderRef    string
	SellerID    string
	Status      Status
	TotalAmount float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []OrderItem
	Customer    Customer
	Shipping    *ShippingDetails
	Payment     *PaymentDetails
}

type OrderItem struct {
	ID        string
	ListingID string
	Quantity  int
	UnitPrice float64
	Listing   *Listing
}

// Customer is a denormalized buyer contact snapshot taken at order time.
type Customer struct {
	ID       string
	FullName string
	Email    string
	Phone    string
}

type ShippingDetails struct {
	ID                string
	Carrier           string
	Receipt           string
	TrackingNumber    string
	ShippingMethod    string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
}

type PaymentDetails struct {
	ID            string
	PaymentMethod string
	Status        string
	PaymentDate   *time.Time
}
