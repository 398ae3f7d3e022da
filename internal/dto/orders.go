package dto

import (
	"strings"
	"time"

	"fincarts/internal/domain"
)

// Wire types for the seller order endpoints. Field names follow the
// mobile app contract (snake_case, buyer snapshot under "users").

type OrdersResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    OrdersData `json:"data"`
}

type OrdersData struct {
	Orders     []OrderDTO `json:"orders"`
	Pagination Pagination `json:"pagination"`
	Summary    Summary    `json:"summary"`
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count; pages = ceil(total/limit) and
// page is 1-indexed.
func NewPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

// Summary aggregates over the seller's whole order set, not the current
// page or filter.
type Summary struct {
	TotalRevenue    float64        `json:"totalRevenue"`
	TotalOrders     int            `json:"totalOrders"`
	StatusBreakdown map[string]int `json:"statusBreakdown"`
}

type OrderDTO struct {
	ID              string              `json:"id"`
	OrderRef        string              `json:"order_id"`
	TotalAmount     float64             `json:"total_amount"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	Users           UserDTO             `json:"users"`
	OrderItems      []OrderItemDTO      `json:"order_items"`
	ShippingDetails *ShippingDetailsDTO `json:"shipping_details,omitempty"`
	PaymentDetails  *PaymentDetailsDTO  `json:"payment_details,omitempty"`
}

type UserDTO struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type OrderItemDTO struct {
	ID           string         `json:"id"`
	Quantity     int            `json:"quantity"`
	Price        float64        `json:"price"`
	FishListings ListingSnippet `json:"fish_listings"`
}

type ListingSnippet struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Images []string `json:"images"`
	Price  float64  `json:"price"`
}

type ShippingDetailsDTO struct {
	ID                string `json:"id"`
	Carrier           string `json:"carrier"`
	Receipt           string `json:"receipt"`
	TrackingNumber    string `json:"tracking_number"`
	ShippingMethod    string `json:"shipping_method"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
	ActualDelivery    string `json:"actual_delivery,omitempty"`
}

type PaymentDetailsDTO struct {
	ID            string `json:"id"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	PaymentDate   string `json:"payment_date,omitempty"`
}

func FromOrder(o domain.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		dtoItem := OrderItemDTO{
			ID:       item.ID,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		}
		if item.Listing != nil {
			dtoItem.FishListings = ListingSnippet{
				ID:     item.Listing.ID,
				Name:   item.Listing.Name,
				Images: item.Listing.Images,
				Price:  item.Listing.Price,
			}
		} else {
			dtoItem.FishListings = ListingSnippet{ID: item.ListingID}
		}
		items = append(items, dtoItem)
	}

	out := OrderDTO{
		ID:          o.ID,
		OrderRef:    o.OrderRef,
		TotalAmount: o.TotalAmount,
		Status:      o.Status.String(),
		CreatedAt:   o.CreatedAt,
		Users: UserDTO{
			ID:          o.Customer.ID,
			FullName:    o.Customer.FullName,
			Email:       o.Customer.Email,
			PhoneNumber: o.Customer.Phone,
		},
		OrderItems: items,
	}

	if o.Shipping != nil {
		out.ShippingDetails = &ShippingDetailsDTO{
			ID:             o.Shipping.ID,
			Carrier:        o.Shipping.Carrier,
			Receipt:        o.Shipping.Receipt,
			TrackingNumber: o.Shipping.TrackingNumber,
			ShippingMethod: o.Shipping.ShippingMethod,
		}
		if o.Shipping.EstimatedDelivery != nil {
			out.ShippingDetails.EstimatedDelivery = o.Shipping.EstimatedDelivery.Format(time.RFC3339)
		}
		if o.Shipping.ActualDelivery != nil {
			out.ShippingDetails.ActualDelivery = o.Shipping.ActualDelivery.Format(time.RFC3339)
		}
	}

	if o.Payment != nil {
		out.PaymentDetails = &PaymentDetailsDTO{
			ID:            o.Payment.ID,
			PaymentMethod: o.Payment.PaymentMethod,
			Status:        o.Payment.Status,
		}
		if o.Payment.PaymentDate != nil {
			out.PaymentDetails.PaymentDate = o.Payment.PaymentDate.Format(time.RFC3339)
		}
	}

	return out
}

// ToDomain rebuilds a domain order from the wire shape. Unknown statuses
// are kept as-is after lowercasing so a newer server does not break older
// clients.
func (d OrderDTO) ToDomain() domain.Order {
	status, err := domain.ParseStatus(d.Status)
	if err != nil {
		status = domain.Status(strings.ToLower(d.Status))
	}

	items := make([]domain.OrderItem, 0, len(d.OrderItems))
	for _, item := range d.OrderItems {
		items = append(items, domain.OrderItem{
			ID:        item.ID,
			ListingID: item.FishListings.ID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Listing: &domain.Listing{
				ID:     item.FishListings.ID,
				Name:   item.FishListings.Name,
				Images: item.FishListings.Images,
				Price:  item.FishListings.Price,
			},
		})
	}

	out := domain.Order{
		ID:          d.ID,
		OrderRef:    d.OrderRef,
		Status:      status,
		TotalAmount: d.TotalAmount,
		CreatedAt:   d.CreatedAt,
		Items:       items,
		Customer: domain.Customer{
			ID:       d.Users.ID,
			FullName: d.Users.FullName,
			Email:    d.Users.Email,
			Phone:    d.Users.PhoneNumber,
		},
	}

	if d.ShippingDetails != nil {
		out.Shipping = &domain.ShippingDetails{
			ID:             d.ShippingDetails.ID,
			Carrier:        d.ShippingDetails.Carrier,
			Receipt:        d.ShippingDetails.Receipt,
			TrackingNumber: d.ShippingDetails.TrackingNumber,
			ShippingMethod: d.ShippingDetails.ShippingMethod,
		}
	}

	if d.PaymentDetails != nil {
		out.Payment = &domain.PaymentDetails{
			ID:            d.PaymentDetails.ID,
			PaymentMethod: d.PaymentDetails.PaymentMethod,
			Status:        d.PaymentDetails.Status,
		}
	}

	return out
}
