package listing

type SearchListingsRequest struct {
	SellerID   string   `json:"sellerId"`
	ListingIDs []string `json:"listingIds"`
}

type SearchListingsResponse struct {
	Listings []ListingDTO `json:"listings"`
	NotFound []string     `json:"notFound"`
}

type ListingDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       *int     `json:"stock"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	IsActive    bool     `json:"isActive"`
	InStock     bool     `json:"inStock"`
}
