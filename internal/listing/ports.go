package listing

import (
	"context"

	"fincarts/internal/domain"
)

type SearchUseCase interface {
	SearchListings(ctx context.Context, req SearchListingsRequest) (*SearchListingsResponse, error)
}

type Service interface {
	GetListingsByIDsAndSeller(ctx context.Context, ids []string, sellerID string) (found []domain.Listing, notFoundIDs []string, err error)
}

type Repository interface {
	FindByIDsAndSeller(ctx context.Context, ids []string, sellerID string) ([]domain.Listing, error)
}
