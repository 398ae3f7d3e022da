package listing

import (
	"context"
)

type searchUseCase struct {
	service Service
}

func NewSearchUseCase(service Service) SearchUseCase {
	return &searchUseCase{service: service}
}

func (uc *searchUseCase) SearchListings(ctx context.Context, req SearchListingsRequest) (*SearchListingsResponse, error) {
	found, notFoundIDs, err := uc.service.GetListingsByIDsAndSeller(ctx, req.ListingIDs, req.SellerID)
	if err != nil {
		return nil, err
	}

	listings := make([]ListingDTO, 0, len(found))
	for _, l := range found {
		listings = append(listings, ListingDTO{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
			Price:       l.Price,
			Stock:       l.Stock,
			Category:    l.Category,
			Images:      l.Images,
			IsActive:    l.IsActive,
			InStock:     l.InStock(),
		})
	}

	if notFoundIDs == nil {
		notFoundIDs = []string{}
	}

	return &SearchListingsResponse{
		Listings: listings,
		NotFound: notFoundIDs,
	}, nil
}
