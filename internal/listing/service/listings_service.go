package service

import (
	"context"

	"fincarts/internal/domain"
)

type Repository interface {
	FindByIDsAndSeller(ctx context.Context, ids []string, sellerID string) ([]domain.Listing, error)
}

type ListingService struct {
	repo Repository
}

func NewService(repo Repository) *ListingService {
	return &ListingService{repo: repo}
}

func (s *ListingService) GetListingsByIDsAndSeller(ctx context.Context, ids []string, sellerID string) ([]domain.Listing, []string, error) {
	found, err := s.repo.FindByIDsAndSeller(ctx, ids, sellerID)
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[string]struct{}, len(found))
	for _, l := range found {
		foundSet[l.ID] = struct{}{}
	}

	var notFoundIDs []string
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			notFoundIDs = append(notFoundIDs, id)
		}
	}

	return found, notFoundIDs, nil
}
