package service

import (
	"context"

	"go.uber.org/zap"

	"fincarts/internal/domain"
	"fincarts/internal/dto"
)

type OrderLister interface {
	ListBySeller(ctx context.Context, sellerID string, status *domain.Status, page, limit int) ([]domain.Order, int, error)
	Summary(ctx context.Context, sellerID string) (map[string]int, float64, int, error)
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// QueryService serves the order list endpoint: one page of orders for a
// status filter plus the seller-wide summary.
type QueryService struct {
	orders OrderLister
	logger *zap.Logger
}

func NewQueryService(orders OrderLister, logger *zap.Logger) *QueryService {
	return &QueryService{
		orders: orders,
		logger: logger,
	}
}

func (s *QueryService) ListOrders(
	ctx context.Context,
	sellerID string,
	status *domain.Status,
	page, limit int,
) (*dto.OrdersData, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	orders, total, err := s.orders.ListBySeller(ctx, sellerID, status, page, limit)
	if err != nil {
		return nil, err
	}

	breakdown, revenue, totalOrders, err := s.orders.Summary(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.FromOrder(o))
	}

	s.logger.Debug("orders listed",
		zap.String("sellerId", sellerID),
		zap.Int("page", page),
		zap.Int("returned", len(out)),
		zap.Int("total", total))

	return &dto.OrdersData{
		Orders:     out,
		Pagination: dto.NewPagination(total, page, limit),
		Summary: dto.Summary{
			TotalRevenue:    revenue,
			TotalOrders:     totalOrders,
			StatusBreakdown: breakdown,
		},
	}, nil
}
