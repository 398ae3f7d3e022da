package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fincarts/internal/domain"
	"fincarts/internal/errors"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	AttachReceipt(ctx context.Context, orderID, receiptURL, shippingID string) error
}

type SellerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Seller, error)
}

// ActionService applies seller actions to orders. It is the authoritative
// side of the lifecycle: transitions happen here or not at all, and the
// resulting status is what clients read back.
type ActionService struct {
	orders  OrderRepository
	sellers SellerRepository
	logger  *zap.Logger
}

func NewActionService(orders OrderRepository, sellers SellerRepository, logger *zap.Logger) *ActionService {
	return &ActionService{
		orders:  orders,
		sellers: sellers,
		logger:  logger,
	}
}

// Perform validates and applies a single action. Accept moves pending to
// confirmed, decline cancels any non-terminal order, receipt attaches the
// uploaded proof of payment without touching the status.
func (s *ActionService) Perform(
	ctx context.Context,
	sellerID, orderID string,
	action domain.Action,
	receiptURL string,
) (domain.Status, error) {
	if _, err := s.sellers.FindByID(ctx, sellerID); err != nil {
		if _, ok := errors.IsNotFoundError(err); ok {
			return "", errors.NewForbiddenError("unknown seller")
		}
		return "", err
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	if order.SellerID != sellerID {
		s.logger.Warn("order action for foreign order",
			zap.String("orderId", orderID),
			zap.String("sellerId", sellerID))
		return "", errors.NewForbiddenError("order belongs to another seller")
	}

	if !domain.ActionAllowed(order.Status, action) {
		return "", errors.NewConflictError(
			fmt.Sprintf("action %s is not allowed while order is %s", action, order.Status))
	}

	if action == domain.ActionReceipt {
		if receiptURL == "" {
			return "", errors.NewValidationError("receipt is required", errors.ValidationDetail{
				Field:   "receipt",
				Message: "receipt must be a hosted asset url",
			})
		}
		if err := s.orders.AttachReceipt(ctx, orderID, receiptURL, uuid.New().String()); err != nil {
			return "", err
		}
		s.logger.Info("receipt attached",
			zap.String("orderId", orderID),
			zap.String("status", order.Status.String()))
		// Status moves only after receipt validation, which is not part
		// of this service.
		return order.Status, nil
	}

	next, changed := domain.NextStatus(order.Status, action)
	if !changed || !domain.CanTransition(order.Status, next) {
		return "", errors.NewConflictError(
			fmt.Sprintf("cannot move order from %s via %s", order.Status, action))
	}

	if err := s.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return "", err
	}

	s.logger.Info("order status updated",
		zap.String("orderId", orderID),
		zap.String("from", order.Status.String()),
		zap.String("to", next.String()))

	return next, nil
}
