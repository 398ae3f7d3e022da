package order

import (
	"database/sql"

	"go.uber.org/zap"

	"fincarts/internal/order/controller"
	"fincarts/internal/order/repository"
	"fincarts/internal/order/service"
	sellerrepo "fincarts/internal/seller/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	orderRepo := repository.NewMySQLOrderRepository(db)
	sellerRepo := sellerrepo.NewMySQLSellerRepository(db)

	querySvc := service.NewQueryService(orderRepo, logger)
	actionSvc := service.NewActionService(orderRepo, sellerRepo, logger)

	return controller.NewController(querySvc, actionSvc, logger)
}
