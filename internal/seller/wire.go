package seller

import (
	"database/sql"

	"go.uber.org/zap"

	"fincarts/internal/seller/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLSellerRepository(db)
	return NewController(repo, logger)
}
