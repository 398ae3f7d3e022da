package listing

import (
	"database/sql"

	"go.uber.org/zap"

	"fincarts/internal/listing/repository"
	"fincarts/internal/listing/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := service.NewService(repo)
	useCase := NewSearchUseCase(svc)

	return NewController(useCase, logger)
}
