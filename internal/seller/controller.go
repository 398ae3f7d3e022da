package seller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"fincarts/internal/domain"
	apperrors "fincarts/internal/errors"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*domain.Seller, error)
}

type Controller struct {
	repo   Repository
	logger *zap.Logger
}

func NewController(repo Repository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

type profileResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    profileDTO `json:"data,omitempty"`
}

type profileDTO struct {
	ID           string      `json:"id"`
	BusinessName string      `json:"business_name"`
	DisplayName  string      `json:"display_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Status       string      `json:"status"`
	Settings     settingsDTO `json:"settings"`
}

type settingsDTO struct {
	AutoAcceptOrders      bool    `json:"autoAcceptOrders"`
	DefaultWarrantyPeriod int     `json:"defaultWarrantyPeriod"`
	ReturnWindow          int     `json:"returnWindow"`
	MinOrderValue         float64 `json:"minOrderValue"`
}

// GetProfile handles GET /seller/profile/{sellerId}.
func (c *Controller) GetProfile(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerId")

	seller, err := c.repo.FindByID(r.Context(), sellerID)
	if err != nil {
		if nf, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, profileResponse{Success: false, Message: nf.Message})
			return
		}
		c.logger.Error("fetching seller profile", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, profileResponse{
			Success: false,
			Message: "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, profileResponse{
		Success: true,
		Message: "profile fetched",
		Data: profileDTO{
			ID:           seller.ID,
			BusinessName: seller.BusinessName,
			DisplayName:  seller.DisplayName,
			Email:        seller.Email,
			Phone:        seller.Phone,
			Status:       seller.Status,
			Settings: settingsDTO{
				AutoAcceptOrders:      seller.Settings.AutoAcceptOrders,
				DefaultWarrantyPeriod: seller.Settings.DefaultWarrantyPeriod,
				ReturnWindow:          seller.Settings.ReturnWindow,
				MinOrderValue:         seller.Settings.MinOrderValue,
			},
		},
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		c.logger.Error("encoding response", zap.Error(err))
	}
}
