package listing

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "fincarts/internal/errors"
)

type Controller struct {
	useCase SearchUseCase
	logger  *zap.Logger
}

func NewController(useCase SearchUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleSearchListings(w http.ResponseWriter, r *http.Request) {
	var req SearchListingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateSearchRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	resp, err := c.useCase.SearchListings(r.Context(), req)
	if err != nil {
		c.logger.Error("search listings failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) validateSearchRequest(req SearchListingsRequest) error {
	if req.SellerID == "" {
		msg := "sellerId is required"
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "sellerId",
			Message: msg,
		})
	}

	if len(req.ListingIDs) == 0 {
		msg := "listingIds is required"
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "listingIds",
			Message: "listingIds must not be empty",
		})
	}

	if len(req.ListingIDs) > 100 {
		msg := "listingIds exceeds maximum of 100"
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "listingIds",
			Message: msg,
		})
	}

	for _, id := range req.ListingIDs {
		if id == "" {
			msg := "each listingId must be non-empty"
			return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
				Field:   "listingIds",
				Message: msg,
			})
		}
	}

	return nil
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		c.logger.Error("encoding response", zap.Error(err))
	}
}
