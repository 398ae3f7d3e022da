package session

import "fincarts/internal/errors"

// Session is the authenticated seller identity, injected explicitly into
// the client components instead of being read from ambient state.
type Session struct {
	SellerID string
}

func New(sellerID string) (Session, error) {
	if sellerID == "" {
		return Session{}, errors.NewValidationError("sellerId is required", errors.ValidationDetail{
			Field:   "sellerId",
			Message: "a session needs a seller id",
		})
	}
	return Session{SellerID: sellerID}, nil
}
