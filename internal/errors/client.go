package errors

import "fmt"

// Client-side failure taxonomy for the seller app. Every failure is caught
// at the asynchronous call site and converted to a user notification; none
// is retried automatically.

// FetchError covers network or non-success responses on the orders list
// endpoint. The screen shows a full retry affordance, never partial data.
type FetchError struct {
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func NewFetchError(message string, cause error) *FetchError {
	return &FetchError{Message: message, Cause: cause}
}

func IsFetchError(err error) (*FetchError, bool) {
	if fe, ok := err.(*FetchError); ok {
		return fe, true
	}
	return nil, false
}

// ActionError covers a failed or rejected order action. No local state is
// mutated when one of these is returned.
type ActionError struct {
	OrderID string
	Action  string
	Message string
	Cause   error
}

func (e *ActionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("order %s action %s: %s: %v", e.OrderID, e.Action, e.Message, e.Cause)
	}
	return fmt.Sprintf("order %s action %s: %s", e.OrderID, e.Action, e.Message)
}

func (e *ActionError) Unwrap() error {
	return e.Cause
}

func NewActionError(orderID, action, message string, cause error) *ActionError {
	return &ActionError{OrderID: orderID, Action: action, Message: message, Cause: cause}
}

func IsActionError(err error) (*ActionError, bool) {
	if ae, ok := err.(*ActionError); ok {
		return ae, true
	}
	return nil, false
}

// UploadError covers the asset host returning no URL. The order action
// endpoint is never called for that attempt.
type UploadError struct {
	Message string
	Cause   error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}

func NewUploadError(message string, cause error) *UploadError {
	return &UploadError{Message: message, Cause: cause}
}

func IsUploadError(err error) (*UploadError, bool) {
	if ue, ok := err.(*UploadError); ok {
		return ue, true
	}
	return nil, false
}

// PermissionError covers a refused device media or camera permission.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

func NewPermissionError(message string) *PermissionError {
	return &PermissionError{Message: message}
}

func IsPermissionError(err error) (*PermissionError, bool) {
	if pe, ok := err.(*PermissionError); ok {
		return pe, true
	}
	return nil, false
}
