package domain

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus normalizes a raw status string. Comparisons are
// case-insensitive everywhere the status crosses the wire.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return s, nil
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
	ActionReceipt Action = "receipt"
)

func ParseAction(raw string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(raw)))
	switch a {
	case ActionAccept, ActionDecline, ActionReceipt:
		return a, nil
	}
	return "", fmt.Errorf("unknown order action %q", raw)
}

// allowedActions is the seller-facing contract: which actions an order in a
// given status offers. Statuses absent from the map are read-only.
var allowedActions = map[Status][]Action{
	StatusPending:    {ActionAccept, ActionDecline},
	StatusProcessing: {ActionReceipt, ActionDecline},
}

// AllowedActions returns the actions a seller may take on an order in the
// given status. The result is a pure function of the status.
func AllowedActions(s Status) []Action {
	actions := allowedActions[s]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// ActionAllowed reports whether the action is offered in the given status.
func ActionAllowed(s Status, a Action) bool {
	for _, allowed := range allowedActions[s] {
		if allowed == a {
			return true
		}
	}
	return false
}

// forwardStep is the single-step order lifecycle path.
var forwardStep = map[Status]Status{
	StatusPending:    StatusConfirmed,
	StatusConfirmed:  StatusProcessing,
	StatusProcessing: StatusShipped,
	StatusShipped:    StatusDelivered,
}

// CanTransition reports whether an order may move from one status to
// another. The lifecycle advances one step at a time; cancellation is
// reachable from any non-terminal status. Skip-ahead transitions are
// rejected.
func CanTransition(from, to Status) bool {
	if from.IsTerminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return forwardStep[from] == to
}

// NextStatus returns the status an action drives an order toward, and
// whether the action changes status at all. Uploading a receipt attaches
// evidence but leaves the status to server-side validation.
func NextStatus(current Status, a Action) (Status, bool) {
	switch a {
	case ActionAccept:
		if current == StatusPending {
			return StatusConfirmed, true
		}
	case ActionDecline:
		if !current.IsTerminal() {
			return StatusCancelled, true
		}
	case ActionReceipt:
		return current, false
	}
	return current, false
}
