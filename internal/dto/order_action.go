package dto

type ActionResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    ActionData `json:"data"`
}

type ActionData struct {
	Order ActionOrder `json:"order"`
}

// ActionOrder carries the authoritative status after an action. An empty
// Status means the response omitted the field; callers must not assume a
// transition happened.
type ActionOrder struct {
	Status string `json:"status,omitempty"`
}
