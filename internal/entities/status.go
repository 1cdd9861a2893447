package entities

type StatusResponse struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ConnectionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    string `json:"user"`
	Email   string `json:"email"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool    `json:"success"`
	Error   string  `json:"error"`
	Details *string `json:"details,omitempty"`
}
