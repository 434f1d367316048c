package dto

type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}
