package dto

// HealthResponse reports liveness and store reachability
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Store  string `json:"store" example:"up"`
}
