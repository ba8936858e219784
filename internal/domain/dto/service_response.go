package dto

import "time"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp" example:"2025-09-12T10:00:00Z"`
}

// ServiceDescriptor is the body of GET /.
type ServiceDescriptor struct {
	Service     string            `json:"service" example:"arbpulse"`
	Version     string            `json:"version" example:"1.0"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}
