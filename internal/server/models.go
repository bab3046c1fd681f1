package server

import (
	"time"

	"github.com/san-kum/sortviz/internal/animation"
)

// ApiResponse is the envelope every endpoint returns.
type ApiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// CreateRequest creates a sequence. Size is free text (a JSON string or
// number) and is validated the same way as the terminal input field.
// Values, when present, replaces the random sequence.
type CreateRequest struct {
	Size   any   `json:"size"`
	Values []int `json:"values"`
}

type AlgorithmRequest struct {
	Name string `json:"name" binding:"required"`
}

type IntervalRequest struct {
	Ms int `json:"ms" binding:"required"`
}

type AlgorithmInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
	Selected   string          `json:"selected"`
	Total      int             `json:"total"`
}

type FrameResponse = animation.Status

type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Uptime    time.Duration `json:"uptime"`
	Version   string        `json:"version"`
}
