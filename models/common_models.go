package models

import "time"

// Response status constants
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BaseRequest represents common request fields
type BaseRequest struct {
	SessionID string    `json:"session_id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// BaseResponse represents common response fields
type BaseResponse struct {
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewSuccess returns a BaseResponse stamped now with StatusSuccess.
func NewSuccess() BaseResponse {
	return BaseResponse{Status: StatusSuccess, Timestamp: time.Now()}
}

// NewFailure returns a BaseResponse carrying a user-facing error message.
func NewFailure(msg string) BaseResponse {
	return BaseResponse{Status: StatusError, Error: msg, Timestamp: time.Now()}
}
