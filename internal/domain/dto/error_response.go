package dto

import "time"

// ErrorResponse is the only error body returned by the API.
//
// Message is serialized under "error". ErrorDetails is filled only for client
// errors (4xx); for 5xx responses handlers pass a nil cause so that internal
// details stay in the server logs.
type ErrorResponse struct {
	Message      string    `json:"error" example:"Failed to fetch snapshots"`
	ErrorDetails string    `json:"details,omitempty" example:"strconv.ParseInt: parsing \"abc\": invalid syntax"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-12T10:00:00Z"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
//
// Parameters:
//   - message: the client-facing message.
//   - err: optional cause; its text becomes ErrorDetails when non-nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
