package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeConflict         ErrorCode = "RES_004"

	// Validation errors
	ErrorCodeBadRequest ErrorCode = "VAL_002"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// ErrorResponse is the body of every non-2xx API response.
// Message is what clients display; Code is stable for programmatic checks.
type ErrorResponse struct {
	Message string    `json:"message" example:"Course not found"`
	Code    ErrorCode `json:"code,omitempty" example:"RES_001"`
}

// NewErrorResponse creates an error body
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Message: message,
		Code:    code,
	}
}
