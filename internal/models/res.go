package models

type ApiResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	Error     string            `json:"error,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

func ValidationErrorResponse(ve *ValidationError) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   "validation failed",
		Details: ve.Fields,
	}
}
