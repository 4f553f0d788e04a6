package dto

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error" example:"Resource not found"`
}

// MessageResponse is returned by deletes and other operations without a record
type MessageResponse struct {
	Message string `json:"message" example:"Exam deleted successfully"`
}

// ListResponse wraps every collection. Records is never null.
type ListResponse[T any] struct {
	Records []T `json:"records"`
}

// NewListResponse returns records wrapped, with nil turned into an empty slice
func NewListResponse[T any](records []T) ListResponse[T] {
	if records == nil {
		records = []T{}
	}
	return ListResponse[T]{Records: records}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2024-05-01T10:00:00Z"`
}

// setIf stores *value under column when value is not nil
func setIf[T any](fields map[string]interface{}, column string, value *T) {
	if value != nil {
		fields[column] = *value
	}
}
