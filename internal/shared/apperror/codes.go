package apperror

const (
	// Client errors (4xx)
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Upstream / server errors (5xx)
	CodeFetchFailed   = "FETCH_FAILED"
	CodeInternalError = "INTERNAL_ERROR"
)
