package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeValidation,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// FetchFailed wraps a failed read against the Ledger Service. Reads are retried
// silently on the next poll tick; only the first failure of a view session is
// ever shown to a user.
func FetchFailed(err error) *AppError {
	return Wrap(err, CodeFetchFailed, "Ledger Service is unreachable", http.StatusBadGateway)
}

func RequiredField(field string) *AppError {
	return New(CodeValidation, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeValidation, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}
