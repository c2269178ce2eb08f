package payrollerrors

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeValidation,
		"month must use the YYYY-MM format",
		http.StatusBadRequest,
	)

	ErrMonthNotFound = apperror.New(
		apperror.CodeNotFound,
		"No payroll data for the requested month",
		http.StatusNotFound,
	)
)
