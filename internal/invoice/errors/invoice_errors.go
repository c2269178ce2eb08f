package invoiceerrors

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
)

var (
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invoice not found",
		http.StatusNotFound,
	)

	ErrInvalidPaymentAmount = apperror.New(
		apperror.CodeValidation,
		"Payment amount must be greater than zero",
		http.StatusBadRequest,
	)

	ErrNotDeleted = apperror.New(
		apperror.CodeInvalidState,
		"Invoice is not deleted",
		http.StatusConflict,
	)
)
