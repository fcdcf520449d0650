package employeeerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrLeaveAlreadyApplied = apperror.New(
		apperror.CodeConflict,
		"Leave has already been deducted from the balance",
		http.StatusConflict,
	)
	ErrUnknownLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown leave type",
		http.StatusBadRequest,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"Leave days must be positive",
		http.StatusBadRequest,
	)
)
