package leaveerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeValidation,
		"leaveType must be one of annual, sick, personal, unpaid",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"End date cannot be before start date",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been decided",
		http.StatusConflict,
	)
	ErrStoreCorrupted = apperror.New(
		apperror.CodeInternalError,
		"leave store contains unreadable data",
		http.StatusInternalServerError,
	)
	ErrStoresDiverged = apperror.New(
		apperror.CodeInternalError,
		"leave request was saved to only one of the stores",
		http.StatusInternalServerError,
	)
	ErrMissingApplicant = apperror.New(
		apperror.CodeUnauthorized,
		"applicant identity is missing",
		http.StatusUnauthorized,
	)
)
