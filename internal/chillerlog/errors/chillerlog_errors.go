package chillerlogerrors

import (
	"net/http"

	"go-logbook/internal/shared/apperror"
)

var (
	ErrChillerLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Chiller log not found.",
		http.StatusNotFound,
	)

	ErrInvalidChillerLogID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid chiller log ID",
		http.StatusBadRequest,
	)

	ErrRemarksRequired = apperror.New(
		apperror.CodeValidationError,
		"Remarks are required when equipment status differs from the first log of the day.",
		http.StatusBadRequest,
	)

	ErrImmutableAfterApproval = apperror.New(
		apperror.CodeInvalidState,
		"The first log of the day cannot be edited after it has been approved.",
		http.StatusBadRequest,
	)

	ErrInvalidEquipmentStatus = apperror.New(
		apperror.CodeValidationError,
		"Status must be ON or OFF.",
		http.StatusBadRequest,
	)

	ErrInvalidChillerLog = apperror.New(
		apperror.CodeValidationError,
		"Chiller log has invalid fields.",
		http.StatusBadRequest,
	)

	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeValidationError,
		"Invalid status.",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeValidationError,
		"Date must be formatted as YYYY-MM-DD.",
		http.StatusBadRequest,
	)
)
