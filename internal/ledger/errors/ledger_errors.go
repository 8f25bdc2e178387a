package ledgererrors

import (
	"net/http"

	"go-logbook/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Report not found.",
		http.StatusNotFound,
	)

	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report ID",
		http.StatusBadRequest,
	)

	ErrInvalidReportType = apperror.New(
		apperror.CodeValidationError,
		"Invalid report type.",
		http.StatusBadRequest,
	)
)
