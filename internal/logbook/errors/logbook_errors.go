package logbookerrors

import (
	"net/http"

	"go-logbook/internal/shared/apperror"
)

var (
	ErrSchemaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Logbook not found.",
		http.StatusNotFound,
	)

	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Logbook entry not found.",
		http.StatusNotFound,
	)

	ErrInvalidSchemaID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid logbook ID",
		http.StatusBadRequest,
	)

	ErrInvalidEntryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid logbook entry ID",
		http.StatusBadRequest,
	)

	ErrInvalidRoles = apperror.New(
		apperror.CodeValidationError,
		"Invalid roles.",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = apperror.New(
		apperror.CodeValidationError,
		"Category must be one of utility, maintenance, quality, safety, validation or custom.",
		http.StatusBadRequest,
	)

	ErrInvalidFields = apperror.New(
		apperror.CodeValidationError,
		"Fields must be a JSON list.",
		http.StatusBadRequest,
	)

	ErrInvalidAttachments = apperror.New(
		apperror.CodeValidationError,
		"Attachments must be a JSON list.",
		http.StatusBadRequest,
	)

	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeValidationError,
		"Invalid status.",
		http.StatusBadRequest,
	)
)
