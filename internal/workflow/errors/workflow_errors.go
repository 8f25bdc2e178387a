package workflowerrors

import (
	"net/http"

	"go-logbook/internal/shared/apperror"
)

var (
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidAction,
		`Invalid action. Use "approve" or "reject".`,
		http.StatusBadRequest,
	)

	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Entry cannot move to the requested status from its current status.",
		http.StatusConflict,
	)

	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Entry not found.",
		http.StatusNotFound,
	)

	ErrInvalidEntryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid entry ID",
		http.StatusBadRequest,
	)
)
