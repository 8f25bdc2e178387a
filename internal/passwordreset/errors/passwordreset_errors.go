package passwordreseterrors

import (
	"net/http"

	"go-logbook/internal/shared/apperror"
)

const (
	MsgResetRequested = "If the email exists, a reset link has been sent."
	MsgResetDone      = "Password has been reset successfully."
)

var (
	ErrInvalidOrExpiredToken = apperror.New(
		apperror.CodeInvalidToken,
		"Invalid or expired token.",
		http.StatusBadRequest,
	).Field("token")

	ErrPasswordMismatch = apperror.New(
		apperror.CodeValidationError,
		"Passwords do not match.",
		http.StatusBadRequest,
	).Field("confirm_password")
)
