package usererrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-logbook/internal/shared/apperror"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found.",
		http.StatusNotFound,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrDuplicateEmail = apperror.New(
		apperror.CodeConflict,
		"A user with this email already exists.",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeValidationError,
		"Invalid role.",
		http.StatusBadRequest,
	)

	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeInvalidInput,
		"You cannot delete your own account.",
		http.StatusBadRequest,
	)

	ErrCannotDeleteSuperAdmin = apperror.New(
		apperror.CodeForbidden,
		"Cannot delete Super Admin user.",
		http.StatusForbidden,
	)

	ErrManagerCannotModifyManager = apperror.New(
		apperror.CodeForbidden,
		"Managers cannot modify other Manager users.",
		http.StatusForbidden,
	)

	ErrCannotChangeSuperAdminRole = apperror.New(
		apperror.CodeForbidden,
		"Cannot change Super Admin role.",
		http.StatusForbidden,
	)

	ErrCannotChangeOwnRole = apperror.New(
		apperror.CodeForbidden,
		"You cannot change your own role.",
		http.StatusForbidden,
	)

	ErrRoleNotAssignable = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to assign this role.",
		http.StatusForbidden,
	)

	ErrIncludeDeletedForbidden = apperror.New(
		apperror.CodeForbidden,
		"Only Super Admin can list deleted users.",
		http.StatusForbidden,
	)

	ErrUserNotDeleted = apperror.New(
		apperror.CodeInvalidState,
		"User is not deleted.",
		http.StatusBadRequest,
	)
)

const softDeletedPrefix = "A user with this email already exists but is soft-deleted."

// SoftDeletedConflict points the caller at the existing deleted record.
func SoftDeletedConflict(id uuid.UUID) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("%s Please restore the existing user (ID: %s) or use a different email.", softDeletedPrefix, id),
		http.StatusBadRequest,
	).Field("email")
}

// IsSoftDeletedConflict matches errors built by SoftDeletedConflict.
func IsSoftDeletedConflict(err error) bool {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == apperror.CodeConflict && strings.HasPrefix(appErr.Message, softDeletedPrefix)
}
