package user

import (
	"errors"
	"strings"

	usererrors "go-logbook/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const emailConstraint = "uq_users_email"

var errEmailTaken = errors.New("email unique constraint violated")

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == emailConstraint {
			return errEmailTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, emailConstraint) {
		return errEmailTaken
	}

	return err
}

// NormalizeEmail lowercases and trims so that uniqueness is case insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
