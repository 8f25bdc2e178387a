package app

import (
	"fmt"

	"go-logbook/internal/auth"
	"go-logbook/internal/chillerlog"
	"go-logbook/internal/ledger"
	"go-logbook/internal/logbook"
	"go-logbook/internal/messaging/kafka"
	"go-logbook/internal/passwordreset"
	"go-logbook/internal/user"

	"gorm.io/gorm"
)

// Migrate creates or widens the schema. Intended for development databases.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}
	if err := db.AutoMigrate(
		&user.User{},
		&auth.Session{},
		&passwordreset.Token{},
		&chillerlog.ChillerLog{},
		&chillerlog.ChillerStatusChange{},
		&logbook.Schema{},
		&logbook.RoleAssignment{},
		&logbook.Entry{},
		&ledger.Report{},
		&kafka.OutboxEvent{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
