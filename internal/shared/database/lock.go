package database

import (
	"context"

	"gorm.io/gorm"
)

// AdvisoryXactLock takes a transaction scoped Postgres advisory lock on key.
// It is released on commit or rollback, so tx must be a transaction.
func AdvisoryXactLock(ctx context.Context, tx *gorm.DB, key string) error {
	return tx.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}
