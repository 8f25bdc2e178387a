package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-logbook/internal/config"
	"go-logbook/internal/ledger"
	"go-logbook/internal/policy"
	"go-logbook/internal/shared/password"
	"go-logbook/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Admin runs operator tasks that bypass the HTTP policy layer.
type Admin struct {
	in     *infra
	m      *modules
	logger *zap.Logger
}

func OpenAdmin(cfg config.Config) (*Admin, error) {
	logger := zap.L().Named("app.admin")

	in, err := connect(cfg)
	if err != nil {
		return nil, err
	}
	m, err := newModules(cfg, in.db, in.rdb, logger)
	if err != nil {
		in.close()
		return nil, err
	}
	return &Admin{in: in, m: m, logger: logger}, nil
}

func (a *Admin) Close() {
	a.in.close()
}

func (a *Admin) CreateSuperuser(ctx context.Context, email, fullName, pw string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if err := password.Validate(pw); err != nil {
		return err
	}

	if _, err := a.m.userRepo.FindByEmailIncludingDeleted(ctx, email); err == nil {
		return fmt.Errorf("user with email %s already exists", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := password.Hash(pw)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         policy.RoleSuperAdmin,
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
	}
	if err := a.m.userRepo.Create(ctx, u); err != nil {
		return fmt.Errorf("create superuser: %w", err)
	}

	a.logger.Info("superuser created", zap.String("user_id", u.ID.String()), zap.String("email", email))
	return nil
}

// RestoreUser reactivates a soft-deleted account by email.
func (a *Admin) RestoreUser(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	found, err := a.m.userRepo.FindByEmailIncludingDeleted(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("no user with email %s", email)
	}
	if err != nil {
		return err
	}

	var u *user.User
	err = a.in.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := a.m.userRepo.WithTx(tx)
		u, err = qtx.FindByIDIncludingDeletedForUpdate(ctx, found.ID)
		if err != nil {
			return err
		}
		if !u.IsDeleted {
			return fmt.Errorf("user %s is not deleted", email)
		}
		u.Restore()
		u.UpdatedAt = time.Now().UTC()
		if err := qtx.Update(ctx, u); err != nil {
			return fmt.Errorf("restore user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info("user restored", zap.String("user_id", u.ID.String()))
	return nil
}

func (a *Admin) ReconcileLedger(ctx context.Context) (ledger.ReconcileResult, error) {
	return a.m.reconciler().RunOnce(ctx)
}
