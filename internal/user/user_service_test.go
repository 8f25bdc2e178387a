package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/testutil"
	"go-logbook/internal/user"
	usererrors "go-logbook/internal/user/errors"
	mock_user "go-logbook/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRevoker struct {
	calls []uuid.UUID
	err   error
}

func (f *fakeRevoker) RevokeAllSessions(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	f.calls = append(f.calls, userID)
	return f.err
}

type userServiceDeps struct {
	repo     *mock_user.MockRepository
	sqlMock  sqlmock.Sqlmock
	sessions *fakeRevoker
	service  user.Service
}

func setupUserServiceTest(t *testing.T) *userServiceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_user.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	db, mock := testutil.NewGormMock(t)
	engine, err := policy.NewEngine()
	require.NoError(t, err)
	sessions := &fakeRevoker{}

	return &userServiceDeps{
		repo:     repo,
		sqlMock:  mock,
		sessions: sessions,
		service:  user.NewService(db, repo, engine, sessions),
	}
}

func newActor(role policy.Role) *policy.Actor {
	return &policy.Actor{ID: uuid.New(), Role: role, Email: string(role) + "@plant.test"}
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes email and hashes password", func(t *testing.T) {
		deps := setupUserServiceTest(t)

		deps.repo.EXPECT().FindByEmailIncludingDeleted(gomock.Any(), "op.one@plant.test").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *user.User) error {
			assert.Equal(t, "op.one@plant.test", u.Email)
			assert.Equal(t, policy.RoleOperator, u.Role)
			assert.True(t, u.IsActive)
			assert.False(t, u.IsDeleted)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Chiller#2024")))
			return nil
		})

		resp, err := deps.service.Create(ctx, newActor(policy.RoleManager), user.CreateUserRequest{
			Email:    "  Op.One@Plant.TEST ",
			Password: "Chiller#2024",
			Role:     "operator",
		})

		require.NoError(t, err)
		assert.Equal(t, "op.one@plant.test", resp.Email)
		assert.Equal(t, "operator", resp.Role)
	})

	t.Run("duplicate active email", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		deps.repo.EXPECT().FindByEmailIncludingDeleted(gomock.Any(), "dup@plant.test").
			Return(&user.User{ID: uuid.New(), Email: "dup@plant.test", IsActive: true}, nil)

		_, err := deps.service.Create(ctx, newActor(policy.RoleSuperAdmin), user.CreateUserRequest{
			Email: "dup@plant.test", Password: "Chiller#2024", Role: "supervisor",
		})

		assert.ErrorIs(t, err, usererrors.ErrDuplicateEmail)
		assert.False(t, usererrors.IsSoftDeletedConflict(err))
	})

	t.Run("email of soft deleted user points at restore", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		deletedID := uuid.New()
		deletedAt := time.Now()
		deps.repo.EXPECT().FindByEmailIncludingDeleted(gomock.Any(), "gone@plant.test").
			Return(&user.User{ID: deletedID, Email: "gone@plant.test", IsDeleted: true, DeletedAt: &deletedAt}, nil)

		_, err := deps.service.Create(ctx, newActor(policy.RoleSuperAdmin), user.CreateUserRequest{
			Email: "gone@plant.test", Password: "Chiller#2024", Role: "operator",
		})

		require.Error(t, err)
		assert.True(t, usererrors.IsSoftDeletedConflict(err))
		assert.Contains(t, err.Error(), deletedID.String())
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Contains(t, httpErr.Details["email"], "restore the existing user")
	})

	t.Run("racing insert resolves to the same conflict", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		deletedID := uuid.New()

		gomock.InOrder(
			deps.repo.EXPECT().FindByEmailIncludingDeleted(gomock.Any(), "race@plant.test").Return(nil, gorm.ErrRecordNotFound),
			deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}),
			deps.repo.EXPECT().FindByEmailIncludingDeleted(gomock.Any(), "race@plant.test").
				Return(&user.User{ID: deletedID, IsDeleted: true}, nil),
		)

		_, err := deps.service.Create(ctx, newActor(policy.RoleSuperAdmin), user.CreateUserRequest{
			Email: "race@plant.test", Password: "Chiller#2024", Role: "client",
		})

		assert.True(t, usererrors.IsSoftDeletedConflict(err))
	})

	t.Run("racing insert against active user", func(t *testing.T) {
		deps := setupUserServiceTest(t)

		gomock.InOrder(
			deps.repo.EXPECT().FindByEmailIncludingDeleted(gomock.Any(), "race@plant.test").Return(nil, gorm.ErrRecordNotFound),
			deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}),
			deps.repo.EXPECT().FindByEmailIncludingDeleted(gomock.Any(), "race@plant.test").
				Return(&user.User{ID: uuid.New(), IsActive: true}, nil),
		)

		_, err := deps.service.Create(ctx, newActor(policy.RoleSuperAdmin), user.CreateUserRequest{
			Email: "race@plant.test", Password: "Chiller#2024", Role: "client",
		})

		assert.ErrorIs(t, err, usererrors.ErrDuplicateEmail)
	})

	t.Run("manager cannot create manager", func(t *testing.T) {
		deps := setupUserServiceTest(t)

		_, err := deps.service.Create(ctx, newActor(policy.RoleManager), user.CreateUserRequest{
			Email: "m2@plant.test", Password: "Chiller#2024", Role: "manager",
		})

		assert.ErrorIs(t, err, usererrors.ErrRoleNotAssignable)
	})

	t.Run("weak password", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		deps.repo.EXPECT().FindByEmailIncludingDeleted(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, newActor(policy.RoleSuperAdmin), user.CreateUserRequest{
			Email: "weak@plant.test", Password: "12345678901", Role: "client",
		})

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, apperror.CodeValidationError, httpErr.Code)
		assert.Contains(t, httpErr.Details, "password")
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	role := func(r string) *string { return &r }

	t.Run("cannot change own role", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		admin := newActor(policy.RoleSuperAdmin)
		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), admin.ID).Return(&user.User{ID: admin.ID, Role: policy.RoleSuperAdmin}, nil)

		_, err := deps.service.Update(ctx, admin, admin.ID.String(), user.UpdateUserRequest{Role: role("manager")})

		assert.ErrorIs(t, err, usererrors.ErrCannotChangeOwnRole)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("manager cannot modify manager", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		targetID := uuid.New()
		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID).Return(&user.User{ID: targetID, Role: policy.RoleManager}, nil)

		name := "New Name"
		_, err := deps.service.Update(ctx, newActor(policy.RoleManager), targetID.String(), user.UpdateUserRequest{FullName: &name})

		assert.ErrorIs(t, err, usererrors.ErrManagerCannotModifyManager)
	})

	t.Run("super admin role cannot be changed", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		targetID := uuid.New()
		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID).Return(&user.User{ID: targetID, Role: policy.RoleSuperAdmin}, nil)

		_, err := deps.service.Update(ctx, newActor(policy.RoleSuperAdmin), targetID.String(), user.UpdateUserRequest{Role: role("operator")})

		assert.ErrorIs(t, err, usererrors.ErrCannotChangeSuperAdminRole)
	})

	t.Run("manager promotes operator to supervisor", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		targetID := uuid.New()
		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID).Return(&user.User{ID: targetID, Role: policy.RoleOperator, IsActive: true}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *user.User) error {
			assert.Equal(t, policy.RoleSupervisor, u.Role)
			return nil
		})

		resp, err := deps.service.Update(ctx, newActor(policy.RoleManager), targetID.String(), user.UpdateUserRequest{Role: role("supervisor")})

		require.NoError(t, err)
		assert.Equal(t, "supervisor", resp.Role)
		assert.Empty(t, deps.sessions.calls)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("deactivation revokes sessions", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		targetID := uuid.New()
		inactive := false
		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID).Return(&user.User{ID: targetID, Role: policy.RoleClient, IsActive: true}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.Update(ctx, newActor(policy.RoleSuperAdmin), targetID.String(), user.UpdateUserRequest{IsActive: &inactive})

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{targetID}, deps.sessions.calls)
	})

	t.Run("soft deleted target is not found", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		targetID := uuid.New()
		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, newActor(policy.RoleSuperAdmin), targetID.String(), user.UpdateUserRequest{})

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_SoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("self delete rejected", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		admin := newActor(policy.RoleSuperAdmin)
		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), admin.ID).Return(&user.User{ID: admin.ID, Role: policy.RoleSuperAdmin}, nil)

		err := deps.service.SoftDelete(ctx, admin, admin.ID.String())

		assert.ErrorIs(t, err, usererrors.ErrCannotDeleteSelf)
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
	})

	t.Run("super admin delete rejected", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		targetID := uuid.New()
		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID).Return(&user.User{ID: targetID, Role: policy.RoleSuperAdmin}, nil)

		err := deps.service.SoftDelete(ctx, newActor(policy.RoleSuperAdmin), targetID.String())

		assert.ErrorIs(t, err, usererrors.ErrCannotDeleteSuperAdmin)
		assert.Equal(t, 403, apperror.ToHTTP(err).Status)
	})

	t.Run("success marks deleted and revokes sessions", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		targetID := uuid.New()
		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID).Return(&user.User{ID: targetID, Role: policy.RoleOperator, IsActive: true}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *user.User) error {
			assert.True(t, u.IsDeleted)
			assert.False(t, u.IsActive)
			assert.NotNil(t, u.DeletedAt)
			assert.Equal(t, user.LifecycleDeleted, u.Lifecycle())
			return nil
		})

		err := deps.service.SoftDelete(ctx, newActor(policy.RoleManager), targetID.String())

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{targetID}, deps.sessions.calls)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("revocation failure rolls back", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		deps.sessions.err = errors.New("db down")
		targetID := uuid.New()
		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID).Return(&user.User{ID: targetID, Role: policy.RoleOperator}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		err := deps.service.SoftDelete(ctx, newActor(policy.RoleSuperAdmin), targetID.String())

		assert.EqualError(t, err, "db down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestUserService_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("restores a deleted user", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		targetID := uuid.New()
		deletedAt := time.Now()
		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().FindByIDIncludingDeletedForUpdate(gomock.Any(), targetID).
			Return(&user.User{ID: targetID, Role: policy.RoleOperator, IsDeleted: true, DeletedAt: &deletedAt}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *user.User) error {
			assert.False(t, u.IsDeleted)
			assert.True(t, u.IsActive)
			assert.Nil(t, u.DeletedAt)
			return nil
		})

		resp, err := deps.service.Restore(ctx, newActor(policy.RoleSuperAdmin), targetID.String())

		require.NoError(t, err)
		assert.False(t, resp.IsDeleted)
		assert.True(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("active user cannot be restored", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		targetID := uuid.New()
		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByIDIncludingDeletedForUpdate(gomock.Any(), targetID).
			Return(&user.User{ID: targetID, Role: policy.RoleOperator, IsActive: true}, nil)

		_, err := deps.service.Restore(ctx, newActor(policy.RoleSuperAdmin), targetID.String())

		assert.ErrorIs(t, err, usererrors.ErrUserNotDeleted)
	})
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("manager only sees managed roles", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		deps.repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, f user.ListFilter) ([]user.User, int64, error) {
			assert.Equal(t, []policy.Role{policy.RoleSupervisor, policy.RoleOperator, policy.RoleClient}, f.Roles)
			assert.False(t, f.IncludeDeleted)
			return []user.User{{ID: uuid.New(), Email: "op@plant.test", Role: policy.RoleOperator}}, 1, nil
		})

		resp, total, err := deps.service.List(ctx, newActor(policy.RoleManager), user.ListUsersQuery{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, resp, 1)
	})

	t.Run("include deleted is super admin only", func(t *testing.T) {
		deps := setupUserServiceTest(t)

		_, _, err := deps.service.List(ctx, newActor(policy.RoleManager), user.ListUsersQuery{IncludeDeleted: true})

		assert.ErrorIs(t, err, usererrors.ErrIncludeDeletedForbidden)
	})

	t.Run("operator cannot list users", func(t *testing.T) {
		deps := setupUserServiceTest(t)

		_, _, err := deps.service.List(ctx, newActor(policy.RoleOperator), user.ListUsersQuery{})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}
