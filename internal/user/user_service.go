package user

import (
	"context"
	"errors"
	"time"

	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/password"
	usererrors "go-logbook/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionRevoker ends every live session of a user. tx may be nil.
type SessionRevoker interface {
	RevokeAllSessions(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type Service interface {
	Create(ctx context.Context, actor *policy.Actor, req CreateUserRequest) (UserResponse, error)
	GetByID(ctx context.Context, actor *policy.Actor, id string) (UserResponse, error)
	List(ctx context.Context, actor *policy.Actor, q ListUsersQuery) ([]UserResponse, int64, error)
	Update(ctx context.Context, actor *policy.Actor, id string, req UpdateUserRequest) (UserResponse, error)
	SoftDelete(ctx context.Context, actor *policy.Actor, id string) error
	Restore(ctx context.Context, actor *policy.Actor, id string) (UserResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	policy   *policy.Engine
	sessions SessionRevoker
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, engine *policy.Engine, sessions SessionRevoker, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		policy:   engine,
		sessions: sessions,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) Create(ctx context.Context, actor *policy.Actor, req CreateUserRequest) (UserResponse, error) {
	log := s.log(ctx)
	role, ok := policy.ParseRole(req.Role)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidRole.Field("role")
	}
	log.Debug("create user requested", zap.String("role", string(role)))

	if err := s.policy.Explain(actor, policy.ActionUserCreate, &policy.Target{Role: role}); err != nil {
		log.Warn("create user denied", zap.String("actor_role", string(actor.Role)), zap.String("role", string(role)), zap.Error(err))
		return UserResponse{}, usererrors.ErrRoleNotAssignable
	}

	email := NormalizeEmail(req.Email)
	if err := s.checkEmailAvailable(ctx, s.repo, email); err != nil {
		return UserResponse{}, err
	}

	if err := password.Validate(req.Password); err != nil {
		return UserResponse{}, apperror.FieldError("password", err.Error())
	}
	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error("create user hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	u := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     isActive,
		IsStaff:      role == policy.RoleSuperAdmin,
		IsSuperuser:  role == policy.RoleSuperAdmin,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if mapped := mapRepositoryError(err); errors.Is(mapped, errEmailTaken) {
			log.Warn("create user lost email race", zap.String("email", email))
			return UserResponse{}, s.resolveEmailConflict(ctx, s.repo, email)
		}
		log.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	log.Info("create user success", zap.String("user_id", u.ID.String()), zap.String("role", string(role)))
	return mapToResponse(*u), nil
}

func (s *service) GetByID(ctx context.Context, actor *policy.Actor, id string) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if u.ID != actor.ID && !s.policy.Can(actor, policy.ActionUserManage, &policy.Target{ID: u.ID, Role: u.Role}) {
		return UserResponse{}, apperror.ErrForbidden
	}
	return mapToResponse(*u), nil
}

func (s *service) List(ctx context.Context, actor *policy.Actor, q ListUsersQuery) ([]UserResponse, int64, error) {
	visible := s.policy.ManageableRoles(actor.Role)
	if len(visible) == 0 {
		return nil, 0, apperror.ErrForbidden
	}
	if q.IncludeDeleted && !s.policy.Can(actor, policy.ActionUserListDeleted, nil) {
		return nil, 0, usererrors.ErrIncludeDeletedForbidden
	}

	roles := visible
	if q.Role != "" {
		r, ok := policy.ParseRole(q.Role)
		if !ok {
			return nil, 0, usererrors.ErrInvalidRole.Field("role")
		}
		if !containsRole(visible, r) {
			return []UserResponse{}, 0, nil
		}
		roles = []policy.Role{r}
	}

	users, total, err := s.repo.List(ctx, ListFilter{
		Roles:          roles,
		Search:         q.Search,
		IncludeDeleted: q.IncludeDeleted,
		Page:           q.Page,
		PageSize:       q.PageSize,
	})
	if err != nil {
		s.log(ctx).Error("list users failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(users), total, nil
}

func (s *service) Update(ctx context.Context, actor *policy.Actor, id string, req UpdateUserRequest) (UserResponse, error) {
	log := s.log(ctx)
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	log.Debug("update user requested", zap.String("user_id", id))

	var out User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		u, err := qtx.FindByIDForUpdate(ctx, uid)
		if err != nil {
			return mapRepositoryError(err)
		}

		target := &policy.Target{ID: u.ID, Role: u.Role}
		if req.Role != nil {
			newRole, ok := policy.ParseRole(*req.Role)
			if !ok {
				return usererrors.ErrInvalidRole.Field("role")
			}
			target.NewRole = newRole
		}
		if err := s.policy.Explain(actor, policy.ActionUserManage, target); err != nil {
			log.Warn("update user denied", zap.String("user_id", id), zap.Error(err))
			return manageDenial(actor, u, err)
		}

		revoke := false
		if req.Email != nil {
			email := NormalizeEmail(*req.Email)
			if email != u.Email {
				if err := s.checkEmailAvailable(ctx, qtx, email); err != nil {
					return err
				}
				u.Email = email
			}
		}
		if req.Password != nil {
			if err := password.Validate(*req.Password); err != nil {
				return apperror.FieldError("password", err.Error())
			}
			hash, err := password.Hash(*req.Password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
			revoke = true
		}
		if req.FullName != nil {
			u.FullName = *req.FullName
		}
		if req.Phone != nil {
			u.Phone = *req.Phone
		}
		if target.NewRole != "" {
			u.Role = target.NewRole
			u.IsStaff = u.Role == policy.RoleSuperAdmin
			u.IsSuperuser = u.Role == policy.RoleSuperAdmin
		}
		if req.IsActive != nil {
			if u.IsActive && !*req.IsActive {
				revoke = true
			}
			u.IsActive = *req.IsActive
		}

		if err := qtx.Update(ctx, u); err != nil {
			if errors.Is(mapRepositoryError(err), errEmailTaken) {
				return s.resolveEmailConflict(ctx, s.repo, u.Email)
			}
			return err
		}

		if revoke && s.sessions != nil {
			if err := s.sessions.RevokeAllSessions(ctx, tx, u.ID); err != nil {
				return err
			}
		}
		out = *u
		return nil
	})
	if err != nil {
		return UserResponse{}, err
	}

	log.Info("update user success", zap.String("user_id", id), zap.String("role", string(out.Role)))
	return mapToResponse(out), nil
}

func (s *service) SoftDelete(ctx context.Context, actor *policy.Actor, id string) error {
	log := s.log(ctx)
	uid, err := uuid.Parse(id)
	if err != nil {
		return usererrors.ErrInvalidUserID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		u, err := qtx.FindByIDForUpdate(ctx, uid)
		if err != nil {
			return mapRepositoryError(err)
		}

		if err := s.policy.Explain(actor, policy.ActionUserDelete, &policy.Target{ID: u.ID, Role: u.Role}); err != nil {
			log.Warn("delete user denied", zap.String("user_id", id), zap.Error(err))
			switch {
			case errors.Is(err, policy.ErrSelfDelete):
				return usererrors.ErrCannotDeleteSelf
			case errors.Is(err, policy.ErrSuperAdminDelete):
				return usererrors.ErrCannotDeleteSuperAdmin
			default:
				return manageDenial(actor, u, err)
			}
		}

		u.MarkDeleted(s.now())
		if err := qtx.Update(ctx, u); err != nil {
			return err
		}
		if s.sessions != nil {
			return s.sessions.RevokeAllSessions(ctx, tx, u.ID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("soft delete user success", zap.String("user_id", id))
	return nil
}

func (s *service) Restore(ctx context.Context, actor *policy.Actor, id string) (UserResponse, error) {
	log := s.log(ctx)
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	var u *User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		u, err = qtx.FindByIDIncludingDeletedForUpdate(ctx, uid)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := s.policy.Explain(actor, policy.ActionUserRestore, &policy.Target{ID: u.ID, Role: u.Role}); err != nil {
			return manageDenial(actor, u, err)
		}
		if u.Lifecycle() != LifecycleDeleted {
			return usererrors.ErrUserNotDeleted
		}

		u.Restore()
		if err := qtx.Update(ctx, u); err != nil {
			log.Error("restore user persist failed", zap.String("user_id", id), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return UserResponse{}, err
	}

	log.Info("restore user success", zap.String("user_id", id))
	return mapToResponse(*u), nil
}

func (s *service) checkEmailAvailable(ctx context.Context, repo Repository, email string) error {
	existing, err := repo.FindByEmailIncludingDeleted(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return emailConflict(existing)
}

// resolveEmailConflict runs after a unique violation so the racing caller
// gets the same error the pre-check would have produced.
func (s *service) resolveEmailConflict(ctx context.Context, repo Repository, email string) error {
	existing, err := repo.FindByEmailIncludingDeleted(ctx, email)
	if err != nil {
		return usererrors.ErrDuplicateEmail.Field("email")
	}
	return emailConflict(existing)
}

func emailConflict(existing *User) error {
	if existing.Lifecycle() == LifecycleDeleted {
		return usererrors.SoftDeletedConflict(existing.ID)
	}
	return usererrors.ErrDuplicateEmail.Field("email")
}

func manageDenial(actor *policy.Actor, target *User, err error) error {
	switch {
	case errors.Is(err, policy.ErrSelfRoleChange):
		return usererrors.ErrCannotChangeOwnRole
	case errors.Is(err, policy.ErrSuperAdminRole):
		return usererrors.ErrCannotChangeSuperAdminRole
	case errors.Is(err, policy.ErrTargetRoleForbidden):
		return usererrors.ErrRoleNotAssignable
	case actor.Role == policy.RoleManager && target.Role == policy.RoleManager:
		return usererrors.ErrManagerCannotModifyManager
	default:
		return apperror.ErrForbidden
	}
}

func containsRole(roles []policy.Role, r policy.Role) bool {
	for _, v := range roles {
		if v == r {
			return true
		}
	}
	return false
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		FullName:    u.FullName,
		Phone:       u.Phone,
		Role:        string(u.Role),
		RoleLabel:   u.Role.Label(),
		IsActive:    u.IsActive,
		IsDeleted:   u.IsDeleted,
		DeletedAt:   formatTime(u.DeletedAt),
		LastLoginAt: formatTime(u.LastLoginAt),
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp
}

// ToResponse exposes the response mapping for the auth module's /me.
func ToResponse(u User) UserResponse {
	return mapToResponse(u)
}
