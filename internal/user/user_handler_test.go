package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/response"
	"go-logbook/internal/user"
	usererrors "go-logbook/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	apperror.Init()
}

type fakeUserService struct {
	CreateFn     func(ctx context.Context, actor *policy.Actor, req user.CreateUserRequest) (user.UserResponse, error)
	GetByIDFn    func(ctx context.Context, actor *policy.Actor, id string) (user.UserResponse, error)
	ListFn       func(ctx context.Context, actor *policy.Actor, q user.ListUsersQuery) ([]user.UserResponse, int64, error)
	UpdateFn     func(ctx context.Context, actor *policy.Actor, id string, req user.UpdateUserRequest) (user.UserResponse, error)
	SoftDeleteFn func(ctx context.Context, actor *policy.Actor, id string) error
	RestoreFn    func(ctx context.Context, actor *policy.Actor, id string) (user.UserResponse, error)
}

func (f *fakeUserService) Create(ctx context.Context, actor *policy.Actor, req user.CreateUserRequest) (user.UserResponse, error) {
	return f.CreateFn(ctx, actor, req)
}
func (f *fakeUserService) GetByID(ctx context.Context, actor *policy.Actor, id string) (user.UserResponse, error) {
	return f.GetByIDFn(ctx, actor, id)
}
func (f *fakeUserService) List(ctx context.Context, actor *policy.Actor, q user.ListUsersQuery) ([]user.UserResponse, int64, error) {
	return f.ListFn(ctx, actor, q)
}
func (f *fakeUserService) Update(ctx context.Context, actor *policy.Actor, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	return f.UpdateFn(ctx, actor, id, req)
}
func (f *fakeUserService) SoftDelete(ctx context.Context, actor *policy.Actor, id string) error {
	return f.SoftDeleteFn(ctx, actor, id)
}
func (f *fakeUserService) Restore(ctx context.Context, actor *policy.Actor, id string) (user.UserResponse, error) {
	return f.RestoreFn(ctx, actor, id)
}

func newTestContext(method, target, body string, actor *policy.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	if actor != nil {
		c.Set(contextutil.GinActorKey, actor)
	}
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestUserHandler_Create(t *testing.T) {
	manager := &policy.Actor{ID: uuid.New(), Role: policy.RoleManager}

	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			CreateFn: func(ctx context.Context, actor *policy.Actor, req user.CreateUserRequest) (user.UserResponse, error) {
				assert.Equal(t, manager, actor)
				assert.Equal(t, "operator", req.Role)
				return user.UserResponse{ID: uuid.New().String(), Email: req.Email, Role: req.Role}, nil
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/v1/users",
			`{"email":"op@plant.test","password":"Chiller#2024","role":"operator","name":"Op One"}`, manager)

		user.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, w.Body.String(), "op@plant.test")
	})

	t.Run("validation error carries field details", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/api/v1/users", `{"email":"not-an-email","role":"operator"}`, manager)

		user.NewHandler(&fakeUserService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, apperror.CodeValidationError, env.Error.Code)
		assert.Equal(t, "Enter a valid email address.", env.Error.Details["email"])
		assert.Equal(t, "This field is required.", env.Error.Details["password"])
	})

	t.Run("soft deleted conflict", func(t *testing.T) {
		deletedID := uuid.New()
		svc := &fakeUserService{
			CreateFn: func(ctx context.Context, actor *policy.Actor, req user.CreateUserRequest) (user.UserResponse, error) {
				return user.UserResponse{}, usererrors.SoftDeletedConflict(deletedID)
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/v1/users",
			`{"email":"gone@plant.test","password":"Chiller#2024","role":"operator"}`, manager)

		user.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Contains(t, env.Error.Details["email"], deletedID.String())
	})
}

func TestUserHandler_List(t *testing.T) {
	admin := &policy.Actor{ID: uuid.New(), Role: policy.RoleSuperAdmin}
	svc := &fakeUserService{
		ListFn: func(ctx context.Context, actor *policy.Actor, q user.ListUsersQuery) ([]user.UserResponse, int64, error) {
			assert.True(t, q.IncludeDeleted)
			assert.Equal(t, 2, q.Page)
			assert.Equal(t, 20, q.PageSize)
			return []user.UserResponse{{ID: "a"}}, 21, nil
		},
	}
	c, w := newTestContext(http.MethodGet, "/api/v1/users?include_deleted=true&page=2", "", admin)

	user.NewHandler(svc).List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(21), env.Meta.Total)
	assert.Equal(t, 2, env.Meta.TotalPages)
}

func TestUserHandler_Delete(t *testing.T) {
	admin := &policy.Actor{ID: uuid.New(), Role: policy.RoleSuperAdmin}

	t.Run("no content", func(t *testing.T) {
		targetID := uuid.New().String()
		svc := &fakeUserService{
			SoftDeleteFn: func(ctx context.Context, actor *policy.Actor, id string) error {
				assert.Equal(t, targetID, id)
				return nil
			},
		}
		c, w := newTestContext(http.MethodDelete, "/api/v1/users/"+targetID, "", admin)
		c.Params = gin.Params{{Key: "id", Value: targetID}}

		user.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusNoContent, c.Writer.Status())
		assert.Empty(t, w.Body.String())
	})

	t.Run("self delete", func(t *testing.T) {
		svc := &fakeUserService{
			SoftDeleteFn: func(ctx context.Context, actor *policy.Actor, id string) error {
				return usererrors.ErrCannotDeleteSelf
			},
		}
		c, w := newTestContext(http.MethodDelete, "/api/v1/users/"+admin.ID.String(), "", admin)
		c.Params = gin.Params{{Key: "id", Value: admin.ID.String()}}

		user.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "You cannot delete your own account.", decodeEnvelope(t, w).Error.Message)
	})
}

func TestUserHandler_Update(t *testing.T) {
	manager := &policy.Actor{ID: uuid.New(), Role: policy.RoleManager}
	targetID := uuid.New().String()
	svc := &fakeUserService{
		UpdateFn: func(ctx context.Context, actor *policy.Actor, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
			require.NotNil(t, req.Role)
			assert.Nil(t, req.Email)
			return user.UserResponse{}, usererrors.ErrManagerCannotModifyManager
		},
	}
	c, w := newTestContext(http.MethodPatch, "/api/v1/users/"+targetID, `{"role":"supervisor"}`, manager)
	c.Params = gin.Params{{Key: "id", Value: targetID}}

	user.NewHandler(svc).Update(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperror.CodeForbidden, decodeEnvelope(t, w).Error.Code)
}
