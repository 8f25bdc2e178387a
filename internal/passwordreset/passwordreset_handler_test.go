package passwordreset_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-logbook/internal/passwordreset"
	passwordreseterrors "go-logbook/internal/passwordreset/errors"
	mock_pr "go-logbook/internal/passwordreset/mock"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func call(h gin.HandlerFunc, body string) (*httptest.ResponseRecorder, response.ApiEnvelope) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	h(c)

	var env response.ApiEnvelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler_ForgotPasswordIsUniform(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_pr.NewMockService(ctrl)
	h := passwordreset.NewHandler(svc)

	svc.EXPECT().ForgotPassword(gomock.Any(), "known@plant.test").Return(nil)
	svc.EXPECT().ForgotPassword(gomock.Any(), "ghost@plant.test").Return(nil)
	svc.EXPECT().ForgotPassword(gomock.Any(), "broken@plant.test").Return(errors.New("db down"))

	var bodies []string
	for _, email := range []string{"known@plant.test", "ghost@plant.test", "broken@plant.test"} {
		w, env := call(h.ForgotPassword, `{"email":"`+email+`"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Ok)
		bodies = append(bodies, w.Body.String())
	}
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[0], bodies[2])
	assert.Contains(t, bodies[0], passwordreseterrors.MsgResetRequested)
}

func TestHandler_ForgotPasswordRequiresEmail(t *testing.T) {
	h := passwordreset.NewHandler(mock_pr.NewMockService(gomock.NewController(t)))

	w, env := call(h.ForgotPassword, `{"email":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Enter a valid email address.", env.Error.Details["email"])
}

func TestHandler_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_pr.NewMockService(ctrl)
	h := passwordreset.NewHandler(svc)

	svc.EXPECT().ValidateToken(gomock.Any(), "good").Return(nil)
	w, env := call(h.ValidateToken, `{"token":"good"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"valid": true}, env.Data)

	svc.EXPECT().ValidateToken(gomock.Any(), "bad").Return(passwordreseterrors.ErrInvalidOrExpiredToken)
	w, env = call(h.ValidateToken, `{"token":"bad"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid or expired token.", env.Error.Details["token"])
}

func TestHandler_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_pr.NewMockService(ctrl)
	h := passwordreset.NewHandler(svc)

	svc.EXPECT().ResetPassword(gomock.Any(), passwordreset.ResetPasswordRequest{
		Token: "t", NewPassword: "Chiller#2024", ConfirmPassword: "Chiller#2024",
	}).Return(nil)

	w, env := call(h.ResetPassword, `{"token":"t","new_password":"Chiller#2024","confirm_password":"Chiller#2024"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"message": passwordreseterrors.MsgResetDone}, env.Data)
}
