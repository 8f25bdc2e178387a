package passwordreset

import (
	"net/http"

	passwordreseterrors "go-logbook/internal/passwordreset/errors"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("passwordreset.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("passwordreset.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("password reset request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// ForgotPassword answers identically whether or not the email exists, and
// also when persisting the token fails.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.logger.Error("forgot password failed", zap.Error(err))
	}

	response.Success(c, http.StatusOK, MessageResponse{Message: passwordreseterrors.MsgResetRequested}, nil)
}

func (h *Handler) ValidateToken(c *gin.Context) {
	var req ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ValidateToken(c.Request.Context(), req.Token); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ValidateTokenResponse{Valid: true}, nil)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, MessageResponse{Message: passwordreseterrors.MsgResetDone}, nil)
}
