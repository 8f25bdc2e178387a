package auth

import (
	"net/http"
	"time"

	"go-logbook/internal/middleware"
	"go-logbook/internal/shared/apperror"
	platform "go-logbook/internal/shared/request"
	"go-logbook/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const refreshTokenCookie = "refresh_token"

type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Handler struct {
	service Service
	cookies CookieConfig
	logger  *zap.Logger
}

func NewHandler(service Service, cookies CookieConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, cookies: cookies, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func clientMeta(c *gin.Context) ClientMeta {
	return ClientMeta{UserAgent: c.GetHeader("User-Agent"), IP: c.ClientIP()}
}

func (h *Handler) isWeb(c *gin.Context) bool {
	return platform.IsWebClient(platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent")))
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeTokens(c *gin.Context, resp AuthResponse) {
	if h.isWeb(c) {
		h.setCookie(c, middleware.AccessTokenCookie, resp.AccessToken, int(h.cookies.AccessTTL.Seconds()))
		h.setCookie(c, refreshTokenCookie, resp.RefreshToken, int(h.cookies.RefreshTTL.Seconds()))
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// refreshFrom reads the refresh token from the body, then the cookie.
func refreshFrom(c *gin.Context) string {
	var req RefreshRequest
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken != "" {
		return req.RefreshToken
	}
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
		return cookie
	}
	return ""
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req, clientMeta(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeTokens(c, resp)
}

func (h *Handler) Refresh(c *gin.Context) {
	resp, err := h.service.Refresh(c.Request.Context(), refreshFrom(c), clientMeta(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeTokens(c, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), refreshFrom(c)); err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setCookie(c, middleware.AccessTokenCookie, "", -1)
	h.setCookie(c, refreshTokenCookie, "", -1)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully."}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.Me(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
