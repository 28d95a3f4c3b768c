package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pekka-mall/sso-service/internal/domain"
	"github.com/pekka-mall/sso-service/internal/service"
)

type SSOHandler struct {
	svc *service.SSOService
}

// RegisterSSO mounts the public SSO endpoints plus the token-protected
// /v1/user/me route.
func RegisterSSO(e *echo.Echo, svc *service.SSOService) {
	h := &SSOHandler{svc: svc}

	e.GET("/user/check/:data/:type", h.CheckAvailability)
	e.POST("/user/register", h.Register)
	e.POST("/user/login", h.Login)
	e.GET("/user/token/:token", h.GetUserByToken)
	e.POST("/user/logout/:token", h.Logout)

	v1 := e.Group("/v1")
	v1.Use(RequireAuth(svc))
	v1.GET("/user/me", h.Me)
}

func (h *SSOHandler) CheckAvailability(c echo.Context) error {
	fieldCode, err := strconv.Atoi(c.Param("type"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail(http.StatusBadRequest, service.ErrInvalidField.Error()))
	}

	available, err := h.svc.CheckAvailability(c.Request().Context(), c.Param("data"), domain.UserField(fieldCode))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(available))
}

func (h *SSOHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail(http.StatusBadRequest, "invalid request body"))
	}

	user := &domain.User{
		Username: req.Username,
		Password: &req.Password,
		Phone:    req.Phone,
		Email:    req.Email,
	}
	if err := h.svc.Register(c.Request().Context(), user); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(nil))
}

func (h *SSOHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail(http.StatusBadRequest, "invalid request body"))
	}

	token, err := h.svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(token))
}

func (h *SSOHandler) GetUserByToken(c echo.Context) error {
	user, err := h.svc.GetUserByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(user))
}

func (h *SSOHandler) Logout(c echo.Context) error {
	if err := h.svc.Logout(c.Request().Context(), c.Param("token")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(nil))
}

func (h *SSOHandler) Me(c echo.Context) error {
	user, found := CurrentUser(c)
	if !found {
		return c.JSON(http.StatusUnauthorized, fail(http.StatusUnauthorized, "authentication required"))
	}
	return c.JSON(http.StatusOK, ok(user))
}

// respondError maps service failures onto the envelope. Client errors keep
// their message; anything else is a dependency failure and stays generic.
func respondError(c echo.Context, err error) error {
	if service.IsClientError(err) {
		return c.JSON(http.StatusBadRequest, fail(http.StatusBadRequest, err.Error()))
	}
	c.Logger().Errorf("sso: %v", err)
	return c.JSON(http.StatusInternalServerError, fail(http.StatusInternalServerError, "service temporarily unavailable"))
}
