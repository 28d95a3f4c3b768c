package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pekka-mall/sso-service/internal/domain"
	"github.com/pekka-mall/sso-service/internal/service"
)

const contextUserKey = "sso.user"

// RequireAuth resolves the bearer token through the session cache. Every
// successful pass extends the session by the full TTL.
func RequireAuth(svc *service.SSOService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if strings.TrimSpace(authHeader) == "" {
				return c.JSON(http.StatusUnauthorized, fail(http.StatusUnauthorized, "missing authorization header"))
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, fail(http.StatusUnauthorized, "invalid authorization header"))
			}

			user, err := svc.GetUserByToken(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				if service.IsClientError(err) {
					return c.JSON(http.StatusUnauthorized, fail(http.StatusUnauthorized, err.Error()))
				}
				return respondError(c, err)
			}
			c.Set(contextUserKey, user)
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, found := c.Get(contextUserKey).(*domain.User)
	return user, found
}
