package middleware

import (
	"net/http"
	"strings"

	"solarshare-backend/internal/domain/user"
	"solarshare-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

const (
	ctxUserID = "auth.user_id"
	ctxRole   = "auth.role"
)

// Authenticate verifies the bearer token and stashes the caller's identity
// on the echo context.
func Authenticate(uc *auth.Usecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no token provided"})
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "malformed authorization header"})
			}
			claims, err := uc.ParseToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			c.Set(ctxUserID, claims.UserID)
			c.Set(ctxRole, claims.Role)
			return next(c)
		}
	}
}

// RequireRoles gates a route to the given roles. Must run after
// Authenticate.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, _ := c.Get(ctxRole).(string)
			for _, r := range roles {
				if got == string(r) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
		}
	}
}

// CallerID returns the authenticated user's public ID, empty when the
// request is unauthenticated.
func CallerID(c echo.Context) string {
	v, _ := c.Get(ctxUserID).(string)
	return v
}

// CallerRole returns the authenticated user's role.
func CallerRole(c echo.Context) string {
	v, _ := c.Get(ctxRole).(string)
	return v
}
