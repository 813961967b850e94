// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
)

// RequireUserType checks if the authenticated user has one of the allowed
// user types. Authorization is decided here, never by per-handler string
// comparisons.
func RequireUserType(allowedTypes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType := ExtractUserType(c)
			if userType == "" {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Message: "Authentication failed: user type not found",
				})
			}

			for _, allowedType := range allowedTypes {
				if userType == allowedType {
					return next(c)
				}
			}

			c.Logger().Errorf("Access denied for user type: %s, allowed types: %v", userType, allowedTypes)
			return c.JSON(http.StatusForbidden, models.Response{
				Success: false,
				Message: "Access denied for your user type",
			})
		}
	}
}
