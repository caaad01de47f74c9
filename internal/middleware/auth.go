package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/course-catalog/internal/utils"
)

// Context keys under which the auth guard stores the decoded identity.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

// BearerAuth returns an Echo middleware acting as the auth guard for
// protected routes. The contract follows the catalog's error taxonomy:
//
//	missing Authorization header            -> 401 Unauthenticated
//	present but invalid or expired token    -> 403 Forbidden
//	valid token                             -> user_id/username on context
//
// There is no role distinction; any authenticated user passes the guard.
func BearerAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the token.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"error":   "Access denied. No token provided.",
				})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			id, err := utils.VerifyToken(secret, raw)
			if err != nil {
				// Signature mismatch, malformed payload and expiry all
				// collapse into the same response.
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false,
					"error":   "Invalid or expired token.",
				})
			}

			// Handlers read the identity back via c.Get.
			c.Set(CtxUserID, id.UserID)
			c.Set(CtxUsername, id.Username)
			return next(c)
		}
	}
}
