package handlers

import "github.com/labstack/echo/v4"

// callerID returns the authenticated user's hex ID placed in the context
// by the JWT middleware, or "" when the request is unauthenticated.
func callerID(c echo.Context) string {
	id, _ := c.Get("userID").(string)
	return id
}
