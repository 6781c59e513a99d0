package context

import (
	"context"

	"rewards/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the echo.Context key of the authenticated user id.
	KeyUserID = "userID"
	// KeyRoles is the echo.Context key of the authenticated user's roles.
	KeyRoles = "roles"
)

type userIDContextKey struct{}

// SetUser stores the authenticated identity in echo.Context and in the request context.
func SetUser(c echo.Context, userID uuid.UUID, roles entity.Roles) {
	c.Set(KeyUserID, userID)
	c.Set(KeyRoles, roles)
	c.SetRequest(c.Request().WithContext(WithUserID(c.Request().Context(), userID)))
}

// GetUserID returns the authenticated user id from echo.Context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(KeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetRoles returns the authenticated user's roles from echo.Context.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(KeyRoles).(entity.Roles)

	return roles
}

// WithUserID returns a new context carrying the acting user id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// GetUserIDFromContext returns the acting user id, or uuid.Nil when absent.
func GetUserIDFromContext(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(userIDContextKey{}).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}
