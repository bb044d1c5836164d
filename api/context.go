package api

import (
	"context"

	"github.com/dmatos/portfolio-backend/models"
)

type keyType string

const userKey keyType = "user"

// ctxWithUser attaches the authenticated user to the request context.
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// userFromCtx retrieves the authenticated user placed by the auth
// middleware. The second return is false on unauthenticated requests.
func userFromCtx(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}
