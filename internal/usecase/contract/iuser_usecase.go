package contract

import (
	"context"

	"github.com/henokg/lessonhub/internal/domain/entity"
)

type IUserUseCase interface {
	// Register inserts the user with role "user" and a server-set createdAt
	// unless a user with the same email already exists. It reports whether a
	// document was created; a duplicate email is a no-op, not an error.
	Register(ctx context.Context, user *entity.User) (bool, error)
	// GetUserRole returns the user's role, defaulting to "user" when unset.
	GetUserRole(ctx context.Context, email string) (entity.UserRole, error)
}
