package contract

import (
	"context"
	"errors"

	"github.com/henokg/lessonhub/internal/domain/entity"
)

// ErrUserNotFound is returned when no user document matches the given email.
var ErrUserNotFound = errors.New("user not found")

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	// GetUserByEmail retrieves a user by its natural key.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateUserRole sets the role of the user with the given email and
	// returns the number of modified documents. A missing user is not an
	// error; it simply modifies nothing.
	UpdateUserRole(ctx context.Context, email string, role entity.UserRole) (int64, error)
}
