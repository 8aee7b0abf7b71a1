package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/henokg/lessonhub/internal/domain/contract"
	"github.com/henokg/lessonhub/internal/domain/entity"
	usecasecontract "github.com/henokg/lessonhub/internal/usecase/contract"
)

// UserUsecase handles registration and role lookups.
type UserUsecase struct {
	userRepo contract.IUserRepository
	logger   usecasecontract.IAppLogger
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

func NewUserUsecase(userRepo contract.IUserRepository, logger usecasecontract.IAppLogger) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates the user unless one with the same email already exists.
// The duplicate path is a no-op so that registering the same email twice can
// never produce a second document.
func (u *UserUsecase) Register(ctx context.Context, user *entity.User) (bool, error) {
	existing, err := u.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		u.logger.Infof("register: user %s already exists, skipping insert", user.Email)
		return false, nil
	}

	user.Role = entity.DefaultRole()
	user.CreatedAt = time.Now()
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}

// GetUserRole returns the stored role, defaulting to "user" when the field
// is unset on an existing document.
func (u *UserUsecase) GetUserRole(ctx context.Context, email string) (entity.UserRole, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user.Role == "" {
		return entity.DefaultRole(), nil
	}
	return user.Role, nil
}
