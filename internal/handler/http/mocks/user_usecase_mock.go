package mocks

import (
	"context"
	"errors"

	"github.com/henokg/lessonhub/internal/domain/contract"
	"github.com/henokg/lessonhub/internal/domain/entity"
	usecasecontract "github.com/henokg/lessonhub/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the user usecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister bool
	UserAlreadyExists  bool
	UserNotFound       bool

	// Return values
	MockUser entity.User
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			Email: "test@example.com",
			Name:  "Test User",
			Role:  entity.UserRoleUser,
		},
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, user *entity.User) (bool, error) {
	if m.ShouldFailRegister {
		return false, errors.New("user creation failed")
	}
	if m.UserAlreadyExists {
		return false, nil
	}
	return true, nil
}

func (m *MockUserUsecase) GetUserRole(ctx context.Context, email string) (entity.UserRole, error) {
	if m.UserNotFound {
		return "", contract.ErrUserNotFound
	}
	return m.MockUser.Role, nil
}
