package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/henokg/lessonhub/internal/domain/contract"
	"github.com/henokg/lessonhub/internal/domain/entity"
	"github.com/henokg/lessonhub/internal/handler/http/dto"
	usecasecontract "github.com/henokg/lessonhub/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for the user handler to allow
// interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	RegisterUser(*gin.Context)
	GetUserRole(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// RegisterUser inserts a user unless one already exists under the same email.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user := entity.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	}
	created, err := h.userUsecase.Register(c.Request.Context(), &user)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !created {
		MessageHandler(c, http.StatusOK, "user already exist")
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

// GetUserRole returns the role of the user with the given email.
func (h *UserHandler) GetUserRole(c *gin.Context) {
	email := c.Param("email")

	role, err := h.userUsecase.GetUserRole(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			ErrorHandler(c, http.StatusNotFound, "User not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.RoleResponse{Role: string(role)})
}
