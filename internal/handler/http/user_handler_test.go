package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	handler "github.com/henokg/lessonhub/internal/handler/http"
	dto "github.com/henokg/lessonhub/internal/handler/http/dto"
	mocks "github.com/henokg/lessonhub/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupUserRouter(h handler.UserHandlerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/users", h.RegisterUser)
	r.GET("/users/:email/role", h.GetUserRole)
	return r
}

func TestRegisterUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)
	payload := dto.RegisterUserRequest{
		Email: uuid.New().String() + "@example.com",
		Name:  "New User",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), payload.Email)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestRegisterUser_AlreadyExists(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.UserAlreadyExists = true
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)
	payload := dto.RegisterUserRequest{Email: "test@example.com"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user already exist")
}

func TestRegisterUser_MissingEmail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(`{"name":"No Email"}`))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email")
}

func TestRegisterUser_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailRegister = true
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)
	payload := dto.RegisterUserRequest{Email: "test@example.com"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetUserRole(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/test@example.com/role", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"user"}`, w.Body.String())
}

func TestGetUserRole_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.UserNotFound = true
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/missing@example.com/role", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}
