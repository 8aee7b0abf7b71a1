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

// LessonHandlerInterface defines the methods for the lesson handler to allow
// interface-based dependency injection (for testing/mocking)
type LessonHandlerInterface interface {
	CreateLesson(*gin.Context)
	GetMyLessons(*gin.Context)
	GetPublicLessons(*gin.Context)
	GetLesson(*gin.Context)
	LikeLesson(*gin.Context)
	ToggleFavorite(*gin.Context)
	AddComment(*gin.Context)
	GetFeaturedLessons(*gin.Context)
	GetTopContributors(*gin.Context)
	GetMostSavedLessons(*gin.Context)
}

// Ensure LessonHandler implements LessonHandlerInterface
var _ LessonHandlerInterface = (*LessonHandler)(nil)

type LessonHandler struct {
	lessonUsecase usecasecontract.ILessonUseCase
}

func NewLessonHandler(lessonUsecase usecasecontract.ILessonUseCase) *LessonHandler {
	return &LessonHandler{
		lessonUsecase: lessonUsecase,
	}
}

// CreateLesson validates the required fields and inserts the lesson. A
// missing email gets its own message; any other missing required field gets
// the generic one.
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req dto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Email == "" {
		MessageHandler(c, http.StatusBadRequest, "email missing!")
		return
	}
	if req.Title == "" || req.Description == "" || req.Category == "" || req.Emotional == "" {
		MessageHandler(c, http.StatusBadRequest, "All fields are required")
		return
	}

	lesson := entity.Lesson{
		Email:       req.Email,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Emotional:   req.Emotional,
		Creator:     req.Creator,
		IsFeatured:  req.IsFeatured,
	}
	if err := h.lessonUsecase.CreateLesson(c.Request.Context(), &lesson); err != nil {
		MessageHandler(c, http.StatusInternalServerError, "Server error")
		return
	}
	SuccessHandler(c, http.StatusCreated, lesson)
}

// GetMyLessons returns the lessons created under the path email.
func (h *LessonHandler) GetMyLessons(c *gin.Context) {
	email := c.Param("email")

	lessons, err := h.lessonUsecase.GetMyLessons(c.Request.Context(), email)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch lessons")
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// GetPublicLessons returns every lesson, newest first.
func (h *LessonHandler) GetPublicLessons(c *gin.Context) {
	lessons, err := h.lessonUsecase.GetPublicLessons(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch lessons")
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// GetLesson returns a single lesson by id. A malformed id surfaces as 500
// rather than 400, kept for compatibility with existing clients.
func (h *LessonHandler) GetLesson(c *gin.Context) {
	id := c.Param("id")

	lesson, err := h.lessonUsecase.GetLessonByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, contract.ErrLessonNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Lesson not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Invalid lesson ID")
		return
	}
	SuccessHandler(c, http.StatusOK, lesson)
}

// LikeLesson increments the lesson's likes counter. An unknown id is a
// silent no-op and still confirms.
func (h *LessonHandler) LikeLesson(c *gin.Context) {
	id := c.Param("id")

	if err := h.lessonUsecase.LikeLesson(c.Request.Context(), id); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to like lesson")
		return
	}
	MessageHandler(c, http.StatusOK, "Liked")
}

// ToggleFavorite adds or removes the body email from the lesson's favorites.
func (h *LessonHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")

	var req dto.FavoriteRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	added, err := h.lessonUsecase.ToggleFavorite(c.Request.Context(), id, req.Email)
	if err != nil {
		if errors.Is(err, contract.ErrLessonNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Lesson not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to toggle favorite")
		return
	}
	if added {
		MessageHandler(c, http.StatusOK, "Added to favorites")
		return
	}
	MessageHandler(c, http.StatusOK, "Removed from favorites")
}

// AddComment appends a comment to the lesson. There is no existence check:
// commenting on an unknown id silently no-ops and still confirms.
func (h *LessonHandler) AddComment(c *gin.Context) {
	id := c.Param("id")

	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.lessonUsecase.AddComment(c.Request.Context(), id, req.User, req.Text); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}
	MessageHandler(c, http.StatusOK, "Comment added")
}

// GetFeaturedLessons returns up to six curated lessons, newest first.
func (h *LessonHandler) GetFeaturedLessons(c *gin.Context) {
	lessons, err := h.lessonUsecase.GetFeaturedLessons(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load featured lessons")
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// GetTopContributors returns up to six contributors ranked by score.
func (h *LessonHandler) GetTopContributors(c *gin.Context) {
	contributors, err := h.lessonUsecase.GetTopContributors(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load top contributors")
		return
	}
	SuccessHandler(c, http.StatusOK, contributors)
}

// GetMostSavedLessons returns up to six lessons ranked by favorites count.
func (h *LessonHandler) GetMostSavedLessons(c *gin.Context) {
	lessons, err := h.lessonUsecase.GetMostSavedLessons(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load most saved lessons")
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}
