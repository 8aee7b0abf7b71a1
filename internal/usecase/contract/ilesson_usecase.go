package contract

import (
	"context"

	"github.com/henokg/lessonhub/internal/domain/entity"
)

type ILessonUseCase interface {
	CreateLesson(ctx context.Context, lesson *entity.Lesson) error
	GetMyLessons(ctx context.Context, email string) ([]entity.Lesson, error)
	GetPublicLessons(ctx context.Context) ([]entity.Lesson, error)
	GetLessonByID(ctx context.Context, id string) (*entity.Lesson, error)
	LikeLesson(ctx context.Context, id string) error
	// ToggleFavorite adds the email to the lesson's favorites if absent and
	// removes it if present. It reports whether the email was added.
	ToggleFavorite(ctx context.Context, id, email string) (bool, error)
	AddComment(ctx context.Context, id, user, text string) error
	GetFeaturedLessons(ctx context.Context) ([]entity.Lesson, error)
	GetTopContributors(ctx context.Context) ([]entity.Contributor, error)
	// GetMostSavedLessons ranks lessons by the size of their favorites set.
	GetMostSavedLessons(ctx context.Context) ([]entity.SavedLesson, error)
}
