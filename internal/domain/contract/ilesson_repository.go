package contract

import (
	"context"
	"errors"

	"github.com/henokg/lessonhub/internal/domain/entity"
)

var (
	// ErrLessonNotFound is returned when no lesson matches the given id.
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrInvalidLessonID is returned when the given id is not a valid
	// ObjectID hex string.
	ErrInvalidLessonID = errors.New("invalid lesson ID")
)

// ILessonRepository provides single-document operations over the lessons
// collection. Counter, set-membership and append updates are each one atomic
// update; there is no cross-document coordination.
type ILessonRepository interface {
	// CreateLesson inserts a lesson with a server-set createdAt and fills in
	// the generated id.
	CreateLesson(ctx context.Context, lesson *entity.Lesson) error
	GetLessonsByEmail(ctx context.Context, email string) ([]entity.Lesson, error)
	// GetAllLessons returns every lesson ordered by createdAt descending.
	GetAllLessons(ctx context.Context) ([]entity.Lesson, error)
	GetLessonByID(ctx context.Context, id string) (*entity.Lesson, error)
	// IncrementLikes adds 1 to the likes counter, unconditionally. An
	// unknown id is a silent no-op.
	IncrementLikes(ctx context.Context, id string) error
	AddFavorite(ctx context.Context, id, email string) error
	RemoveFavorite(ctx context.Context, id, email string) error
	// AddComment appends a comment. An unknown id is a silent no-op.
	AddComment(ctx context.Context, id string, comment entity.Comment) error
	GetFeaturedLessons(ctx context.Context, limit int64) ([]entity.Lesson, error)
	// GetTopContributors groups lessons by creator email and ranks the rows
	// by score descending.
	GetTopContributors(ctx context.Context, limit int64) ([]entity.Contributor, error)
}
