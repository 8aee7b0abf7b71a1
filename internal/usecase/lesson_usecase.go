package usecase

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/henokg/lessonhub/internal/domain/contract"
	"github.com/henokg/lessonhub/internal/domain/entity"
	usecasecontract "github.com/henokg/lessonhub/internal/usecase/contract"
)

// engagementFeedLimit caps the featured, top-contributors and most-saved
// feeds.
const engagementFeedLimit = 6

// LessonUsecase handles lesson submission, browsing and engagement.
type LessonUsecase struct {
	lessonRepo contract.ILessonRepository
	logger     usecasecontract.IAppLogger
}

var _ usecasecontract.ILessonUseCase = (*LessonUsecase)(nil)

func NewLessonUsecase(lessonRepo contract.ILessonRepository, logger usecasecontract.IAppLogger) *LessonUsecase {
	return &LessonUsecase{
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

func (u *LessonUsecase) CreateLesson(ctx context.Context, lesson *entity.Lesson) error {
	if err := u.lessonRepo.CreateLesson(ctx, lesson); err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}

func (u *LessonUsecase) GetMyLessons(ctx context.Context, email string) ([]entity.Lesson, error) {
	return u.lessonRepo.GetLessonsByEmail(ctx, email)
}

func (u *LessonUsecase) GetPublicLessons(ctx context.Context) ([]entity.Lesson, error) {
	return u.lessonRepo.GetAllLessons(ctx)
}

func (u *LessonUsecase) GetLessonByID(ctx context.Context, id string) (*entity.Lesson, error) {
	return u.lessonRepo.GetLessonByID(ctx, id)
}

// LikeLesson increments the likes counter unconditionally. There is no
// idempotency key, so repeated calls double-count; an unknown id is a silent
// no-op.
func (u *LessonUsecase) LikeLesson(ctx context.Context, id string) error {
	return u.lessonRepo.IncrementLikes(ctx, id)
}

// ToggleFavorite removes the email from the lesson's favorites when present
// and appends it otherwise, so a given email appears at most once. The two
// steps are not serialized against a caller racing itself; each update is
// atomic on its own.
func (u *LessonUsecase) ToggleFavorite(ctx context.Context, id, email string) (bool, error) {
	lesson, err := u.lessonRepo.GetLessonByID(ctx, id)
	if err != nil {
		return false, err
	}

	if slices.Contains(lesson.Favorites, email) {
		if err := u.lessonRepo.RemoveFavorite(ctx, id, email); err != nil {
			return false, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return false, nil
	}
	if err := u.lessonRepo.AddFavorite(ctx, id, email); err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return true, nil
}

func (u *LessonUsecase) AddComment(ctx context.Context, id, user, text string) error {
	comment := entity.Comment{
		User:      user,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := u.lessonRepo.AddComment(ctx, id, comment); err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

func (u *LessonUsecase) GetFeaturedLessons(ctx context.Context) ([]entity.Lesson, error) {
	return u.lessonRepo.GetFeaturedLessons(ctx, engagementFeedLimit)
}

func (u *LessonUsecase) GetTopContributors(ctx context.Context) ([]entity.Contributor, error) {
	return u.lessonRepo.GetTopContributors(ctx, engagementFeedLimit)
}

// GetMostSavedLessons annotates every lesson with the size of its favorites
// set and ranks by that count in memory. Ties keep the underlying
// newest-first order because the sort is stable.
func (u *LessonUsecase) GetMostSavedLessons(ctx context.Context) ([]entity.SavedLesson, error) {
	lessons, err := u.lessonRepo.GetAllLessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lessons: %w", err)
	}

	saved := make([]entity.SavedLesson, 0, len(lessons))
	for _, lesson := range lessons {
		saved = append(saved, entity.SavedLesson{
			Lesson: lesson,
			Saves:  len(lesson.Favorites),
		})
	}
	sort.SliceStable(saved, func(i, j int) bool {
		return saved[i].Saves > saved[j].Saves
	})

	if len(saved) > engagementFeedLimit {
		saved = saved[:engagementFeedLimit]
	}
	return saved, nil
}
