package mocks

import (
	"context"
	"errors"

	"github.com/henokg/lessonhub/internal/domain/contract"
	"github.com/henokg/lessonhub/internal/domain/entity"
	usecasecontract "github.com/henokg/lessonhub/internal/usecase/contract"
)

// MockLessonUsecase is a mock implementation of the lesson usecase interface
type MockLessonUsecase struct {
	// Control mock behavior
	ShouldFailCreateLesson bool
	ShouldFailGetLessons   bool
	ShouldFailLike         bool
	ShouldFailComment      bool
	ShouldFailFeeds        bool
	LessonNotFound         bool
	InvalidLessonID        bool
	FavoriteAdded          bool

	// Return values
	MockLesson       entity.Lesson
	MockLessons      []entity.Lesson
	MockContributors []entity.Contributor
	MockSavedLessons []entity.SavedLesson
}

// Ensure MockLessonUsecase implements the correct interface for handler.NewLessonHandler
var _ usecasecontract.ILessonUseCase = (*MockLessonUsecase)(nil)

func NewMockLessonUsecase() *MockLessonUsecase {
	lesson := entity.Lesson{
		Email:       "creator@example.com",
		Title:       "Letting go",
		Description: "What I learned from moving abroad",
		Category:    "life",
		Emotional:   "hopeful",
		Creator:     "Test Creator",
	}
	return &MockLessonUsecase{
		MockLesson:  lesson,
		MockLessons: []entity.Lesson{lesson},
		MockContributors: []entity.Contributor{
			{Email: "creator@example.com", Name: "Test Creator", LessonCount: 2, Likes: 7, Comments: 3, Score: 12},
		},
	}
}

func (m *MockLessonUsecase) lessonLookupErr() error {
	if m.InvalidLessonID {
		return contract.ErrInvalidLessonID
	}
	if m.LessonNotFound {
		return contract.ErrLessonNotFound
	}
	return nil
}

func (m *MockLessonUsecase) CreateLesson(ctx context.Context, lesson *entity.Lesson) error {
	if m.ShouldFailCreateLesson {
		return errors.New("lesson creation failed")
	}
	return nil
}

func (m *MockLessonUsecase) GetMyLessons(ctx context.Context, email string) ([]entity.Lesson, error) {
	if m.ShouldFailGetLessons {
		return nil, errors.New("lesson retrieval failed")
	}
	return m.MockLessons, nil
}

func (m *MockLessonUsecase) GetPublicLessons(ctx context.Context) ([]entity.Lesson, error) {
	if m.ShouldFailGetLessons {
		return nil, errors.New("lesson retrieval failed")
	}
	return m.MockLessons, nil
}

func (m *MockLessonUsecase) GetLessonByID(ctx context.Context, id string) (*entity.Lesson, error) {
	if err := m.lessonLookupErr(); err != nil {
		return nil, err
	}
	if m.ShouldFailGetLessons {
		return nil, errors.New("lesson retrieval failed")
	}
	return &m.MockLesson, nil
}

func (m *MockLessonUsecase) LikeLesson(ctx context.Context, id string) error {
	if m.ShouldFailLike {
		return errors.New("like failed")
	}
	return nil
}

func (m *MockLessonUsecase) ToggleFavorite(ctx context.Context, id, email string) (bool, error) {
	if err := m.lessonLookupErr(); err != nil {
		return false, err
	}
	return m.FavoriteAdded, nil
}

func (m *MockLessonUsecase) AddComment(ctx context.Context, id, user, text string) error {
	if m.ShouldFailComment {
		return errors.New("comment failed")
	}
	return nil
}

func (m *MockLessonUsecase) GetFeaturedLessons(ctx context.Context) ([]entity.Lesson, error) {
	if m.ShouldFailFeeds {
		return nil, errors.New("feed retrieval failed")
	}
	return m.MockLessons, nil
}

func (m *MockLessonUsecase) GetTopContributors(ctx context.Context) ([]entity.Contributor, error) {
	if m.ShouldFailFeeds {
		return nil, errors.New("feed retrieval failed")
	}
	return m.MockContributors, nil
}

func (m *MockLessonUsecase) GetMostSavedLessons(ctx context.Context) ([]entity.SavedLesson, error) {
	if m.ShouldFailFeeds {
		return nil, errors.New("feed retrieval failed")
	}
	return m.MockSavedLessons, nil
}
