package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/henokg/lessonhub/internal/domain/contract"
	"github.com/henokg/lessonhub/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory user collection keyed by email.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (f *fakeUserRepo) UpdateUserRole(ctx context.Context, email string, role entity.UserRole) (int64, error) {
	user, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	user.Role = role
	return 1, nil
}

// fakeLessonRepo is an in-memory lesson collection preserving insertion
// order; GetAllLessons returns newest first like the real repository.
type fakeLessonRepo struct {
	lessons []*entity.Lesson
	nextID  int
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{}
}

func (f *fakeLessonRepo) find(id string) *entity.Lesson {
	for _, lesson := range f.lessons {
		if lesson.ID.Hex() == id {
			return lesson
		}
	}
	return nil
}

func (f *fakeLessonRepo) CreateLesson(ctx context.Context, lesson *entity.Lesson) error {
	f.nextID++
	var oid [12]byte
	copy(oid[:], fmt.Sprintf("%012d", f.nextID))
	lesson.ID = primitive.ObjectID(oid)
	stored := *lesson
	f.lessons = append(f.lessons, &stored)
	return nil
}

func (f *fakeLessonRepo) GetLessonsByEmail(ctx context.Context, email string) ([]entity.Lesson, error) {
	var out []entity.Lesson
	for _, lesson := range f.lessons {
		if lesson.Email == email {
			out = append(out, *lesson)
		}
	}
	return out, nil
}

func (f *fakeLessonRepo) GetAllLessons(ctx context.Context) ([]entity.Lesson, error) {
	out := make([]entity.Lesson, 0, len(f.lessons))
	for i := len(f.lessons) - 1; i >= 0; i-- {
		out = append(out, *f.lessons[i])
	}
	return out, nil
}

func (f *fakeLessonRepo) GetLessonByID(ctx context.Context, id string) (*entity.Lesson, error) {
	lesson := f.find(id)
	if lesson == nil {
		return nil, contract.ErrLessonNotFound
	}
	found := *lesson
	return &found, nil
}

func (f *fakeLessonRepo) IncrementLikes(ctx context.Context, id string) error {
	if lesson := f.find(id); lesson != nil {
		lesson.Likes++
	}
	return nil
}

func (f *fakeLessonRepo) AddFavorite(ctx context.Context, id, email string) error {
	if lesson := f.find(id); lesson != nil {
		lesson.Favorites = append(lesson.Favorites, email)
	}
	return nil
}

func (f *fakeLessonRepo) RemoveFavorite(ctx context.Context, id, email string) error {
	lesson := f.find(id)
	if lesson == nil {
		return nil
	}
	var kept []string
	for _, fav := range lesson.Favorites {
		if fav != email {
			kept = append(kept, fav)
		}
	}
	lesson.Favorites = kept
	return nil
}

func (f *fakeLessonRepo) AddComment(ctx context.Context, id string, comment entity.Comment) error {
	if lesson := f.find(id); lesson != nil {
		lesson.Comments = append(lesson.Comments, comment)
	}
	return nil
}

func (f *fakeLessonRepo) GetFeaturedLessons(ctx context.Context, limit int64) ([]entity.Lesson, error) {
	var out []entity.Lesson
	for i := len(f.lessons) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if f.lessons[i].IsFeatured {
			out = append(out, *f.lessons[i])
		}
	}
	return out, nil
}

// GetTopContributors mirrors the aggregation in the real repository: group
// by creator email, sum lessons, likes and comment counts, then rank by
// score = likes + comments + lessonCount.
func (f *fakeLessonRepo) GetTopContributors(ctx context.Context, limit int64) ([]entity.Contributor, error) {
	byEmail := make(map[string]*entity.Contributor)
	var order []string
	for _, lesson := range f.lessons {
		row, ok := byEmail[lesson.Email]
		if !ok {
			row = &entity.Contributor{Email: lesson.Email, Name: lesson.Creator}
			byEmail[lesson.Email] = row
			order = append(order, lesson.Email)
		}
		row.LessonCount++
		row.Likes += lesson.Likes
		row.Comments += len(lesson.Comments)
	}

	contributors := make([]entity.Contributor, 0, len(order))
	for _, email := range order {
		row := byEmail[email]
		row.Score = row.Likes + row.Comments + row.LessonCount
		contributors = append(contributors, *row)
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Score > contributors[j].Score
	})
	if int64(len(contributors)) > limit {
		contributors = contributors[:limit]
	}
	return contributors, nil
}

// fakePaymentGateway serves canned checkout sessions keyed by session id.
type fakePaymentGateway struct {
	sessions map[string]*contract.CheckoutSession
	created  int
}

func newFakePaymentGateway() *fakePaymentGateway {
	return &fakePaymentGateway{sessions: make(map[string]*contract.CheckoutSession)}
}

func (f *fakePaymentGateway) CreateCheckoutSession(ctx context.Context, email, userID string) (*contract.CheckoutSession, error) {
	f.created++
	session := &contract.CheckoutSession{
		ID:            fmt.Sprintf("cs_test_%d", f.created),
		URL:           fmt.Sprintf("https://checkout.example.com/%d", f.created),
		CustomerEmail: email,
		PaymentStatus: "unpaid",
	}
	f.sessions[session.ID] = session
	return session, nil
}

func (f *fakePaymentGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*contract.CheckoutSession, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, errors.New("no such session")
	}
	return session, nil
}
