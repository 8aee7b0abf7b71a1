package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/henokg/lessonhub/internal/domain/contract"
	"github.com/henokg/lessonhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LessonRepository represents the MongoDB implementation of the
// ILessonRepository interface. Every mutation is a single atomic document
// update; the driver's guarantees are the only concurrency coordination.
type LessonRepository struct {
	collection *mongo.Collection
}

// NewLessonRepository creates and returns a new LessonRepository instance.
func NewLessonRepository(db *mongo.Database) *LessonRepository {
	return &LessonRepository{collection: db.Collection("lessons")}
}

// parseLessonID converts a path identifier into an ObjectID.
func parseLessonID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", contract.ErrInvalidLessonID, err)
	}
	return oid, nil
}

// CreateLesson inserts a new lesson record with a server-set createdAt.
func (r *LessonRepository) CreateLesson(ctx context.Context, lesson *entity.Lesson) error {
	lesson.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, lesson)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		lesson.ID = oid
	}
	return nil
}

// GetLessonsByEmail retrieves the lessons created under the given email in
// natural storage order.
func (r *LessonRepository) GetLessonsByEmail(ctx context.Context, email string) ([]entity.Lesson, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

// GetAllLessons retrieves every lesson ordered by createdAt descending.
func (r *LessonRepository) GetAllLessons(ctx context.Context) ([]entity.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

// GetLessonByID retrieves a single lesson by its id.
func (r *LessonRepository) GetLessonByID(ctx context.Context, id string) (*entity.Lesson, error) {
	oid, err := parseLessonID(id)
	if err != nil {
		return nil, err
	}

	var lesson entity.Lesson
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&lesson)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to retrieve lesson: %w", err)
	}
	return &lesson, nil
}

// IncrementLikes adds 1 to the likes counter. A zero match count is not an
// error: liking an unknown id is a silent no-op.
func (r *LessonRepository) IncrementLikes(ctx context.Context, id string) error {
	oid, err := parseLessonID(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"likes": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment likes: %w", err)
	}
	return nil
}

// AddFavorite appends the email to the favorites array.
func (r *LessonRepository) AddFavorite(ctx context.Context, id, email string) error {
	oid, err := parseLessonID(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"favorites": email}})
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite pulls the email from the favorites array.
func (r *LessonRepository) RemoveFavorite(ctx context.Context, id, email string) error {
	oid, err := parseLessonID(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$pull": bson.M{"favorites": email}})
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// AddComment appends a comment to the lesson. A zero match count is not an
// error: commenting on an unknown id is a silent no-op.
func (r *LessonRepository) AddComment(ctx context.Context, id string, comment entity.Comment) error {
	oid, err := parseLessonID(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

// GetFeaturedLessons retrieves the curated lessons, newest first.
func (r *LessonRepository) GetFeaturedLessons(ctx context.Context, limit int64) ([]entity.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"isFeatured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve featured lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode featured lessons: %w", err)
	}
	return lessons, nil
}

// GetTopContributors groups lessons by creator email, summing likes and
// comment counts, and ranks by score = likes + comments + lessonCount.
func (r *LessonRepository) GetTopContributors(ctx context.Context, limit int64) ([]entity.Contributor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         "$email",
			"name":        bson.M{"$first": "$creator"},
			"lessonCount": bson.M{"$sum": 1},
			"likes":       bson.M{"$sum": "$likes"},
			"comments":    bson.M{"$sum": bson.M{"$size": bson.M{"$ifNull": bson.A{"$comments", bson.A{}}}}},
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"score": bson.M{"$add": bson.A{"$likes", "$comments", "$lessonCount"}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"score": -1}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate contributors: %w", err)
	}
	defer cursor.Close(ctx)

	var contributors []entity.Contributor
	if err := cursor.All(ctx, &contributors); err != nil {
		return nil, fmt.Errorf("failed to decode contributors: %w", err)
	}
	return contributors, nil
}
