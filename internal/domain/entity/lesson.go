package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson is a user-submitted content entry with engagement metadata. The
// required fields are immutable after creation; only Likes, Favorites and
// Comments mutate, each through a single atomic document update.
type Lesson struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Emotional   string             `bson:"emotional" json:"emotional"`
	Creator     string             `bson:"creator,omitempty" json:"creator,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	IsFeatured  bool               `bson:"isFeatured,omitempty" json:"isFeatured,omitempty"`
	Likes       int                `bson:"likes,omitempty" json:"likes"`
	Favorites   []string           `bson:"favorites,omitempty" json:"favorites,omitempty"`
	Comments    []Comment          `bson:"comments,omitempty" json:"comments,omitempty"`
}

// Comment is an append-only entry on a lesson. No edit or delete exists.
type Comment struct {
	User      string    `bson:"user" json:"user"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Contributor is one row of the top-contributors aggregation, grouped by the
// creator's email. Score is likes + comments + lessonCount.
type Contributor struct {
	Email       string `bson:"_id" json:"email"`
	Name        string `bson:"name" json:"name"`
	LessonCount int    `bson:"lessonCount" json:"lessonCount"`
	Likes       int    `bson:"likes" json:"likes"`
	Comments    int    `bson:"comments" json:"comments"`
	Score       int    `bson:"score" json:"score"`
}

// SavedLesson is a lesson annotated with the size of its favorites set, used
// by the most-saved ranking.
type SavedLesson struct {
	Lesson
	Saves int `json:"saves"`
}
