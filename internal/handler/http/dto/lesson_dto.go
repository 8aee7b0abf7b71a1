package dto

// CreateLessonRequest is the body of POST /add-lesson. The required fields
// carry no binding tags: a missing email and a missing content field produce
// distinct messages, checked in the handler.
type CreateLessonRequest struct {
	Email       string `json:"email"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Emotional   string `json:"emotional"`
	Creator     string `json:"creator"`
	IsFeatured  bool   `json:"isFeatured"`
}

// FavoriteRequest is the body of POST /public-lessons/favorite/:id.
type FavoriteRequest struct {
	Email string `json:"email" binding:"required"`
}

// CommentRequest is the body of POST /public-lessons/comment/:id.
type CommentRequest struct {
	User string `json:"user" binding:"required"`
	Text string `json:"text" binding:"required"`
}
