package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a social media post stored in MongoDB. Likes holds the
// hex IDs of liking users, most recent first; Comments are embedded and
// owned exclusively by the post.
type Post struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       string             `json:"user" bson:"user_id"`
	Username     string             `json:"username" bson:"username"`             // denormalized owner username
	ProfileImage string             `json:"profileImage" bson:"profile_image"`    // denormalized owner avatar
	Text         string             `json:"text" bson:"text"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
	Likes        []string           `json:"likes" bson:"likes"`
	Comments     []Comment          `json:"comments" bson:"comments"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
}

// Comment is a subdocument of Post, keyed by its own ObjectID so removal
// is by identifier rather than array position.
type Comment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	UserID       string             `json:"user" bson:"user_id"`
	Username     string             `json:"username" bson:"username"`
	ProfileImage string             `json:"profileImage" bson:"profile_image"`
	Text         string             `json:"text" bson:"text"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Text  string `json:"text" validate:"required,min=1,max=2000"`
	Image string `json:"image,omitempty"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

// CaptionRequest defines the request body for AI caption generation
type CaptionRequest struct {
	Mood string `json:"mood" validate:"required"`
}
