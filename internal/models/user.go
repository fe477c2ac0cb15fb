package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account stored in MongoDB. Followers and Following
// hold user ObjectID hex strings, most recently added first. A user never
// appears in its own lists.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	Password     string             `json:"-" bson:"password"` // bcrypt hash, never serialized
	Bio          string             `json:"bio" bson:"bio"`
	ProfileImage string             `json:"profileImage" bson:"profile_image"`
	Followers    []string           `json:"followers" bson:"followers"`
	Following    []string           `json:"following" bson:"following"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
}

// RegisterRequest defines the request body for local registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the request body for local sign-in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FirebaseLoginRequest defines the request body for Firebase login
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// UpdateProfileRequest is an explicit patch: only non-nil fields are
// applied to the stored user.
type UpdateProfileRequest struct {
	Username     *string `json:"username,omitempty" validate:"omitempty,min=2,max=30"`
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
