package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Admin struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	FullName  string             `json:"fullName,omitempty" bson:"fullName,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// LoginRequest is the body of POST /api/admin/login and /api/sellers/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued tokens.
type LoginResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	User         interface{} `json:"user,omitempty"`
}
