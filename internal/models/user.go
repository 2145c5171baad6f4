package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Defaults applied to new accounts.
const (
	DefaultCredit = 50
	DefaultPlan   = "free"
)

// User represents a registered account. The password hash is never
// serialized into responses.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PhoneNumber  string             `bson:"phone_number" json:"phoneNumber"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Credit       int                `bson:"credit" json:"credit"`
	Plan         string             `bson:"plan" json:"plan"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Claims represents the verified contents of a JWT.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Exp    int64  `json:"exp"`
}
