package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is one message submitted through the public contact form.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Normalize trims all fields and lowercases the email in place.
func (c *Contact) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
}

// Validate returns per-field messages for every missing field.
func (c *Contact) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "Name is required")
	}
	if c.Email == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(c.Email) {
		errs = append(errs, "Please provide a valid email address")
	}
	if c.Subject == "" {
		errs = append(errs, "Subject is required")
	}
	if c.Message == "" {
		errs = append(errs, "Message is required")
	}
	return errs
}
