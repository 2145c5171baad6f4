package models

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxAddressLength = 500

var (
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phonePattern = regexp.MustCompile(`^[+]?[\d\s\-()]{10,15}$`)
)

// Info is the site-wide contact information record. At most one info record
// is active at any time; that invariant is enforced by the write paths, not
// by the store itself.
type Info struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Address     string             `bson:"address" json:"address"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phone_number" json:"phoneNumber"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Normalize trims all fields and lowercases the email in place.
func (i *Info) Normalize() {
	i.Address = strings.TrimSpace(i.Address)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.PhoneNumber = strings.TrimSpace(i.PhoneNumber)
}

// Validate returns per-field messages for every constraint the record
// violates. An empty slice means the record is valid.
func (i *Info) Validate() []string {
	var errs []string
	if i.Address == "" {
		errs = append(errs, "Address is required")
	} else if len(i.Address) > maxAddressLength {
		errs = append(errs, "Address cannot exceed 500 characters")
	}
	if i.Email == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(i.Email) {
		errs = append(errs, "Please provide a valid email address")
	}
	if i.PhoneNumber == "" {
		errs = append(errs, "Phone number is required")
	} else if !phonePattern.MatchString(i.PhoneNumber) {
		errs = append(errs, "Please provide a valid phone number (10-15 digits)")
	}
	return errs
}
