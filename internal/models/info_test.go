package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInfo() Info {
	return Info{
		Address:     "123 Main Street, Springfield",
		Email:       "office@example.com",
		PhoneNumber: "+1 555-123-4567",
		IsActive:    true,
	}
}

func TestInfoValidate_Valid(t *testing.T) {
	i := validInfo()
	assert.Empty(t, i.Validate())
}

func TestInfoValidate_RequiredFields(t *testing.T) {
	var i Info
	errs := i.Validate()
	assert.Contains(t, errs, "Address is required")
	assert.Contains(t, errs, "Email is required")
	assert.Contains(t, errs, "Phone number is required")
}

func TestInfoValidate_AddressTooLong(t *testing.T) {
	i := validInfo()
	i.Address = strings.Repeat("a", 501)
	assert.Contains(t, i.Validate(), "Address cannot exceed 500 characters")

	i.Address = strings.Repeat("a", 500)
	assert.Empty(t, i.Validate())
}

func TestInfoValidate_BadEmail(t *testing.T) {
	i := validInfo()
	i.Email = "not-an-email"
	assert.Contains(t, i.Validate(), "Please provide a valid email address")
}

func TestInfoValidate_BadPhone(t *testing.T) {
	i := validInfo()
	i.PhoneNumber = "123"
	assert.Contains(t, i.Validate(), "Please provide a valid phone number (10-15 digits)")

	i.PhoneNumber = "555-ABC-1234"
	assert.Contains(t, i.Validate(), "Please provide a valid phone number (10-15 digits)")
}

func TestInfoNormalize_LowercasesEmail(t *testing.T) {
	i := validInfo()
	i.Email = "  Office@Example.COM "
	i.Normalize()
	assert.Equal(t, "office@example.com", i.Email)
}

func TestContactValidate(t *testing.T) {
	c := Contact{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Question",
		Message: "Is the Corolla still available?",
	}
	assert.Empty(t, c.Validate())

	c.Email = "alice@"
	c.Message = ""
	errs := c.Validate()
	assert.Contains(t, errs, "Please provide a valid email address")
	assert.Contains(t, errs, "Message is required")
}
