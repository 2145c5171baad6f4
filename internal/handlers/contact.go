package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/drivelane/drivelane-backend/internal/db"
	"github.com/drivelane/drivelane-backend/internal/models"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// ContactHandler handles contact form messages.
type ContactHandler struct {
	contacts db.ContactCollection
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contacts db.ContactCollection) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Create stores a new contact message.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	contact.Normalize()
	if errs := contact.Validate(); len(errs) > 0 {
		failValidation(w, errs)
		return
	}

	created, err := h.contacts.InsertContact(r.Context(), contact)
	if err != nil {
		log.WithError(err).Error("failed to create contact")
		failServer(w, "Error creating contact message", err)
		return
	}

	ok(w, http.StatusCreated, "Thank you for your message. We will get back to you soon!", envelope{"data": created})
}

// List returns a page of contact messages, newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)
	skip := int64(page-1) * int64(limit)

	contacts, err := h.contacts.FindContacts(r.Context(), skip, int64(limit))
	if err != nil {
		failServer(w, "Error retrieving contacts", err)
		return
	}
	total, err := h.contacts.CountContacts(r.Context())
	if err != nil {
		failServer(w, "Error retrieving contacts", err)
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Contacts retrieved successfully",
		"data":    contacts,
		"pagination": envelope{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
			"hasNext":    page < totalPages,
			"hasPrev":    page > 1,
		},
	})
}

// Get returns a single contact message by id.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contacts.FindContactByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidID):
			fail(w, http.StatusBadRequest, "Invalid contact ID format")
		case errors.Is(err, db.ErrNotFound):
			fail(w, http.StatusNotFound, "Contact not found")
		default:
			failServer(w, "Error retrieving contact", err)
		}
		return
	}

	ok(w, http.StatusOK, "Contact retrieved successfully", envelope{"data": contact})
}

// Delete removes a contact message by id.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.contacts.DeleteContact(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidID):
			fail(w, http.StatusBadRequest, "Invalid contact ID format")
		case errors.Is(err, db.ErrNotFound):
			fail(w, http.StatusNotFound, "Contact not found")
		default:
			log.WithError(err).Error("failed to delete contact")
			failServer(w, "Error deleting contact", err)
		}
		return
	}

	ok(w, http.StatusOK, "Contact deleted successfully", envelope{
		"data": envelope{"id": deleted.ID, "name": deleted.Name, "email": deleted.Email},
	})
}

// DeleteAll removes every contact message.
func (h *ContactHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	total, err := h.contacts.CountContacts(r.Context())
	if err != nil {
		failServer(w, "Error deleting all contacts", err)
		return
	}
	if total == 0 {
		ok(w, http.StatusOK, "No contacts found to delete", envelope{"deletedCount": 0})
		return
	}

	count, err := h.contacts.DeleteAllContacts(r.Context())
	if err != nil {
		failServer(w, "Error deleting all contacts", err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success":       true,
		"message":       "All contacts deleted successfully",
		"deletedCount":  count,
		"previousCount": total,
	})
}
