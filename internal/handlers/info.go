package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/drivelane/drivelane-backend/internal/db"
	"github.com/drivelane/drivelane-backend/internal/models"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// InfoHandler handles the site info records. Every write path that can
// leave a record active calls DeactivateOthers first, keeping at most one
// record active. The demote and the write are separate store operations,
// so the guarantee only holds for non-concurrent writers.
type InfoHandler struct {
	info db.InfoCollection
}

// NewInfoHandler creates a new info handler.
func NewInfoHandler(info db.InfoCollection) *InfoHandler {
	return &InfoHandler{info: info}
}

type infoRequest struct {
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	IsActive    *bool   `json:"isActive"`
}

// Create creates a new info record. New records default to active, so
// creation demotes any currently active record first.
func (h *InfoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req infoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	info := models.Info{IsActive: true}
	if req.Address != nil {
		info.Address = *req.Address
	}
	if req.Email != nil {
		info.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		info.PhoneNumber = *req.PhoneNumber
	}
	if req.IsActive != nil {
		info.IsActive = *req.IsActive
	}

	info.Normalize()
	if errs := info.Validate(); len(errs) > 0 {
		failValidation(w, errs)
		return
	}

	if info.IsActive {
		if _, err := h.info.DeactivateOthers(r.Context(), ""); err != nil {
			failServer(w, "Error creating info", err)
			return
		}
	}

	created, err := h.info.InsertInfo(r.Context(), info)
	if err != nil {
		log.WithError(err).Error("failed to create info")
		failServer(w, "Error creating info", err)
		return
	}

	ok(w, http.StatusCreated, "Info created successfully", envelope{"data": created})
}

// List returns every info record, active ones first.
func (h *InfoHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.info.FindAllInfo(r.Context())
	if err != nil {
		failServer(w, "Error retrieving info records", err)
		return
	}

	ok(w, http.StatusOK, "Info records retrieved successfully", envelope{
		"data":  records,
		"count": len(records),
	})
}

// Get returns a single info record by id.
func (h *InfoHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.info.FindInfoByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidID):
			fail(w, http.StatusBadRequest, "Invalid info ID format")
		case errors.Is(err, db.ErrNotFound):
			fail(w, http.StatusNotFound, "Info not found")
		default:
			failServer(w, "Error retrieving info", err)
		}
		return
	}

	ok(w, http.StatusOK, "Info retrieved successfully", envelope{"data": info})
}

// GetActive returns the currently active info record.
func (h *InfoHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	info, err := h.info.FindActiveInfo(r.Context())
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			fail(w, http.StatusNotFound, "No active info found")
			return
		}
		failServer(w, "Error retrieving active info", err)
		return
	}

	ok(w, http.StatusOK, "Active info retrieved successfully", envelope{"data": info})
}

// Update merges the provided fields into an existing record. Setting
// isActive=true through this generic path triggers the same demotion the
// dedicated activate operation performs.
func (h *InfoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.info.FindInfoByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidID):
			fail(w, http.StatusBadRequest, "Invalid info ID format")
		case errors.Is(err, db.ErrNotFound):
			fail(w, http.StatusNotFound, "Info not found")
		default:
			failServer(w, "Error updating info", err)
		}
		return
	}

	var req infoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	merged := *existing
	if req.Address != nil {
		merged.Address = *req.Address
	}
	if req.Email != nil {
		merged.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		merged.PhoneNumber = *req.PhoneNumber
	}
	if req.IsActive != nil {
		merged.IsActive = *req.IsActive
	}

	merged.Normalize()
	if errs := merged.Validate(); len(errs) > 0 {
		failValidation(w, errs)
		return
	}

	if merged.IsActive {
		if _, err := h.info.DeactivateOthers(r.Context(), id); err != nil {
			failServer(w, "Error updating info", err)
			return
		}
	}

	updated, err := h.info.UpdateInfo(r.Context(), id, merged)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			fail(w, http.StatusNotFound, "Info not found")
			return
		}
		log.WithError(err).Error("failed to update info")
		failServer(w, "Error updating info", err)
		return
	}

	ok(w, http.StatusOK, "Info updated successfully", envelope{"data": updated})
}

// Delete removes an info record by id.
func (h *InfoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.info.DeleteInfo(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidID):
			fail(w, http.StatusBadRequest, "Invalid info ID format")
		case errors.Is(err, db.ErrNotFound):
			fail(w, http.StatusNotFound, "Info not found")
		default:
			log.WithError(err).Error("failed to delete info")
			failServer(w, "Error deleting info", err)
		}
		return
	}

	ok(w, http.StatusOK, "Info deleted successfully", envelope{
		"data": envelope{"id": deleted.ID, "email": deleted.Email},
	})
}

// Activate is the dedicated way to switch which record is active: demote
// every other active record, then mark the target active.
func (h *InfoHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if _, err := h.info.FindInfoByID(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidID):
			fail(w, http.StatusBadRequest, "Invalid info ID format")
		case errors.Is(err, db.ErrNotFound):
			fail(w, http.StatusNotFound, "Info not found")
		default:
			failServer(w, "Error setting info as active", err)
		}
		return
	}

	if _, err := h.info.DeactivateOthers(r.Context(), id); err != nil {
		failServer(w, "Error setting info as active", err)
		return
	}

	activated, err := h.info.SetActive(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			fail(w, http.StatusNotFound, "Info not found")
			return
		}
		log.WithError(err).Error("failed to activate info")
		failServer(w, "Error setting info as active", err)
		return
	}

	ok(w, http.StatusOK, "Info set as active successfully", envelope{"data": activated})
}
