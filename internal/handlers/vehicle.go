package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/drivelane/drivelane-backend/internal/db"
	"github.com/drivelane/drivelane-backend/internal/importer"
	"github.com/drivelane/drivelane-backend/internal/middleware"
	"github.com/drivelane/drivelane-backend/internal/models"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// VehicleHandler handles vehicle CRUD and the bulk spreadsheet import.
type VehicleHandler struct {
	vehicles db.VehicleCollection
	pipeline *importer.Pipeline
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicles db.VehicleCollection) *VehicleHandler {
	return &VehicleHandler{
		vehicles: vehicles,
		pipeline: importer.NewPipeline(vehicles),
	}
}

// Upload runs the bulk import over an uploaded spreadsheet. The spool file
// is removed on every exit path, including parse and store failures.
func (h *VehicleHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, okFile := middleware.FileFromContext(r.Context())
	if !okFile {
		fail(w, http.StatusBadRequest, "Please upload an Excel file")
		return
	}
	defer func() {
		if err := os.Remove(file.Path); err != nil && !os.IsNotExist(err) {
			log.WithError(err).WithField("path", file.Path).Error("failed to remove uploaded file")
		}
	}()

	data, err := os.ReadFile(file.Path)
	if err != nil {
		log.WithError(err).Error("failed to read uploaded file")
		fail(w, http.StatusBadRequest, "Error reading uploaded file")
		return
	}

	result, err := h.pipeline.Import(r.Context(), data, file.OriginalName)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrBadFormat):
			fail(w, http.StatusBadRequest, "Invalid Excel file format")
		case errors.Is(err, importer.ErrNoData):
			fail(w, http.StatusBadRequest, "Excel file is empty or has no data")
		default:
			log.WithError(err).Error("import failed")
			failServer(w, "Database error while saving vehicles", err)
		}
		return
	}

	ok(w, http.StatusOK, "File processed successfully", envelope{
		"summary": result.Summary,
		"errors":  result.Errors,
	})
}

// List returns a page of vehicles, newest first.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)
	skip := int64(page-1) * int64(limit)

	vehicles, err := h.vehicles.FindVehicles(r.Context(), skip, int64(limit))
	if err != nil {
		failServer(w, "Error fetching vehicles", err)
		return
	}
	total, err := h.vehicles.CountVehicles(r.Context())
	if err != nil {
		failServer(w, "Error fetching vehicles", err)
		return
	}

	pages := int(math.Ceil(float64(total) / float64(limit)))
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"data":    vehicles,
		"pagination": envelope{
			"page":    page,
			"limit":   limit,
			"total":   total,
			"pages":   pages,
			"hasNext": page < pages,
			"hasPrev": page > 1,
		},
	})
}

// Create creates a single vehicle from a JSON body.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		fail(w, http.StatusBadRequest, "Error creating Vehicle")
		return
	}

	vehicle.Normalize()
	if errs := vehicle.Validate(); len(errs) > 0 {
		failValidation(w, errs)
		return
	}

	created, err := h.vehicles.InsertVehicle(r.Context(), vehicle)
	if err != nil {
		log.WithError(err).Error("failed to create vehicle")
		fail(w, http.StatusBadRequest, "Error creating Vehicle")
		return
	}

	ok(w, http.StatusCreated, "Successfully created vehicle", envelope{"vehicle": created})
}

// Get returns a single vehicle by id.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidID):
			fail(w, http.StatusBadRequest, "Invalid vehicle ID format")
		case errors.Is(err, db.ErrNotFound):
			fail(w, http.StatusNotFound, "Vehicle not found")
		default:
			failServer(w, "Error retrieving vehicle", err)
		}
		return
	}

	ok(w, http.StatusOK, "Vehicle retrieved successfully", envelope{"data": vehicle})
}

// Update replaces a vehicle's fields by id.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		fail(w, http.StatusBadRequest, "Error updating vehicle")
		return
	}

	vehicle.Normalize()
	if errs := vehicle.Validate(); len(errs) > 0 {
		failValidation(w, errs)
		return
	}

	updated, err := h.vehicles.UpdateVehicle(r.Context(), mux.Vars(r)["id"], vehicle)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidID):
			fail(w, http.StatusBadRequest, "Invalid vehicle ID format")
		case errors.Is(err, db.ErrNotFound):
			fail(w, http.StatusNotFound, "Vehicle not found")
		default:
			log.WithError(err).Error("failed to update vehicle")
			failServer(w, "Error updating vehicle", err)
		}
		return
	}

	ok(w, http.StatusOK, "Vehicle updated successfully", envelope{"data": updated})
}

// Delete removes a vehicle by id.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.vehicles.DeleteVehicle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidID):
			fail(w, http.StatusBadRequest, "Invalid vehicle ID format")
		case errors.Is(err, db.ErrNotFound):
			fail(w, http.StatusNotFound, "Vehicle not found")
		default:
			log.WithError(err).Error("failed to delete vehicle")
			failServer(w, "Error deleting vehicle", err)
		}
		return
	}

	ok(w, http.StatusOK, "Vehicle deleted successfully", envelope{"data": deleted})
}

// DeleteAll removes every vehicle.
func (h *VehicleHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.vehicles.DeleteAllVehicles(r.Context())
	if err != nil {
		failServer(w, "Error deleting vehicles", err)
		return
	}

	ok(w, http.StatusOK, "All vehicles deleted successfully", envelope{"deletedCount": count})
}

// Test is a connectivity probe for the vehicle routes.
func (h *VehicleHandler) Test(w http.ResponseWriter, r *http.Request) {
	ok(w, http.StatusOK, "Vehicle controller is working!", envelope{
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
