package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/drivelane/drivelane-backend/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConnectMongo_BadURI(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://bad:uri")
	client, err := ConnectMongo()
	if err == nil {
		t.Error("expected error for bad URI, got nil")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

func TestDatabaseName_Default(t *testing.T) {
	t.Setenv("MONGO_DB", "")
	if got := DatabaseName(); got != "drivelane" {
		t.Errorf("expected default database name, got %q", got)
	}
	t.Setenv("MONGO_DB", "drivelane_test")
	if got := DatabaseName(); got != "drivelane_test" {
		t.Errorf("expected drivelane_test, got %q", got)
	}
}

func TestVehicleCollection_NilGuards(t *testing.T) {
	ctx := context.Background()
	coll := &MongoVehicleCollection{Collection: nil}

	if _, err := coll.InsertVehicle(ctx, models.Vehicle{}); err == nil {
		t.Error("InsertVehicle: expected error when collection is nil")
	}
	if _, err := coll.InsertVehicles(ctx, []models.Vehicle{{}}, false); err == nil {
		t.Error("InsertVehicles: expected error when collection is nil")
	}
	if _, err := coll.FindVehicles(ctx, 0, 10); err == nil {
		t.Error("FindVehicles: expected error when collection is nil")
	}
	if _, err := coll.CountVehicles(ctx); err == nil {
		t.Error("CountVehicles: expected error when collection is nil")
	}
	if _, err := coll.DeleteAllVehicles(ctx); err == nil {
		t.Error("DeleteAllVehicles: expected error when collection is nil")
	}
}

func TestVehicleCollection_InvalidID(t *testing.T) {
	ctx := context.Background()
	coll := &MongoVehicleCollection{Collection: nil}

	if _, err := coll.FindVehicleByID(ctx, "not-a-hex-id"); err == nil {
		t.Error("FindVehicleByID: expected error for malformed id")
	} else if !errors.Is(err, ErrInvalidID) {
		t.Errorf("FindVehicleByID: expected ErrInvalidID, got %v", err)
	}
	if _, err := coll.UpdateVehicle(ctx, "xyz", models.Vehicle{}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("UpdateVehicle: expected ErrInvalidID, got %v", err)
	}
	if _, err := coll.DeleteVehicle(ctx, "xyz"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("DeleteVehicle: expected ErrInvalidID, got %v", err)
	}
}

func TestInfoCollection_NilGuards(t *testing.T) {
	ctx := context.Background()
	coll := &MongoInfoCollection{Collection: nil}

	if _, err := coll.InsertInfo(ctx, models.Info{}); err == nil {
		t.Error("InsertInfo: expected error when collection is nil")
	}
	if _, err := coll.FindAllInfo(ctx); err == nil {
		t.Error("FindAllInfo: expected error when collection is nil")
	}
	if _, err := coll.FindActiveInfo(ctx); err == nil {
		t.Error("FindActiveInfo: expected error when collection is nil")
	}
	if _, err := coll.DeactivateOthers(ctx, ""); err == nil {
		t.Error("DeactivateOthers: expected error when collection is nil")
	}
}

func TestUserCollection_NilGuards(t *testing.T) {
	ctx := context.Background()
	coll := &MongoUserCollection{Collection: nil}

	if _, err := coll.InsertUser(ctx, models.User{}); err == nil {
		t.Error("InsertUser: expected error when collection is nil")
	}
	if _, err := coll.FindUserByEmail(ctx, "a@b.co"); err == nil {
		t.Error("FindUserByEmail: expected error when collection is nil")
	}
}

func TestTranslate(t *testing.T) {
	if got := translate(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := translate(mongo.ErrNoDocuments); !errors.Is(got, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", got)
	}
	wrapped := fmt.Errorf("lookup: %w", mongo.ErrNoDocuments)
	if got := translate(wrapped); !errors.Is(got, ErrNotFound) {
		t.Errorf("expected ErrNotFound for wrapped error, got %v", got)
	}
	other := errors.New("boom")
	if got := translate(other); got != other {
		t.Errorf("expected passthrough, got %v", got)
	}
}
