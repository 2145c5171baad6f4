package db

import (
	"context"
	"fmt"
	"time"

	"github.com/drivelane/drivelane-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InfoCollection defines the interface for info record operations.
// DeactivateOthers is the single-active-record enforcer primitive: every
// write path that can end with is_active=true must call it first.
type InfoCollection interface {
	InsertInfo(ctx context.Context, info models.Info) (*models.Info, error)
	FindAllInfo(ctx context.Context) ([]models.Info, error)
	FindInfoByID(ctx context.Context, id string) (*models.Info, error)
	FindActiveInfo(ctx context.Context) (*models.Info, error)
	UpdateInfo(ctx context.Context, id string, info models.Info) (*models.Info, error)
	DeleteInfo(ctx context.Context, id string) (*models.Info, error)
	DeactivateOthers(ctx context.Context, excludeID string) (int64, error)
	SetActive(ctx context.Context, id string) (*models.Info, error)
}

// MongoInfoCollection implements InfoCollection for MongoDB.
type MongoInfoCollection struct {
	Collection *mongo.Collection
}

// InsertInfo inserts an info record and returns it with its generated id
// and timestamps.
func (c *MongoInfoCollection) InsertInfo(ctx context.Context, info models.Info) (*models.Info, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	now := time.Now()
	info.ID = primitive.NewObjectID()
	info.CreatedAt = now
	info.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, info); err != nil {
		return nil, translate(err)
	}
	return &info, nil
}

// FindAllInfo returns every info record, active ones first, newest first
// within each group.
func (c *MongoInfoCollection) FindAllInfo(ctx context.Context) ([]models.Info, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "is_active", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := c.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.Info{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindInfoByID finds an info record by its ID.
func (c *MongoInfoCollection) FindInfoByID(ctx context.Context, id string) (*models.Info, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var info models.Info
	if err := c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&info); err != nil {
		return nil, translate(err)
	}
	return &info, nil
}

// FindActiveInfo returns the currently active info record, or ErrNotFound
// when none is active.
func (c *MongoInfoCollection) FindActiveInfo(ctx context.Context) (*models.Info, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var info models.Info
	if err := c.Collection.FindOne(ctx, bson.M{"is_active": true}).Decode(&info); err != nil {
		return nil, translate(err)
	}
	return &info, nil
}

// UpdateInfo replaces the mutable fields of an info record and returns the
// updated record.
func (c *MongoInfoCollection) UpdateInfo(ctx context.Context, id string, info models.Info) (*models.Info, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"address":      info.Address,
		"email":        info.Email,
		"phone_number": info.PhoneNumber,
		"is_active":    info.IsActive,
		"updated_at":   time.Now(),
	}}

	var updated models.Info
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&updated); err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

// DeleteInfo deletes an info record by its ID and returns the deleted
// record.
func (c *MongoInfoCollection) DeleteInfo(ctx context.Context, id string) (*models.Info, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var deleted models.Info
	if err := c.Collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&deleted); err != nil {
		return nil, translate(err)
	}
	return &deleted, nil
}

// DeactivateOthers clears the active flag on every record except the one
// identified by excludeID. An empty excludeID demotes every active record.
// Returns the number of records demoted. The demote and any following
// activation are separate operations, so concurrent activations can still
// interleave; callers must not assume atomicity.
func (c *MongoInfoCollection) DeactivateOthers(ctx context.Context, excludeID string) (int64, error) {
	if c.Collection == nil {
		return 0, fmt.Errorf("mongo collection is nil")
	}
	filter := bson.M{"is_active": true}
	if excludeID != "" {
		objectID, err := primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return 0, ErrInvalidID
		}
		filter["_id"] = bson.M{"$ne": objectID}
	}

	res, err := c.Collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// SetActive marks one info record active and returns the updated record.
// Callers demote the others via DeactivateOthers before calling this.
func (c *MongoInfoCollection) SetActive(ctx context.Context, id string) (*models.Info, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{"is_active": true, "updated_at": time.Now()}}
	var updated models.Info
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&updated); err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}
