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

// ContactCollection defines the interface for contact message operations.
type ContactCollection interface {
	InsertContact(ctx context.Context, contact models.Contact) (*models.Contact, error)
	FindContacts(ctx context.Context, skip, limit int64) ([]models.Contact, error)
	FindContactByID(ctx context.Context, id string) (*models.Contact, error)
	DeleteContact(ctx context.Context, id string) (*models.Contact, error)
	DeleteAllContacts(ctx context.Context) (int64, error)
	CountContacts(ctx context.Context) (int64, error)
}

// MongoContactCollection implements ContactCollection for MongoDB.
type MongoContactCollection struct {
	Collection *mongo.Collection
}

// InsertContact inserts a contact message and returns it with its generated
// id and timestamps.
func (c *MongoContactCollection) InsertContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	now := time.Now()
	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, contact); err != nil {
		return nil, translate(err)
	}
	return &contact, nil
}

// FindContacts returns a page of contact messages, newest first.
func (c *MongoContactCollection) FindContacts(ctx context.Context, skip, limit int64) ([]models.Contact, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := c.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindContactByID finds a contact message by its ID.
func (c *MongoContactCollection) FindContactByID(ctx context.Context, id string) (*models.Contact, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var contact models.Contact
	if err := c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&contact); err != nil {
		return nil, translate(err)
	}
	return &contact, nil
}

// DeleteContact deletes a contact message by its ID and returns the deleted
// record.
func (c *MongoContactCollection) DeleteContact(ctx context.Context, id string) (*models.Contact, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var deleted models.Contact
	if err := c.Collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&deleted); err != nil {
		return nil, translate(err)
	}
	return &deleted, nil
}

// DeleteAllContacts removes every contact message and returns the count
// removed.
func (c *MongoContactCollection) DeleteAllContacts(ctx context.Context) (int64, error) {
	if c.Collection == nil {
		return 0, fmt.Errorf("mongo collection is nil")
	}
	res, err := c.Collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountContacts returns the total number of contact messages.
func (c *MongoContactCollection) CountContacts(ctx context.Context) (int64, error) {
	if c.Collection == nil {
		return 0, fmt.Errorf("mongo collection is nil")
	}
	return c.Collection.CountDocuments(ctx, bson.M{})
}
