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

// VehicleCollection defines the interface for vehicle data operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error)
	InsertVehicles(ctx context.Context, vehicles []models.Vehicle, ordered bool) (int, error)
	FindVehicles(ctx context.Context, skip, limit int64) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	DeleteAllVehicles(ctx context.Context) (int64, error)
	CountVehicles(ctx context.Context) (int64, error)
}

// MongoVehicleCollection implements VehicleCollection for MongoDB.
type MongoVehicleCollection struct {
	Collection *mongo.Collection
}

// InsertVehicle inserts a vehicle record and returns it with its generated
// id and timestamps.
func (c *MongoVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	now := time.Now()
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	if _, err := c.Collection.InsertOne(ctx, vehicle); err != nil {
		return nil, translate(err)
	}
	return &vehicle, nil
}

// InsertVehicles inserts a batch of vehicle records and returns the number
// inserted. With ordered=false the driver keeps inserting past individual
// document failures.
func (c *MongoVehicleCollection) InsertVehicles(ctx context.Context, vehicles []models.Vehicle, ordered bool) (int, error) {
	if c.Collection == nil {
		return 0, fmt.Errorf("mongo collection is nil")
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(vehicles))
	for i := range vehicles {
		vehicles[i].ID = primitive.NewObjectID()
		vehicles[i].CreatedAt = now
		vehicles[i].UpdatedAt = now
		docs = append(docs, vehicles[i])
	}

	res, err := c.Collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(ordered))
	if res != nil && err != nil {
		return len(res.InsertedIDs), translate(err)
	}
	if err != nil {
		return 0, translate(err)
	}
	return len(res.InsertedIDs), nil
}

// FindVehicles returns a page of vehicles, newest first.
func (c *MongoVehicleCollection) FindVehicles(ctx context.Context, skip, limit int64) ([]models.Vehicle, error) {
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

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindVehicleByID finds a vehicle by its ID.
func (c *MongoVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var vehicle models.Vehicle
	if err := c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&vehicle); err != nil {
		return nil, translate(err)
	}
	return &vehicle, nil
}

// UpdateVehicle replaces the mutable fields of a vehicle and returns the
// updated record.
func (c *MongoVehicleCollection) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) (*models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"product_name": vehicle.ProductName,
		"brand":        vehicle.Brand,
		"model":        vehicle.Model,
		"year":         vehicle.Year,
		"price":        vehicle.Price,
		"color":        vehicle.Color,
		"fuel_type":    vehicle.FuelType,
		"transmission": vehicle.Transmission,
		"mileage":      vehicle.Mileage,
		"updated_at":   time.Now(),
	}}

	var updated models.Vehicle
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := c.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&updated); err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

// DeleteVehicle deletes a vehicle by its ID and returns the deleted record.
func (c *MongoVehicleCollection) DeleteVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var deleted models.Vehicle
	if err := c.Collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&deleted); err != nil {
		return nil, translate(err)
	}
	return &deleted, nil
}

// DeleteAllVehicles removes every vehicle and returns the count removed.
func (c *MongoVehicleCollection) DeleteAllVehicles(ctx context.Context) (int64, error) {
	if c.Collection == nil {
		return 0, fmt.Errorf("mongo collection is nil")
	}
	res, err := c.Collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountVehicles returns the total number of vehicles.
func (c *MongoVehicleCollection) CountVehicles(ctx context.Context) (int64, error) {
	if c.Collection == nil {
		return 0, fmt.Errorf("mongo collection is nil")
	}
	return c.Collection.CountDocuments(ctx, bson.M{})
}
