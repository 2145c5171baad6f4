package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo connects to MongoDB using the MONGO_URI environment variable.
func ConnectMongo() (*mongo.Client, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// DatabaseName returns the database name from the environment, defaulting
// to "drivelane".
func DatabaseName() string {
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "drivelane"
	}
	return name
}

// Collections bundles the typed collection handles the handlers depend on.
type Collections struct {
	Vehicles VehicleCollection
	Info     InfoCollection
	Contacts ContactCollection
	Users    UserCollection
}

// NewCollections wires the Mongo-backed collections for a database.
func NewCollections(client *mongo.Client, dbName string) *Collections {
	database := client.Database(dbName)
	return &Collections{
		Vehicles: &MongoVehicleCollection{Collection: database.Collection("vehicles")},
		Info:     &MongoInfoCollection{Collection: database.Collection("infomasters")},
		Contacts: &MongoContactCollection{Collection: database.Collection("contacts")},
		Users:    &MongoUserCollection{Collection: database.Collection("users")},
	}
}

// EnsureIndexes creates the indexes the application relies on: the unique
// email index on users and the brand/model and year lookup indexes on
// vehicles.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	database := client.Database(dbName)

	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}

	_, err = database.Collection("vehicles").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "brand", Value: 1}, {Key: "model", Value: 1}}},
		{Keys: bson.D{{Key: "year", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create vehicles indexes: %w", err)
	}
	return nil
}
