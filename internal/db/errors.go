package db

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors returned by every collection so handlers can map them to
// status codes without knowing about the driver.
var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id format")
	ErrDuplicate = errors.New("duplicate key")
)

// translate maps driver-level errors onto the package sentinels. Errors it
// does not recognize pass through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
