package driverRepo

import (
	"context"
	"errors"

	"taxibot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoDriverAvailable means the pool has no free driver right now. A
// normal outcome: payment is still recorded and the user gets told to wait.
var ErrNoDriverAvailable = errors.New("no driver available")

// DriverRepository allocates drivers from the shared pool. Claiming is the
// only write path for driver availability.
type DriverRepository interface {
	ClaimAvailable(ctx context.Context) (*models.Driver, error)
}

type mongoDriverRepo struct {
	coll *mongo.Collection
}

// NewMongoDriverRepo returns a DriverRepository backed by the conductores
// collection.
func NewMongoDriverRepo(db *mongo.Database) DriverRepository {
	return &mongoDriverRepo{coll: db.Collection("conductores")}
}
