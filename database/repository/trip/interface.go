package tripRepo

import (
	"context"
	"errors"

	"taxibot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrTripNotFound means the trip id does not resolve to a record. At
// confirmation time this is a caller-input error and propagates to the
// request boundary.
var ErrTripNotFound = errors.New("trip not found")

// TripRepository creates and advances Trip records. Every quote creates a
// fresh record; nothing here searches for or reuses an existing quote.
type TripRepository interface {
	CreateQuoted(ctx context.Context, trip models.Trip) (string, error)
	CreateUnquotable(ctx context.Context, trip models.Trip, reason string) (string, error)
	MarkAssigned(ctx context.Context, tripID string, driver models.Driver, paymentRef string) (*models.Trip, error)
	MarkNoDriverAvailable(ctx context.Context, tripID, paymentRef string) (*models.Trip, error)
	GetByID(ctx context.Context, id string) (*models.Trip, error)
}

type mongoTripRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRepo returns a TripRepository backed by the viajes collection.
func NewMongoTripRepo(db *mongo.Database) TripRepository {
	return &mongoTripRepo{coll: db.Collection("viajes")}
}
