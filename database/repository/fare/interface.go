package fareRepo

import (
	"context"
	"errors"

	"taxibot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrFareNotFound means no fare is registered for the route. This is a
// normal lookup outcome, not a store failure; callers turn it into a
// user-facing message.
var ErrFareNotFound = errors.New("no fare registered for route")

// FareRepository looks up the fixed price for a route and vehicle class.
type FareRepository interface {
	FindFare(ctx context.Context, origin, destination string, class models.VehicleClass) (*models.FareEntry, error)
}

type mongoFareRepo struct {
	motoColl *mongo.Collection
	carColl  *mongo.Collection
}

// NewMongoFareRepo returns a FareRepository over the per-class price
// collections.
func NewMongoFareRepo(db *mongo.Database) FareRepository {
	return &mongoFareRepo{
		motoColl: db.Collection("precios_motos"),
		carColl:  db.Collection("precios_carros"),
	}
}
