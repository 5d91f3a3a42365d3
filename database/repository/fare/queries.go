package fareRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"taxibot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// routeFilter matches origin and destination case-insensitively as whole
// strings. No trimming, no partial matching: "Centro" and "centro" are the
// same route, "Centro Norte" is not.
func routeFilter(origin, destination string) bson.M {
	return bson.M{
		"origen":  primitive.Regex{Pattern: "^" + regexp.QuoteMeta(origin) + "$", Options: "i"},
		"destino": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(destination) + "$", Options: "i"},
	}
}

func (r *mongoFareRepo) collectionFor(class models.VehicleClass) *mongo.Collection {
	if class == models.VehicleCarro {
		return r.carColl
	}
	return r.motoColl
}

// FindFare returns the fare entry for the route within the vehicle-class
// partition, or ErrFareNotFound when no entry matches.
func (r *mongoFareRepo) FindFare(ctx context.Context, origin, destination string, class models.VehicleClass) (*models.FareEntry, error) {
	var entry models.FareEntry
	err := r.collectionFor(class).FindOne(ctx, routeFilter(origin, destination)).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrFareNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up fare for %s -> %s: %w", origin, destination, err)
	}
	return &entry, nil
}
