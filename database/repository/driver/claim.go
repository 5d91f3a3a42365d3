package driverRepo

import (
	"context"
	"errors"
	"fmt"

	"taxibot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func claimFilter() bson.M {
	return bson.M{"estado": models.DriverAvailable}
}

func claimUpdate() bson.M {
	return bson.M{"$set": bson.M{"estado": models.DriverBusy}}
}

// ClaimAvailable atomically finds one available driver and flips it to busy
// in a single FindOneAndUpdate, so two concurrent confirmations can never
// claim the same driver. Which available driver gets picked is arbitrary;
// there is no proximity or rating policy.
func (r *mongoDriverRepo) ClaimAvailable(ctx context.Context) (*models.Driver, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var driver models.Driver
	err := r.coll.FindOneAndUpdate(ctx, claimFilter(), claimUpdate(), opts).Decode(&driver)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDriverAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim driver: %w", err)
	}
	return &driver, nil
}
