package tripRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taxibot/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateQuoted inserts a freshly quoted trip and returns its id.
func (r *mongoTripRepo) CreateQuoted(ctx context.Context, trip models.Trip) (string, error) {
	trip.ID = uuid.New().String()
	trip.Status = models.TripQuoted
	trip.PaymentStatus = models.PaymentPending
	trip.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, trip); err != nil {
		return "", fmt.Errorf("failed to create quoted trip: %w", err)
	}
	return trip.ID, nil
}

// CreateUnquotable records a quote request for which no fare exists. The
// record still gets created so failed quotes stay traceable; the reason is
// what the dialogue layer speaks back.
func (r *mongoTripRepo) CreateUnquotable(ctx context.Context, trip models.Trip, reason string) (string, error) {
	trip.ID = uuid.New().String()
	trip.Status = models.TripRouteNotFound
	trip.PaymentStatus = models.PaymentPending
	trip.PriceLocal = 0
	trip.PriceUSD = 0
	trip.QuoteError = reason
	trip.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, trip); err != nil {
		return "", fmt.Errorf("failed to create unquotable trip: %w", err)
	}
	return trip.ID, nil
}

// markUpdate applies a status transition to one trip and returns the
// updated document, or ErrTripNotFound if the id does not resolve.
func (r *mongoTripRepo) markUpdate(ctx context.Context, tripID string, set bson.M) (*models.Trip, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Trip
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": tripID}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("trip %s: %w", tripID, ErrTripNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update trip %s: %w", tripID, err)
	}
	return &updated, nil
}

// MarkAssigned records a verified payment and the assigned driver.
func (r *mongoTripRepo) MarkAssigned(ctx context.Context, tripID string, driver models.Driver, paymentRef string) (*models.Trip, error) {
	return r.markUpdate(ctx, tripID, bson.M{
		"estado":         models.TripAssigned,
		"estadoPago":     models.PaymentVerified,
		"conductorId":    driver.ID,
		"referenciaPago": paymentRef,
	})
}

// MarkNoDriverAvailable records a verified payment for which no driver
// could be claimed. Payment success and assignment success are independent.
func (r *mongoTripRepo) MarkNoDriverAvailable(ctx context.Context, tripID, paymentRef string) (*models.Trip, error) {
	return r.markUpdate(ctx, tripID, bson.M{
		"estado":         models.TripNoDriverAvailable,
		"estadoPago":     models.PaymentVerified,
		"referenciaPago": paymentRef,
	})
}

// GetByID returns a trip by its id.
func (r *mongoTripRepo) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	var trip models.Trip
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trip)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("trip %s: %w", id, ErrTripNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip %s: %w", id, err)
	}
	return &trip, nil
}
