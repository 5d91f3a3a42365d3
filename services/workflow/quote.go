package workflow

import (
	"context"
	"errors"
	"fmt"
	"math"

	fareRepo "taxibot/database/repository/fare"
	"taxibot/models"
)

// DefaultExchangeRate is the fixed Bs-per-USD conversion used when no rate
// is configured.
const DefaultExchangeRate = 36.5

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *DefaultWorkflowService) rate() float64 {
	if s.ExchangeRate > 0 {
		return s.ExchangeRate
	}
	return DefaultExchangeRate
}

// QuoteTrip derives the vehicle class from the passenger count, looks up
// the route's fare and records a fresh trip. Every quote call creates a new
// trip record, even for a route nobody can price.
func (s *DefaultWorkflowService) QuoteTrip(ctx context.Context, origin, destination string, passengers int) (*QuoteResult, error) {
	class := models.VehicleClassFor(passengers)

	trip := models.Trip{
		Origin:       origin,
		Destination:  destination,
		Passengers:   passengers,
		VehicleClass: class,
	}

	entry, err := s.Fares.FindFare(ctx, origin, destination, class)
	if errors.Is(err, fareRepo.ErrFareNotFound) {
		reason := noFareMessage(origin, destination)
		tripID, err := s.Trips.CreateUnquotable(ctx, trip, reason)
		if err != nil {
			return nil, err
		}
		return &QuoteResult{
			VehicleClass: class,
			TripID:       tripID,
			ErrorMessage: reason,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("quote %s -> %s: %w", origin, destination, err)
	}

	trip.PriceLocal = entry.Price
	trip.PriceUSD = roundTo2(entry.Price / s.rate())

	tripID, err := s.Trips.CreateQuoted(ctx, trip)
	if err != nil {
		return nil, err
	}
	return &QuoteResult{
		PriceLocal:   trip.PriceLocal,
		PriceUSD:     trip.PriceUSD,
		VehicleClass: class,
		TripID:       tripID,
	}, nil
}
