package workflow

import (
	"context"

	driverRepo "taxibot/database/repository/driver"
	fareRepo "taxibot/database/repository/fare"
	tripRepo "taxibot/database/repository/trip"
	"taxibot/models"
)

// QuoteResult is the outcome of a price quote, projected field by field
// into the session parameters by the webhook boundary. ErrorMessage is
// non-empty only when no fare exists for the route.
type QuoteResult struct {
	PriceLocal   float64
	PriceUSD     float64
	VehicleClass models.VehicleClass
	TripID       string
	ErrorMessage string
}

// ConfirmResult is the outcome of payment confirmation and driver
// assignment. DriverName and DriverPhone are set only when a driver was
// actually claimed.
type ConfirmResult struct {
	PaymentConfirmed bool
	DriverName       string
	DriverPhone      string
	UserMessage      string
}

// WorkflowService is the two-step trip workflow: quote first, then confirm
// payment and assign a driver. Each call is stateless; the dialogue
// session's parameters are the only link between the two steps.
type WorkflowService interface {
	QuoteTrip(ctx context.Context, origin, destination string, passengers int) (*QuoteResult, error)
	ConfirmPaymentAndAssignDriver(ctx context.Context, tripID, paymentRef string) (*ConfirmResult, error)
}

// DefaultWorkflowService sequences the fare catalog, trip records and the
// driver pool. ExchangeRate converts the local quote into USD.
type DefaultWorkflowService struct {
	Fares        fareRepo.FareRepository
	Trips        tripRepo.TripRepository
	Drivers      driverRepo.DriverRepository
	Payments     PaymentValidator
	ExchangeRate float64
}
