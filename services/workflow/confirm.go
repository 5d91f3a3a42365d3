package workflow

import (
	"context"
	"errors"

	driverRepo "taxibot/database/repository/driver"
)

// ConfirmPaymentAndAssignDriver validates the payment reference, claims a
// driver from the pool and advances the trip. A declined payment touches no
// trip or driver state. A missing trip id is a caller error and propagates;
// an empty driver pool is a normal outcome with the payment still recorded.
func (s *DefaultWorkflowService) ConfirmPaymentAndAssignDriver(ctx context.Context, tripID, paymentRef string) (*ConfirmResult, error) {
	ok, err := s.Payments.Validate(ctx, paymentRef)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &ConfirmResult{
			PaymentConfirmed: false,
			UserMessage:      paymentFailedMessage,
		}, nil
	}

	driver, err := s.Drivers.ClaimAvailable(ctx)
	if errors.Is(err, driverRepo.ErrNoDriverAvailable) {
		if _, err := s.Trips.MarkNoDriverAvailable(ctx, tripID, paymentRef); err != nil {
			return nil, err
		}
		return &ConfirmResult{
			PaymentConfirmed: true,
			UserMessage:      allDriversBusyMessage,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.Trips.MarkAssigned(ctx, tripID, *driver, paymentRef); err != nil {
		return nil, err
	}
	return &ConfirmResult{
		PaymentConfirmed: true,
		DriverName:       driver.Name,
		DriverPhone:      driver.Phone,
		UserMessage:      assignedMessage(driver.Name, driver.Phone),
	}, nil
}
