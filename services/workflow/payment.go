package workflow

import "context"

// PaymentValidator checks a payment reference with whatever backend is
// wired in. A real bank integration replaces the implementation, not the
// workflow.
type PaymentValidator interface {
	Validate(ctx context.Context, reference string) (bool, error)
}

type approveAllValidator struct{}

// NewApproveAllValidator returns the placeholder validator: every reference
// passes until a bank API is integrated.
func NewApproveAllValidator() PaymentValidator {
	return approveAllValidator{}
}

func (approveAllValidator) Validate(ctx context.Context, reference string) (bool, error) {
	return true, nil
}
