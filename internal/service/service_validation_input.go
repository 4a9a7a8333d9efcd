package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/addrway/internal/validators"
	"github.com/MKhiriev/addrway/models"
)

// InputValidationService rejects malformed addresses before they reach the
// wrapped service, so no provider request is made for them.
type InputValidationService struct {
	inner     ValidationService
	validator validators.Validator
}

func NewInputValidationService() ValidationServiceWrapper {
	return &InputValidationService{
		validator: validators.NewAddressValidator(),
	}
}

func (v *InputValidationService) Validate(ctx context.Context, address string) (models.ValidationResponse, error) {
	if err := v.validator.Validate(ctx, models.ValidateRequest{Address: address}, validators.FieldAddress); err != nil {
		switch {
		case errors.Is(err, validators.ErrEmptyAddress):
			return models.ValidationResponse{}, ErrAddressRequired
		case errors.Is(err, validators.ErrAddressTooLong):
			return models.ValidationResponse{}, fmt.Errorf("%w: %w", ErrAddressTooLong, err)
		default:
			return models.ValidationResponse{}, fmt.Errorf("error during address validation: %w", err)
		}
	}

	return v.inner.Validate(ctx, address)
}

func (v *InputValidationService) Wrap(wrapped ValidationService) ValidationService {
	v.inner = wrapped
	return v
}
