package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/addrway/models"
)

// FieldAddress targets the free-form address of a validation request.
const FieldAddress = "Address"

// AddressValidator implements [Validator] for [models.ValidateRequest].
//
// The address is trimmed before the struct rules run, so a whitespace-only
// address is reported as empty and the length limit applies to the trimmed
// text. Length is counted in runes.
type AddressValidator struct {
	validate *validator.Validate
}

// NewAddressValidator constructs a new AddressValidator and returns it as
// the Validator interface.
func NewAddressValidator() Validator {
	return &AddressValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate accepts models.ValidateRequest, *models.ValidateRequest or a bare
// address string. Returns ErrUnsupportedType for anything else and
// ErrUnknownField when fields names something other than FieldAddress.
func (v *AddressValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var req models.ValidateRequest
	switch value := obj.(type) {
	case models.ValidateRequest:
		req = value
	case *models.ValidateRequest:
		if value == nil {
			return ErrEmptyAddress
		}
		req = *value
	case string:
		req = models.ValidateRequest{Address: value}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	for _, field := range fields {
		if field != FieldAddress {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	req.Address = strings.TrimSpace(req.Address)

	if err := v.validate.StructCtx(ctx, req); err != nil {
		return translate(err)
	}

	return nil
}

func translate(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	for _, fe := range validationErrors {
		if fe.Field() != FieldAddress {
			continue
		}
		switch fe.Tag() {
		case "required":
			return ErrEmptyAddress
		case "max":
			return fmt.Errorf("%w: limit is %s characters", ErrAddressTooLong, fe.Param())
		}
	}

	return err
}
