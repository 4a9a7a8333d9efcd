package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAddress   = errors.New("address is required")
	ErrAddressTooLong = errors.New("address is too long")
)
