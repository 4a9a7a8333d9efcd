package service

import "errors"

var (
	ErrAddressRequired  = errors.New("address is required")
	ErrAddressNotString = errors.New("address must be a string")
	ErrAddressTooLong   = errors.New("address is too long")
	ErrInvalidJSON      = errors.New("request body is not valid JSON")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNameIsNotSpecified    = errors.New("app name is not specified")
)
