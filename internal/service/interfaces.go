package service

import (
	"context"

	"github.com/MKhiriev/addrway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/validation_service_mock.go -package=mock

// ValidationService resolves and scores a single free-form address.
type ValidationService interface {
	// Validate returns the scored best match for address. A provider that
	// finds nothing yields a no-match response and a nil error.
	Validate(ctx context.Context, address string) (models.ValidationResponse, error)
}

type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
