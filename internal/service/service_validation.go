package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/addrway/internal/adapter"
	"github.com/MKhiriev/addrway/internal/config"
	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/scoring"
	"github.com/MKhiriev/addrway/models"
)

type validationService struct {
	provider adapter.GeocodeProvider
	policy   scoring.Policy

	logger *logger.Logger
}

// NewValidationService builds the core ValidationService: one provider
// search per call, the best match scored with the policy selected by cfg.
func NewValidationService(provider adapter.GeocodeProvider, cfg config.Scoring, logger *logger.Logger) ValidationService {
	policy := scoring.DefaultPolicy()
	policy.RequirePostcode = cfg.PostcodeRequired()

	return &validationService{
		provider: provider,
		policy:   policy,
		logger:   logger,
	}
}

func (s *validationService) Validate(ctx context.Context, address string) (models.ValidationResponse, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return models.ValidationResponse{}, ErrAddressRequired
	}

	results, err := s.provider.Search(ctx, address)
	if err != nil {
		return models.ValidationResponse{}, fmt.Errorf("error searching address with %s: %w", s.provider.Name(), err)
	}

	if len(results) == 0 {
		return models.NoMatchResponse(s.provider.Name()), nil
	}

	best := results[0]
	score := s.policy.Score(best.Address, address)

	return models.ValidationResponse{
		Valid:      score.Valid,
		Confidence: score.Confidence,
		Normalized: best.DisplayName,
		Components: best.Address,
		Lat:        best.Lat,
		Lon:        best.Lon,
		Source:     s.provider.Name(),
	}, nil
}
