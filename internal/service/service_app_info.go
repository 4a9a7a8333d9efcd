package service

import (
	"context"

	"github.com/MKhiriev/addrway/internal/config"
	"github.com/MKhiriev/addrway/internal/logger"
)

type appInfoService struct {
	appName    string
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Name == "" {
		return nil, ErrNameIsNotSpecified
	}
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:    cfg.Name,
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppName(ctx context.Context) string {
	return s.appName
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
