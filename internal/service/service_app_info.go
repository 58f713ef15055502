package service

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

func (s *appInfoService) Version(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
