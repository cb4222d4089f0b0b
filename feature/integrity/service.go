package integrity

import (
	"context"
	"io/fs"

	"onboarding-dashboard/core/storage"
	"onboarding-dashboard/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service handles integrity checks.
type Service struct {
	assets fs.FS
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil when no
// component depends on object storage; storage checks are then skipped.
func NewService(assets fs.FS, client storage.Client, bucket, region string, logger *zap.Logger) *Service {
	return &Service{
		assets: assets,
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
	}
}

// StorageEnabled reports whether storage checks apply.
func (s *Service) StorageEnabled() bool {
	return s.client != nil
}

// CheckAssets returns the missing template and static files.
func (s *Service) CheckAssets() []string {
	return checks.CheckAssets(s.assets)
}

// CheckStorage returns the missing bucket folders.
func (s *Service) CheckStorage(ctx context.Context) ([]string, error) {
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates the bucket and the missing folders.
func (s *Service) FixStorage(ctx context.Context, missing []string) error {
	return checks.FixStorage(ctx, s.client, s.bucket, s.region, s.logger, missing)
}

// Report runs every applicable check.
func (s *Service) Report(ctx context.Context) map[string]any {
	report := make(map[string]any)

	report["assets"] = map[string]any{"status": "ok", "missing": s.CheckAssets()}

	if !s.StorageEnabled() {
		report["storage"] = map[string]any{"status": "skipped"}
		return report
	}

	if missing, err := s.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = map[string]any{"status": "ok", "missing": missing}
	}

	return report
}
