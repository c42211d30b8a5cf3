package usecases

import (
	"context"
	"fmt"

	"corpsbank/internal/domain/submission"
	"corpsbank/internal/shared/logger"
)

// RecordExporter serializes records into a spreadsheet file and returns its
// path.
type RecordExporter interface {
	Export(records []*submission.Submission) (string, error)
}

// ExportRecordsUseCase writes the full record store into a spreadsheet.
type ExportRecordsUseCase struct {
	repo     submission.Reader
	exporter RecordExporter
	logger   logger.Interface
}

func NewExportRecordsUseCase(repo submission.Reader, exporter RecordExporter, log logger.Interface) *ExportRecordsUseCase {
	return &ExportRecordsUseCase{
		repo:     repo,
		exporter: exporter,
		logger:   log,
	}
}

func (uc *ExportRecordsUseCase) Execute(ctx context.Context) (string, error) {
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return "", err
	}

	path, err := uc.exporter.Export(records)
	if err != nil {
		uc.logger.Errorw("export failed", "error", err)
		return "", fmt.Errorf("export failed: %w", err)
	}

	uc.logger.Infow("data exported", "path", path, "records", len(records))
	return path, nil
}
