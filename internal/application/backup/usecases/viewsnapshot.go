package usecases

import (
	"context"

	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/shared/logger"
)

// ViewSnapshotUseCase lists every record inside a named snapshot.
type ViewSnapshotUseCase struct {
	manager SnapshotManager
	logger  logger.Interface
}

func NewViewSnapshotUseCase(manager SnapshotManager, log logger.Interface) *ViewSnapshotUseCase {
	return &ViewSnapshotUseCase{
		manager: manager,
		logger:  log,
	}
}

func (uc *ViewSnapshotUseCase) Execute(ctx context.Context, name string) ([]*dto.SubmissionDTO, error) {
	reader, err := uc.manager.OpenSnapshot(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			uc.logger.Warnw("failed to close backup handle", "name", name, "error", closeErr)
		}
	}()

	records, err := reader.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to read backup", "name", name, "error", err)
		return nil, err
	}

	return dto.FromEntities(records), nil
}
