package usecases

import (
	"context"

	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/shared/logger"
)

type GetSnapshotRecordQuery struct {
	Snapshot string
	ID       uint
}

// GetSnapshotRecordUseCase fetches one record from a named snapshot.
type GetSnapshotRecordUseCase struct {
	manager SnapshotManager
	logger  logger.Interface
}

func NewGetSnapshotRecordUseCase(manager SnapshotManager, log logger.Interface) *GetSnapshotRecordUseCase {
	return &GetSnapshotRecordUseCase{
		manager: manager,
		logger:  log,
	}
}

func (uc *GetSnapshotRecordUseCase) Execute(ctx context.Context, query GetSnapshotRecordQuery) (*dto.SubmissionDTO, error) {
	reader, err := uc.manager.OpenSnapshot(query.Snapshot)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			uc.logger.Warnw("failed to close backup handle", "name", query.Snapshot, "error", closeErr)
		}
	}()

	record, err := reader.GetByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromEntity(record), nil
}
