package usecases

import "corpsbank/internal/shared/logger"

// ListSnapshotsUseCase lists snapshot names, newest first.
type ListSnapshotsUseCase struct {
	manager SnapshotManager
	logger  logger.Interface
}

func NewListSnapshotsUseCase(manager SnapshotManager, log logger.Interface) *ListSnapshotsUseCase {
	return &ListSnapshotsUseCase{
		manager: manager,
		logger:  log,
	}
}

func (uc *ListSnapshotsUseCase) Execute() ([]string, error) {
	names, err := uc.manager.ListSnapshots()
	if err != nil {
		uc.logger.Errorw("failed to list backups", "error", err)
		return nil, err
	}

	uc.logger.Infow("listing backup files", "count", len(names))
	return names, nil
}
