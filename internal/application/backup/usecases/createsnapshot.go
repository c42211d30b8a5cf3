package usecases

import (
	"fmt"

	"corpsbank/internal/shared/logger"
)

// CreateSnapshotUseCase takes a full point-in-time copy of the record store.
type CreateSnapshotUseCase struct {
	manager SnapshotManager
	logger  logger.Interface
}

func NewCreateSnapshotUseCase(manager SnapshotManager, log logger.Interface) *CreateSnapshotUseCase {
	return &CreateSnapshotUseCase{
		manager: manager,
		logger:  log,
	}
}

func (uc *CreateSnapshotUseCase) Execute() (string, error) {
	name, err := uc.manager.CreateSnapshot()
	if err != nil {
		uc.logger.Errorw("backup failed", "error", err)
		return "", fmt.Errorf("backup failed: %w", err)
	}

	uc.logger.Infow("backup created", "name", name)
	return name, nil
}
