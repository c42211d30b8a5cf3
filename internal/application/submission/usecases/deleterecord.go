package usecases

import (
	"context"

	"corpsbank/internal/domain/submission"
	"corpsbank/internal/shared/logger"
)

// DeleteRecordUseCase removes a record permanently. There is no soft delete.
type DeleteRecordUseCase struct {
	repo   submission.Repository
	logger logger.Interface
}

func NewDeleteRecordUseCase(repo submission.Repository, log logger.Interface) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *DeleteRecordUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Infow("record deleted", "id", id)
	return nil
}
