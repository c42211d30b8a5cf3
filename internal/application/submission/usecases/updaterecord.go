package usecases

import (
	"context"
	"fmt"

	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/domain/submission"
	apperrors "corpsbank/internal/shared/errors"
	"corpsbank/internal/shared/logger"
)

type UpdateRecordCommand struct {
	ID     uint
	Fields RecordFields
}

// UpdateRecordUseCase overwrites all mutable fields of an existing record.
// id and submitted_at are never altered.
type UpdateRecordUseCase struct {
	repo   submission.Repository
	logger logger.Interface
}

func NewUpdateRecordUseCase(repo submission.Repository, log logger.Interface) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *UpdateRecordUseCase) Execute(ctx context.Context, cmd UpdateRecordCommand) (*dto.SubmissionDTO, error) {
	record, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := record.ApplyUpdate(cmd.Fields.toPayload()); err != nil {
		uc.logger.Warnw("update rejected", "id", cmd.ID, "error", err)
		return nil, err
	}

	if err := uc.repo.Update(ctx, record); err != nil {
		if apperrors.IsConflictError(err) || apperrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update submission", "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	uc.logger.Infow("record updated", "id", cmd.ID)
	return dto.FromEntity(record), nil
}
