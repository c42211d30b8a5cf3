package usecases

import (
	"context"
	"fmt"

	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/domain/submission"
	apperrors "corpsbank/internal/shared/errors"
	"corpsbank/internal/shared/logger"
)

type SubmitRecordCommand struct {
	Fields RecordFields
}

// SubmitRecordUseCase commits a validated submission to the record store.
type SubmitRecordUseCase struct {
	repo   submission.Repository
	logger logger.Interface
}

func NewSubmitRecordUseCase(repo submission.Repository, log logger.Interface) *SubmitRecordUseCase {
	return &SubmitRecordUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *SubmitRecordUseCase) Execute(ctx context.Context, cmd SubmitRecordCommand) (*dto.SubmissionDTO, error) {
	record, err := submission.NewSubmission(cmd.Fields.toPayload())
	if err != nil {
		uc.logger.Warnw("submission rejected", "error", err)
		return nil, err
	}

	if err := uc.repo.Create(ctx, record); err != nil {
		if apperrors.IsConflictError(err) {
			// User-correctable; the form layer re-presents the form
			return nil, err
		}
		uc.logger.Errorw("failed to persist submission", "error", err)
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}

	uc.logger.Infow("new registration added", "id", record.ID, "corps_member_name", record.CorpsMemberName)
	return dto.FromEntity(record), nil
}
