package usecases

import (
	"context"

	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/domain/submission"
	"corpsbank/internal/shared/logger"
)

// GetRecordUseCase fetches a single record by id.
type GetRecordUseCase struct {
	repo   submission.Reader
	logger logger.Interface
}

func NewGetRecordUseCase(repo submission.Reader, log logger.Interface) *GetRecordUseCase {
	return &GetRecordUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *GetRecordUseCase) Execute(ctx context.Context, id uint) (*dto.SubmissionDTO, error) {
	record, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromEntity(record), nil
}
