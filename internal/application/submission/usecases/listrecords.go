package usecases

import (
	"context"

	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/domain/submission"
	"corpsbank/internal/shared/logger"
)

// ListRecordsUseCase returns every record, newest first.
type ListRecordsUseCase struct {
	repo   submission.Reader
	logger logger.Interface
}

func NewListRecordsUseCase(repo submission.Reader, log logger.Interface) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *ListRecordsUseCase) Execute(ctx context.Context) ([]*dto.SubmissionDTO, error) {
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromEntities(records), nil
}
