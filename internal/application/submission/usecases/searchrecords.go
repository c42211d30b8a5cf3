package usecases

import (
	"context"

	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/domain/submission"
	"corpsbank/internal/shared/logger"
)

type SearchRecordsQuery struct {
	Query string
}

// SearchRecordsUseCase matches records by case-insensitive substring against
// name, state code, and account number. An empty query returns all records.
type SearchRecordsUseCase struct {
	repo   submission.Reader
	logger logger.Interface
}

func NewSearchRecordsUseCase(repo submission.Reader, log logger.Interface) *SearchRecordsUseCase {
	return &SearchRecordsUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *SearchRecordsUseCase) Execute(ctx context.Context, query SearchRecordsQuery) ([]*dto.SubmissionDTO, error) {
	records, err := uc.repo.Search(ctx, query.Query)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("search performed", "query", query.Query, "matches", len(records))
	return dto.FromEntities(records), nil
}
