package usecases

import (
	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/domain/submission"
)

type PreviewRecordCommand struct {
	Fields RecordFields
}

// PreviewRecordUseCase normalizes a payload for confirmation before commit.
// It is pure: no storage is touched and nothing is persisted.
type PreviewRecordUseCase struct{}

func NewPreviewRecordUseCase() *PreviewRecordUseCase {
	return &PreviewRecordUseCase{}
}

func (uc *PreviewRecordUseCase) Execute(cmd PreviewRecordCommand) *dto.PreviewDTO {
	normalized := submission.Normalize(cmd.Fields.toPayload())
	return dto.FromPayload(normalized)
}
