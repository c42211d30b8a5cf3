package usecases

import (
	"context"
	"fmt"

	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/domain/submission"
	apperrors "corpsbank/internal/shared/errors"
	"corpsbank/internal/shared/logger"
)

// MessageSender delivers a plain-text message to a recipient address.
type MessageSender interface {
	Send(recipient, subject, body string) error
}

type ForwardRecordCommand struct {
	ID        uint
	Recipient string
}

// ForwardRecordUseCase emails the full details of one record.
type ForwardRecordUseCase struct {
	repo   submission.Reader
	sender MessageSender
	logger logger.Interface
}

func NewForwardRecordUseCase(repo submission.Reader, sender MessageSender, log logger.Interface) *ForwardRecordUseCase {
	return &ForwardRecordUseCase{
		repo:   repo,
		sender: sender,
		logger: log,
	}
}

func (uc *ForwardRecordUseCase) Execute(ctx context.Context, cmd ForwardRecordCommand) error {
	if cmd.Recipient == "" {
		return apperrors.NewValidationError("missing required field", "recipient")
	}

	record, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	recordDTO := dto.FromEntity(record)
	subject := fmt.Sprintf("Forwarded Record Details for %s", recordDTO.CorpsMemberName)

	if err := uc.sender.Send(cmd.Recipient, subject, recordDTO.FormatText()); err != nil {
		uc.logger.Errorw("failed to forward record", "id", cmd.ID, "recipient", cmd.Recipient, "error", err)
		return fmt.Errorf("failed to forward record: %w", err)
	}

	uc.logger.Infow("record forwarded", "id", cmd.ID, "recipient", cmd.Recipient)
	return nil
}
