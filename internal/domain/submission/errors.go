package submission

import (
	"fmt"

	apperrors "corpsbank/internal/shared/errors"
)

func NewDuplicateAccountError(accountNumber string) *apperrors.AppError {
	return apperrors.NewConflictError("account number already exists", accountNumber)
}

func NewNotFoundError(id uint) *apperrors.AppError {
	return apperrors.NewNotFoundError("submission not found", fmt.Sprintf("id=%d", id))
}
