package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	"corpsbank/internal/domain/submission"
	"corpsbank/internal/infrastructure/persistence/mappers"
	"corpsbank/internal/infrastructure/persistence/models"
	apperrors "corpsbank/internal/shared/errors"
	"corpsbank/internal/shared/logger"
)

// submissionReader implements the read-only half of the store. It is shared
// between the live repository and backup snapshot handles, so a snapshot can
// never be mutated through its handle.
type submissionReader struct {
	db     *gorm.DB
	mapper mappers.SubmissionMapper
	logger logger.Interface
}

// SubmissionRepository is the live record store backed by the sqlite file.
type SubmissionRepository struct {
	submissionReader
	writeMu sync.Locker
}

// NewSubmissionRepository creates the live record store. writeMu serializes
// mutations with backup snapshot copies; pass the same locker to both.
func NewSubmissionRepository(db *gorm.DB, writeMu sync.Locker, log logger.Interface) submission.Repository {
	return &SubmissionRepository{
		submissionReader: submissionReader{
			db:     db,
			mapper: mappers.NewSubmissionMapper(),
			logger: log,
		},
		writeMu: writeMu,
	}
}

// NewSubmissionReader creates a read-only view over db. Used for backup
// snapshot handles.
func NewSubmissionReader(db *gorm.DB, log logger.Interface) submission.Reader {
	return &submissionReader{
		db:     db,
		mapper: mappers.NewSubmissionMapper(),
		logger: log,
	}
}

// Create inserts a new record. The unique index on account_number is the
// authority on duplicates; the pre-check below only produces a friendlier
// error for the common case.
func (r *SubmissionRepository) Create(ctx context.Context, sub *submission.Submission) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SubmissionModel{}).
		Where("account_number = ?", sub.AccountNumber).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check account number existence", "error", err)
		return fmt.Errorf("failed to check account number: %w", err)
	}
	if count > 0 {
		r.logger.Warnw("duplicate submission attempted", "account_number", sub.AccountNumber)
		return submission.NewDuplicateAccountError(sub.AccountNumber)
	}

	model := r.mapper.ToModel(sub)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			r.logger.Warnw("duplicate submission rejected by unique index", "account_number", sub.AccountNumber)
			return submission.NewDuplicateAccountError(sub.AccountNumber)
		}
		r.logger.Errorw("failed to create submission", "error", err)
		return fmt.Errorf("failed to create submission: %w", err)
	}

	sub.ID = model.ID
	sub.SubmittedAt = model.SubmittedAt

	r.logger.Infow("submission created", "id", model.ID, "corps_member_name", model.CorpsMemberName)
	return nil
}

// Update overwrites all mutable fields; id and submitted_at are never touched.
// Uniqueness of the account number is re-checked against the other rows.
func (r *SubmissionRepository) Update(ctx context.Context, sub *submission.Submission) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SubmissionModel{}).
		Where("account_number = ? AND id <> ?", sub.AccountNumber, sub.ID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check account number existence", "id", sub.ID, "error", err)
		return fmt.Errorf("failed to check account number: %w", err)
	}
	if count > 0 {
		return submission.NewDuplicateAccountError(sub.AccountNumber)
	}

	model := r.mapper.ToModel(sub)
	result := r.db.WithContext(ctx).Model(&models.SubmissionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"state_code":         model.StateCode,
			"corps_member_name":  model.CorpsMemberName,
			"sex":                model.Sex,
			"bank_name":          model.BankName,
			"account_number":     model.AccountNumber,
			"phone_number":       model.PhoneNumber,
			"callup_number":      model.CallupNumber,
			"callup_letter_name": model.CallupLetterName,
			"account_name":       model.AccountName,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return submission.NewDuplicateAccountError(sub.AccountNumber)
		}
		r.logger.Errorw("failed to update submission", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update submission: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Identical values also report zero rows, so confirm the row is gone
		// before reporting not found.
		var exists int64
		if err := r.db.WithContext(ctx).Model(&models.SubmissionModel{}).
			Where("id = ?", model.ID).
			Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to verify submission existence: %w", err)
		}
		if exists == 0 {
			return submission.NewNotFoundError(model.ID)
		}
	}

	r.logger.Infow("submission updated", "id", model.ID)
	return nil
}

// Delete removes the row permanently.
func (r *SubmissionRepository) Delete(ctx context.Context, id uint) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	result := r.db.WithContext(ctx).Delete(&models.SubmissionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete submission", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete submission: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return submission.NewNotFoundError(id)
	}

	r.logger.Infow("submission deleted", "id", id)
	return nil
}

// GetByID retrieves a record by ID.
func (r *submissionReader) GetByID(ctx context.Context, id uint) (*submission.Submission, error) {
	var model models.SubmissionModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, submission.NewNotFoundError(id)
		}
		r.logger.Errorw("failed to get submission", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// ListAll returns every record, newest first.
func (r *submissionReader) ListAll(ctx context.Context) ([]*submission.Submission, error) {
	var submissionModels []*models.SubmissionModel

	if err := r.db.WithContext(ctx).
		Order("submitted_at DESC, id DESC").
		Find(&submissionModels).Error; err != nil {
		r.logger.Errorw("failed to list submissions", "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return r.mapper.ToEntities(submissionModels), nil
}

// Search returns records whose name, state code, or account number contains
// the query, case-insensitively. All columns are stored upper-cased, so
// upper-casing the query makes the comparison case-insensitive by
// construction. The query is matched as given, whitespace included; an empty
// query matches every record.
func (r *submissionReader) Search(ctx context.Context, query string) ([]*submission.Submission, error) {
	pattern := "%" + strings.ToUpper(query) + "%"

	var submissionModels []*models.SubmissionModel
	if err := r.db.WithContext(ctx).
		Where("corps_member_name LIKE ? OR state_code LIKE ? OR account_number LIKE ?",
			pattern, pattern, pattern).
		Order("submitted_at DESC, id DESC").
		Find(&submissionModels).Error; err != nil {
		r.logger.Errorw("failed to search submissions", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search submissions: %w", err)
	}

	return r.mapper.ToEntities(submissionModels), nil
}
