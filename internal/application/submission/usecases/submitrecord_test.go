package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpsbank/internal/domain/submission"
	apperrors "corpsbank/internal/shared/errors"
	"corpsbank/internal/shared/logger"
)

// =====================================================================
// Mock repository
// =====================================================================

type mockRepository struct {
	records   map[uint]*submission.Submission
	nextID    uint
	createErr error
	updateErr error
	listErr   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		records: make(map[uint]*submission.Submission),
		nextID:  1,
	}
}

func (m *mockRepository) Create(ctx context.Context, sub *submission.Submission) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.records {
		if existing.AccountNumber == sub.AccountNumber {
			return submission.NewDuplicateAccountError(sub.AccountNumber)
		}
	}
	sub.ID = m.nextID
	sub.SubmittedAt = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	m.nextID++
	copied := *sub
	m.records[sub.ID] = &copied
	return nil
}

func (m *mockRepository) Update(ctx context.Context, sub *submission.Submission) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.records[sub.ID]; !ok {
		return submission.NewNotFoundError(sub.ID)
	}
	copied := *sub
	m.records[sub.ID] = &copied
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.records[id]; !ok {
		return submission.NewNotFoundError(id)
	}
	delete(m.records, id)
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*submission.Submission, error) {
	sub, ok := m.records[id]
	if !ok {
		return nil, submission.NewNotFoundError(id)
	}
	copied := *sub
	return &copied, nil
}

func (m *mockRepository) ListAll(ctx context.Context) ([]*submission.Submission, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	subs := make([]*submission.Submission, 0, len(m.records))
	for _, sub := range m.records {
		copied := *sub
		subs = append(subs, &copied)
	}
	return subs, nil
}

func (m *mockRepository) Search(ctx context.Context, query string) ([]*submission.Submission, error) {
	return m.ListAll(ctx)
}

// =====================================================================
// Test helpers
// =====================================================================

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validFields() RecordFields {
	return RecordFields{
		StateCode:       "ab/23c/1234",
		CorpsMemberName: "john doe",
		Sex:             "male",
		BankName:        "first bank",
		AccountNumber:   "0123456789",
		PhoneNumber:     "08012345678",
	}
}

// =====================================================================
// TestSubmitRecordUseCase
// =====================================================================

func TestSubmitRecordUseCase_Success(t *testing.T) {
	repo := newMockRepository()
	uc := NewSubmitRecordUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), SubmitRecordCommand{Fields: validFields()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, "JOHN DOE", result.CorpsMemberName)
	assert.Equal(t, "0123456789", result.AccountNumber)
	assert.Equal(t, "2023-06-01 12:00:00", result.SubmittedAt)
	assert.Len(t, repo.records, 1)
}

func TestSubmitRecordUseCase_MissingRequiredField(t *testing.T) {
	repo := newMockRepository()
	uc := NewSubmitRecordUseCase(repo, testLogger())

	fields := validFields()
	fields.AccountNumber = ""

	result, err := uc.Execute(context.Background(), SubmitRecordCommand{Fields: fields})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Empty(t, repo.records)
}

func TestSubmitRecordUseCase_DuplicateAccountNumber(t *testing.T) {
	repo := newMockRepository()
	uc := NewSubmitRecordUseCase(repo, testLogger())

	_, err := uc.Execute(context.Background(), SubmitRecordCommand{Fields: validFields()})
	require.NoError(t, err)

	fields := validFields()
	fields.CorpsMemberName = "someone else"
	result, err := uc.Execute(context.Background(), SubmitRecordCommand{Fields: fields})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Len(t, repo.records, 1)
}

// =====================================================================
// TestPreviewRecordUseCase
// =====================================================================

func TestPreviewRecordUseCase_NormalizesWithoutPersisting(t *testing.T) {
	uc := NewPreviewRecordUseCase()

	preview := uc.Execute(PreviewRecordCommand{Fields: RecordFields{
		CorpsMemberName: "  john doe  ",
		BankName:        "<b>first bank</b>",
	}})

	require.NotNil(t, preview)
	assert.Equal(t, "JOHN DOE", preview.CorpsMemberName)
	assert.Equal(t, "FIRST BANK", preview.BankName)
}

// =====================================================================
// TestUpdateRecordUseCase
// =====================================================================

func TestUpdateRecordUseCase_Success(t *testing.T) {
	repo := newMockRepository()
	submitUC := NewSubmitRecordUseCase(repo, testLogger())
	created, err := submitUC.Execute(context.Background(), SubmitRecordCommand{Fields: validFields()})
	require.NoError(t, err)

	uc := NewUpdateRecordUseCase(repo, testLogger())
	fields := validFields()
	fields.CorpsMemberName = "jane doe"

	result, err := uc.Execute(context.Background(), UpdateRecordCommand{ID: created.ID, Fields: fields})

	require.NoError(t, err)
	assert.Equal(t, created.ID, result.ID)
	assert.Equal(t, "JANE DOE", result.CorpsMemberName)
	assert.Equal(t, created.SubmittedAt, result.SubmittedAt)
}

func TestUpdateRecordUseCase_NotFound(t *testing.T) {
	uc := NewUpdateRecordUseCase(newMockRepository(), testLogger())

	result, err := uc.Execute(context.Background(), UpdateRecordCommand{ID: 999, Fields: validFields()})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateRecordUseCase_InvalidFieldsRejectedBeforeWrite(t *testing.T) {
	repo := newMockRepository()
	submitUC := NewSubmitRecordUseCase(repo, testLogger())
	created, err := submitUC.Execute(context.Background(), SubmitRecordCommand{Fields: validFields()})
	require.NoError(t, err)

	uc := NewUpdateRecordUseCase(repo, testLogger())
	fields := validFields()
	fields.PhoneNumber = "   "

	result, err := uc.Execute(context.Background(), UpdateRecordCommand{ID: created.ID, Fields: fields})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "08012345678", stored.PhoneNumber)
}

// =====================================================================
// TestDeleteRecordUseCase
// =====================================================================

func TestDeleteRecordUseCase(t *testing.T) {
	repo := newMockRepository()
	submitUC := NewSubmitRecordUseCase(repo, testLogger())
	created, err := submitUC.Execute(context.Background(), SubmitRecordCommand{Fields: validFields()})
	require.NoError(t, err)

	uc := NewDeleteRecordUseCase(repo, testLogger())

	t.Run("removes record", func(t *testing.T) {
		require.NoError(t, uc.Execute(context.Background(), created.ID))
		assert.Empty(t, repo.records)
	})

	t.Run("not found afterwards", func(t *testing.T) {
		err := uc.Execute(context.Background(), created.ID)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
