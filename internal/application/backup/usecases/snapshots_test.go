package usecases

import (
	"context"
	"errors"
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
// Mocks
// =====================================================================

type mockReader struct {
	records []*submission.Submission
	listErr error
	closed  bool
}

func (m *mockReader) GetByID(ctx context.Context, id uint) (*submission.Submission, error) {
	for _, sub := range m.records {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, submission.NewNotFoundError(id)
}

func (m *mockReader) ListAll(ctx context.Context) ([]*submission.Submission, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

func (m *mockReader) Search(ctx context.Context, query string) ([]*submission.Submission, error) {
	return m.records, nil
}

func (m *mockReader) Close() error {
	m.closed = true
	return nil
}

type mockSnapshotManager struct {
	created   string
	createErr error
	names     []string
	listErr   error
	readers   map[string]*mockReader
}

func (m *mockSnapshotManager) CreateSnapshot() (string, error) {
	return m.created, m.createErr
}

func (m *mockSnapshotManager) ListSnapshots() ([]string, error) {
	return m.names, m.listErr
}

func (m *mockSnapshotManager) OpenSnapshot(name string) (submission.ReadCloser, error) {
	reader, ok := m.readers[name]
	if !ok {
		return nil, apperrors.NewNotFoundError("backup not found", name)
	}
	return reader, nil
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testRecord(id uint) *submission.Submission {
	return &submission.Submission{
		ID:              id,
		StateCode:       "AB/23C/1234",
		CorpsMemberName: "JOHN DOE",
		Sex:             "MALE",
		BankName:        "FIRST BANK",
		AccountNumber:   "0123456789",
		PhoneNumber:     "08012345678",
		SubmittedAt:     time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// =====================================================================
// TestCreateSnapshotUseCase
// =====================================================================

func TestCreateSnapshotUseCase_Success(t *testing.T) {
	manager := &mockSnapshotManager{created: "backup_2023-06-01_12-00-00.db"}
	uc := NewCreateSnapshotUseCase(manager, testLogger())

	name, err := uc.Execute()

	require.NoError(t, err)
	assert.Equal(t, "backup_2023-06-01_12-00-00.db", name)
}

func TestCreateSnapshotUseCase_Failure(t *testing.T) {
	manager := &mockSnapshotManager{createErr: errors.New("disk full")}
	uc := NewCreateSnapshotUseCase(manager, testLogger())

	name, err := uc.Execute()

	require.Error(t, err)
	assert.Empty(t, name)
	assert.Contains(t, err.Error(), "backup failed")
}

// =====================================================================
// TestListSnapshotsUseCase
// =====================================================================

func TestListSnapshotsUseCase_Success(t *testing.T) {
	manager := &mockSnapshotManager{names: []string{
		"backup_2023-06-02_12-00-00.db",
		"backup_2023-06-01_12-00-00.db",
	}}
	uc := NewListSnapshotsUseCase(manager, testLogger())

	names, err := uc.Execute()

	require.NoError(t, err)
	assert.Equal(t, manager.names, names)
}

// =====================================================================
// TestViewSnapshotUseCase
// =====================================================================

func TestViewSnapshotUseCase_Success(t *testing.T) {
	reader := &mockReader{records: []*submission.Submission{testRecord(1)}}
	manager := &mockSnapshotManager{readers: map[string]*mockReader{
		"backup_2023-06-01_12-00-00.db": reader,
	}}
	uc := NewViewSnapshotUseCase(manager, testLogger())

	records, err := uc.Execute(context.Background(), "backup_2023-06-01_12-00-00.db")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, uint(1), records[0].ID)
	assert.Equal(t, "JOHN DOE", records[0].CorpsMemberName)
	assert.Equal(t, "2023-06-01 12:00:00", records[0].SubmittedAt)
	assert.True(t, reader.closed)
}

func TestViewSnapshotUseCase_ClosesHandleOnReadFailure(t *testing.T) {
	reader := &mockReader{listErr: errors.New("disk error")}
	manager := &mockSnapshotManager{readers: map[string]*mockReader{
		"backup_2023-06-01_12-00-00.db": reader,
	}}
	uc := NewViewSnapshotUseCase(manager, testLogger())

	records, err := uc.Execute(context.Background(), "backup_2023-06-01_12-00-00.db")

	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, reader.closed)
}

func TestViewSnapshotUseCase_UnknownSnapshot(t *testing.T) {
	uc := NewViewSnapshotUseCase(&mockSnapshotManager{}, testLogger())

	records, err := uc.Execute(context.Background(), "../../etc/passwd")

	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, apperrors.IsNotFoundError(err))
}

// =====================================================================
// TestGetSnapshotRecordUseCase
// =====================================================================

func TestGetSnapshotRecordUseCase_Success(t *testing.T) {
	reader := &mockReader{records: []*submission.Submission{testRecord(7)}}
	manager := &mockSnapshotManager{readers: map[string]*mockReader{
		"backup_2023-06-01_12-00-00.db": reader,
	}}
	uc := NewGetSnapshotRecordUseCase(manager, testLogger())

	record, err := uc.Execute(context.Background(), GetSnapshotRecordQuery{
		Snapshot: "backup_2023-06-01_12-00-00.db",
		ID:       7,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), record.ID)
	assert.Equal(t, "0123456789", record.AccountNumber)
	assert.True(t, reader.closed)
}

func TestGetSnapshotRecordUseCase_RecordNotFound(t *testing.T) {
	reader := &mockReader{}
	manager := &mockSnapshotManager{readers: map[string]*mockReader{
		"backup_2023-06-01_12-00-00.db": reader,
	}}
	uc := NewGetSnapshotRecordUseCase(manager, testLogger())

	record, err := uc.Execute(context.Background(), GetSnapshotRecordQuery{
		Snapshot: "backup_2023-06-01_12-00-00.db",
		ID:       999,
	})

	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.True(t, reader.closed)
}
