package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsbank/internal/application/backup/usecases"
	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/shared/logger"
	"corpsbank/internal/shared/utils"
)

type CreateSnapshotExecutor interface {
	Execute() (string, error)
}

type ListSnapshotsExecutor interface {
	Execute() ([]string, error)
}

type ViewSnapshotExecutor interface {
	Execute(ctx context.Context, name string) ([]*dto.SubmissionDTO, error)
}

type GetSnapshotRecordExecutor interface {
	Execute(ctx context.Context, query usecases.GetSnapshotRecordQuery) (*dto.SubmissionDTO, error)
}

// BackupHandler serves the backup browsing endpoints.
type BackupHandler struct {
	createUC    CreateSnapshotExecutor
	listUC      ListSnapshotsExecutor
	viewUC      ViewSnapshotExecutor
	getRecordUC GetSnapshotRecordExecutor
	logger      logger.Interface
}

func NewBackupHandler(
	createUC CreateSnapshotExecutor,
	listUC ListSnapshotsExecutor,
	viewUC ViewSnapshotExecutor,
	getRecordUC GetSnapshotRecordExecutor,
	log logger.Interface,
) *BackupHandler {
	return &BackupHandler{
		createUC:    createUC,
		listUC:      listUC,
		viewUC:      viewUC,
		getRecordUC: getRecordUC,
		logger:      log,
	}
}

// CreateBackup takes a new snapshot of the live store.
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	name, err := h.createUC.Execute()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"name": name}, "Backup created successfully.")
}

// ListBackups lists snapshot names, newest first.
func (h *BackupHandler) ListBackups(c *gin.Context) {
	names, err := h.listUC.Execute()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, names, len(names))
}

// ViewBackup lists every record inside a named snapshot.
func (h *BackupHandler) ViewBackup(c *gin.Context) {
	name := c.Param("name")

	records, err := h.viewUC.Execute(c.Request.Context(), name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, records, len(records))
}

// DownloadBackupRecord streams one snapshot record as a plain-text attachment.
func (h *BackupHandler) DownloadBackupRecord(c *gin.Context) {
	name := c.Param("name")
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	record, err := h.getRecordUC.Execute(c.Request.Context(), usecases.GetSnapshotRecordQuery{
		Snapshot: name,
		ID:       id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=backup_%s_record_%d.txt", name, id))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(record.FormatText()))
}
