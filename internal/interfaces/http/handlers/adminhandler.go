package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/application/submission/usecases"
	"corpsbank/internal/shared/logger"
	"corpsbank/internal/shared/utils"
)

type GetRecordExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.SubmissionDTO, error)
}

type UpdateRecordExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateRecordCommand) (*dto.SubmissionDTO, error)
}

type DeleteRecordExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type ListRecordsExecutor interface {
	Execute(ctx context.Context) ([]*dto.SubmissionDTO, error)
}

type SearchRecordsExecutor interface {
	Execute(ctx context.Context, query usecases.SearchRecordsQuery) ([]*dto.SubmissionDTO, error)
}

type ExportRecordsExecutor interface {
	Execute(ctx context.Context) (string, error)
}

type ForwardRecordExecutor interface {
	Execute(ctx context.Context, cmd usecases.ForwardRecordCommand) error
}

// AdminHandler serves the administrative record operations.
type AdminHandler struct {
	getUC     GetRecordExecutor
	updateUC  UpdateRecordExecutor
	deleteUC  DeleteRecordExecutor
	listUC    ListRecordsExecutor
	searchUC  SearchRecordsExecutor
	exportUC  ExportRecordsExecutor
	forwardUC ForwardRecordExecutor
	logger    logger.Interface
}

func NewAdminHandler(
	getUC GetRecordExecutor,
	updateUC UpdateRecordExecutor,
	deleteUC DeleteRecordExecutor,
	listUC ListRecordsExecutor,
	searchUC SearchRecordsExecutor,
	exportUC ExportRecordsExecutor,
	forwardUC ForwardRecordExecutor,
	log logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		getUC:     getUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		listUC:    listUC,
		searchUC:  searchUC,
		exportUC:  exportUC,
		forwardUC: forwardUC,
		logger:    log,
	}
}

// Dashboard lists every record, newest first.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	records, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, records, len(records))
}

type SearchRequest struct {
	Query string `form:"query" json:"query"`
}

// Search matches name, state code, and account number case-insensitively.
func (h *AdminHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	records, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchRecordsQuery{Query: req.Query})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, records, len(records))
}

// GetRecord returns one record for the edit view.
func (h *AdminHandler) GetRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	record, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", record)
}

// UpdateRecord overwrites all mutable fields of a record.
func (h *AdminHandler) UpdateRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req SubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateRecordCommand{
		ID:     id,
		Fields: req.toFields(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Update successful!", record)
}

// DeleteRecord removes a record permanently.
func (h *AdminHandler) DeleteRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Record deleted successfully!", nil)
}

// DownloadRecord streams one record as a plain-text attachment.
func (h *AdminHandler) DownloadRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	record, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=record_%d.txt", id))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(record.FormatText()))
}

// Export writes all records to a spreadsheet and reports the file path.
func (h *AdminHandler) Export(c *gin.Context) {
	path, err := h.exportUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK,
		fmt.Sprintf("Export successful! Data has been saved to %s.", path),
		gin.H{"path": path})
}

type ForwardRequest struct {
	Recipient string `form:"recipient" json:"recipient"`
}

// ForwardRecord emails one record's details to the given address.
func (h *AdminHandler) ForwardRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ForwardRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.forwardUC.Execute(c.Request.Context(), usecases.ForwardRecordCommand{
		ID:        id,
		Recipient: req.Recipient,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Record forwarded successfully.", nil)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid record id")
		return 0, false
	}
	return uint(id), true
}
