package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsbank/internal/application/submission/dto"
	"corpsbank/internal/application/submission/usecases"
	"corpsbank/internal/shared/logger"
	"corpsbank/internal/shared/utils"
)

// SubmitRecordExecutor commits a submission.
type SubmitRecordExecutor interface {
	Execute(ctx context.Context, cmd usecases.SubmitRecordCommand) (*dto.SubmissionDTO, error)
}

// PreviewRecordExecutor normalizes a submission for confirmation.
type PreviewRecordExecutor interface {
	Execute(cmd usecases.PreviewRecordCommand) *dto.PreviewDTO
}

// SubmissionHandler serves the public registration endpoints.
type SubmissionHandler struct {
	submitUC  SubmitRecordExecutor
	previewUC PreviewRecordExecutor
	logger    logger.Interface
}

func NewSubmissionHandler(submitUC SubmitRecordExecutor, previewUC PreviewRecordExecutor, log logger.Interface) *SubmissionHandler {
	return &SubmissionHandler{
		submitUC:  submitUC,
		previewUC: previewUC,
		logger:    log,
	}
}

// SubmissionRequest carries the raw form fields of one registration.
type SubmissionRequest struct {
	StateCode        string `form:"state_code" json:"state_code"`
	CorpsMemberName  string `form:"corps_member_name" json:"corps_member_name"`
	Sex              string `form:"sex" json:"sex"`
	BankName         string `form:"bank_name" json:"bank_name"`
	AccountNumber    string `form:"account_number" json:"account_number"`
	PhoneNumber      string `form:"phone_number" json:"phone_number"`
	CallupNumber     string `form:"callup_number" json:"callup_number"`
	CallupLetterName string `form:"callup_letter_name" json:"callup_letter_name"`
	AccountName      string `form:"account_name" json:"account_name"`
}

func (r *SubmissionRequest) toFields() usecases.RecordFields {
	return usecases.RecordFields{
		StateCode:        r.StateCode,
		CorpsMemberName:  r.CorpsMemberName,
		Sex:              r.Sex,
		BankName:         r.BankName,
		AccountNumber:    r.AccountNumber,
		PhoneNumber:      r.PhoneNumber,
		CallupNumber:     r.CallupNumber,
		CallupLetterName: r.CallupLetterName,
		AccountName:      r.AccountName,
	}
}

// ShowForm describes the registration form for the rendering layer.
func (h *SubmissionHandler) ShowForm(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"fields": []gin.H{
			{"name": "state_code", "required": true},
			{"name": "corps_member_name", "required": true},
			{"name": "sex", "required": true},
			{"name": "bank_name", "required": true},
			{"name": "account_number", "required": true},
			{"name": "phone_number", "required": true},
			{"name": "callup_number", "required": false},
			{"name": "callup_letter_name", "required": false},
			{"name": "account_name", "required": false},
		},
	})
}

// Preview echoes the normalized payload back for confirmation. Nothing is
// persisted.
func (h *SubmissionHandler) Preview(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid preview request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	preview := h.previewUC.Execute(usecases.PreviewRecordCommand{Fields: req.toFields()})
	utils.SuccessResponse(c, http.StatusOK, "", preview)
}

// Submit commits the registration. A duplicate account number comes back as a
// conflict the form layer re-presents.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid submit request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitRecordCommand{Fields: req.toFields()})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, record, "Registration successful!")
}
