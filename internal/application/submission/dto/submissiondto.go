package dto

import (
	"fmt"

	"corpsbank/internal/domain/submission"
)

// SubmissionDTO is the outward-facing shape of a registration record.
type SubmissionDTO struct {
	ID               uint   `json:"id"`
	StateCode        string `json:"state_code"`
	CorpsMemberName  string `json:"corps_member_name"`
	Sex              string `json:"sex"`
	BankName         string `json:"bank_name"`
	AccountNumber    string `json:"account_number"`
	PhoneNumber      string `json:"phone_number"`
	CallupNumber     string `json:"callup_number"`
	CallupLetterName string `json:"callup_letter_name"`
	AccountName      string `json:"account_name"`
	SubmittedAt      string `json:"submitted_at"`
}

// PreviewDTO is the normalized payload echoed back for confirmation before
// commit. It carries no system-assigned fields.
type PreviewDTO struct {
	StateCode        string `json:"state_code"`
	CorpsMemberName  string `json:"corps_member_name"`
	Sex              string `json:"sex"`
	BankName         string `json:"bank_name"`
	AccountNumber    string `json:"account_number"`
	PhoneNumber      string `json:"phone_number"`
	CallupNumber     string `json:"callup_number"`
	CallupLetterName string `json:"callup_letter_name"`
	AccountName      string `json:"account_name"`
}

func FromEntity(entity *submission.Submission) *SubmissionDTO {
	return &SubmissionDTO{
		ID:               entity.ID,
		StateCode:        entity.StateCode,
		CorpsMemberName:  entity.CorpsMemberName,
		Sex:              entity.Sex,
		BankName:         entity.BankName,
		AccountNumber:    entity.AccountNumber,
		PhoneNumber:      entity.PhoneNumber,
		CallupNumber:     entity.CallupNumber,
		CallupLetterName: entity.CallupLetterName,
		AccountName:      entity.AccountName,
		SubmittedAt:      entity.SubmittedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromEntities(entities []*submission.Submission) []*SubmissionDTO {
	dtos := make([]*SubmissionDTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, FromEntity(entity))
	}
	return dtos
}

func FromPayload(p submission.Payload) *PreviewDTO {
	return &PreviewDTO{
		StateCode:        p.StateCode,
		CorpsMemberName:  p.CorpsMemberName,
		Sex:              p.Sex,
		BankName:         p.BankName,
		AccountNumber:    p.AccountNumber,
		PhoneNumber:      p.PhoneNumber,
		CallupNumber:     p.CallupNumber,
		CallupLetterName: p.CallupLetterName,
		AccountName:      p.AccountName,
	}
}

// FormatText renders the record as the plain-text block used for downloads
// and email forwarding.
func (d *SubmissionDTO) FormatText() string {
	return fmt.Sprintf(`Record Details:
ID: %d
State Code: %s
Name: %s
Sex: %s
Bank Name: %s
Account Number: %s
Phone Number: %s
Callup Number: %s
Name on Call-up Letter: %s
Account Name: %s
Submitted At: %s
`,
		d.ID,
		d.StateCode,
		d.CorpsMemberName,
		d.Sex,
		d.BankName,
		d.AccountNumber,
		d.PhoneNumber,
		d.CallupNumber,
		d.CallupLetterName,
		d.AccountName,
		d.SubmittedAt,
	)
}
