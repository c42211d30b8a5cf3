// Package submission holds the registration record entity, its normalization
// rules, and the repository contracts the storage layer implements.
package submission

import (
	"time"

	apperrors "corpsbank/internal/shared/errors"
)

// Submission is one corps member's bank-account registration record.
// ID and SubmittedAt are system-assigned and never set by callers.
type Submission struct {
	ID               uint
	StateCode        string
	CorpsMemberName  string
	Sex              string
	BankName         string
	AccountNumber    string
	PhoneNumber      string
	CallupNumber     string
	CallupLetterName string
	AccountName      string
	SubmittedAt      time.Time
}

// NewSubmission normalizes and validates a payload and returns a record ready
// for persistence. Missing required fields are rejected, not coerced to empty
// strings.
func NewSubmission(p Payload) (*Submission, error) {
	normalized := Normalize(p)
	if err := normalized.Validate(); err != nil {
		return nil, err
	}

	return &Submission{
		StateCode:        normalized.StateCode,
		CorpsMemberName:  normalized.CorpsMemberName,
		Sex:              normalized.Sex,
		BankName:         normalized.BankName,
		AccountNumber:    normalized.AccountNumber,
		PhoneNumber:      normalized.PhoneNumber,
		CallupNumber:     normalized.CallupNumber,
		CallupLetterName: normalized.CallupLetterName,
		AccountName:      normalized.AccountName,
	}, nil
}

// ApplyUpdate overwrites all mutable fields from the payload after
// normalization and validation. ID and SubmittedAt are untouched.
func (s *Submission) ApplyUpdate(p Payload) error {
	normalized := Normalize(p)
	if err := normalized.Validate(); err != nil {
		return err
	}

	s.StateCode = normalized.StateCode
	s.CorpsMemberName = normalized.CorpsMemberName
	s.Sex = normalized.Sex
	s.BankName = normalized.BankName
	s.AccountNumber = normalized.AccountNumber
	s.PhoneNumber = normalized.PhoneNumber
	s.CallupNumber = normalized.CallupNumber
	s.CallupLetterName = normalized.CallupLetterName
	s.AccountName = normalized.AccountName
	return nil
}

// Validate checks that every required field survived normalization.
func (p Payload) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"state_code", p.StateCode},
		{"corps_member_name", p.CorpsMemberName},
		{"sex", p.Sex},
		{"bank_name", p.BankName},
		{"account_number", p.AccountNumber},
		{"phone_number", p.PhoneNumber},
	}

	for _, field := range required {
		if field.value == "" {
			return apperrors.NewValidationError("missing required field", field.name)
		}
	}
	return nil
}
