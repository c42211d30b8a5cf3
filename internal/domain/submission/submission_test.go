package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "corpsbank/internal/shared/errors"
)

// --- helpers ---

func validPayload() Payload {
	return Payload{
		StateCode:        "AB/23C/1234",
		CorpsMemberName:  "John Doe",
		Sex:              "Male",
		BankName:         "First Bank",
		AccountNumber:    "0123456789",
		PhoneNumber:      "08012345678",
		CallupNumber:     "NYSC/ABC/2023/123456",
		CallupLetterName: "John Doe",
		AccountName:      "John Doe",
	}
}

// =====================================================================
// TestNormalize_*
// =====================================================================

func TestNormalize_TrimsAndUppercases(t *testing.T) {
	p := Normalize(Payload{
		StateCode:       "  ab/23c/1234  ",
		CorpsMemberName: "john doe",
		AccountNumber:   " 0123456789 ",
	})

	assert.Equal(t, "AB/23C/1234", p.StateCode)
	assert.Equal(t, "JOHN DOE", p.CorpsMemberName)
	assert.Equal(t, "0123456789", p.AccountNumber)
}

func TestNormalize_StripsMarkup(t *testing.T) {
	p := Normalize(Payload{
		CorpsMemberName: "<b>john doe</b>",
		BankName:        "first <i>bank</i>",
	})

	assert.Equal(t, "JOHN DOE", p.CorpsMemberName)
	assert.Equal(t, "FIRST BANK", p.BankName)
}

func TestNormalize_PreservesLiteralAmpersand(t *testing.T) {
	p := Normalize(Payload{BankName: "Smith & Sons Bank"})

	assert.Equal(t, "SMITH & SONS BANK", p.BankName)
}

func TestNormalize_Idempotent(t *testing.T) {
	tests := []struct {
		name  string
		input Payload
	}{
		{"plain", validPayload()},
		{"whitespace", Payload{CorpsMemberName: "  john  doe  "}},
		{"markup", Payload{CorpsMemberName: "<b>john</b>"}},
		{"ampersand", Payload{BankName: "smith & sons"}},
		{"empty", Payload{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			once := Normalize(tc.input)
			twice := Normalize(once)
			assert.Equal(t, once, twice)
		})
	}
}

func TestNormalizeFromForm_MissingKeysBecomeEmpty(t *testing.T) {
	p := NormalizeFromForm(map[string]string{
		"state_code":        "ab/23c/1234",
		"corps_member_name": "john doe",
		"unknown_key":       "ignored",
	})

	assert.Equal(t, "AB/23C/1234", p.StateCode)
	assert.Equal(t, "JOHN DOE", p.CorpsMemberName)
	assert.Empty(t, p.AccountNumber)
	assert.Empty(t, p.CallupNumber)
}

// =====================================================================
// TestNewSubmission_*
// =====================================================================

func TestNewSubmission_ValidInput(t *testing.T) {
	sub, err := NewSubmission(validPayload())

	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Zero(t, sub.ID)
	assert.True(t, sub.SubmittedAt.IsZero())
	assert.Equal(t, "JOHN DOE", sub.CorpsMemberName)
	assert.Equal(t, "0123456789", sub.AccountNumber)
	assert.Equal(t, "FIRST BANK", sub.BankName)
}

func TestNewSubmission_OptionalFieldsMayBeEmpty(t *testing.T) {
	p := validPayload()
	p.CallupNumber = ""
	p.CallupLetterName = ""
	p.AccountName = ""

	sub, err := NewSubmission(p)

	require.NoError(t, err)
	assert.Empty(t, sub.CallupNumber)
	assert.Empty(t, sub.CallupLetterName)
	assert.Empty(t, sub.AccountName)
}

func TestNewSubmission_MissingRequiredField(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Payload)
	}{
		{"state_code", func(p *Payload) { p.StateCode = "" }},
		{"corps_member_name", func(p *Payload) { p.CorpsMemberName = "" }},
		{"sex", func(p *Payload) { p.Sex = "" }},
		{"bank_name", func(p *Payload) { p.BankName = "" }},
		{"account_number", func(p *Payload) { p.AccountNumber = "" }},
		{"phone_number", func(p *Payload) { p.PhoneNumber = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			p := validPayload()
			tc.mutate(&p)

			sub, err := NewSubmission(p)

			require.Error(t, err)
			assert.Nil(t, sub)
			assert.True(t, apperrors.IsValidationError(err))

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tc.field, appErr.Details)
		})
	}
}

func TestNewSubmission_WhitespaceOnlyRequiredFieldRejected(t *testing.T) {
	p := validPayload()
	p.AccountNumber = "   "

	sub, err := NewSubmission(p)

	require.Error(t, err)
	assert.Nil(t, sub)
	assert.True(t, apperrors.IsValidationError(err))
}

// =====================================================================
// TestSubmission_ApplyUpdate
// =====================================================================

func TestSubmission_ApplyUpdate_OverwritesMutableFields(t *testing.T) {
	sub, err := NewSubmission(validPayload())
	require.NoError(t, err)

	sub.ID = 42
	sub.SubmittedAt = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	p := validPayload()
	p.CorpsMemberName = "jane doe"
	p.AccountNumber = "9876543210"

	require.NoError(t, sub.ApplyUpdate(p))

	assert.Equal(t, uint(42), sub.ID)
	assert.Equal(t, time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC), sub.SubmittedAt)
	assert.Equal(t, "JANE DOE", sub.CorpsMemberName)
	assert.Equal(t, "9876543210", sub.AccountNumber)
}

func TestSubmission_ApplyUpdate_InvalidPayloadLeavesRecordUntouched(t *testing.T) {
	sub, err := NewSubmission(validPayload())
	require.NoError(t, err)

	p := validPayload()
	p.AccountNumber = ""

	err = sub.ApplyUpdate(p)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, "0123456789", sub.AccountNumber)
}
