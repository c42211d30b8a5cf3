package submission

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Payload carries the raw or normalized field values of one submission.
// Optional fields that were absent in the request are empty strings.
type Payload struct {
	StateCode        string
	CorpsMemberName  string
	Sex              string
	BankName         string
	AccountNumber    string
	PhoneNumber      string
	CallupNumber     string
	CallupLetterName string
	AccountName      string
}

var (
	// Strips any markup from free-text fields before they reach storage.
	htmlStripper = bluemonday.StrictPolicy()
	upperCaser   = cases.Upper(language.Und)
)

// Normalize trims, strips markup, and upper-cases every field. It is
// idempotent: normalizing an already-normalized payload is a no-op.
func Normalize(p Payload) Payload {
	return Payload{
		StateCode:        normalizeField(p.StateCode),
		CorpsMemberName:  normalizeField(p.CorpsMemberName),
		Sex:              normalizeField(p.Sex),
		BankName:         normalizeField(p.BankName),
		AccountNumber:    normalizeField(p.AccountNumber),
		PhoneNumber:      normalizeField(p.PhoneNumber),
		CallupNumber:     normalizeField(p.CallupNumber),
		CallupLetterName: normalizeField(p.CallupLetterName),
		AccountName:      normalizeField(p.AccountName),
	}
}

func normalizeField(s string) string {
	// Sanitize escapes entities in the remaining text, so unescape to get the
	// literal characters back. Without this, repeated normalization would
	// double-escape ampersands.
	s = html.UnescapeString(htmlStripper.Sanitize(s))
	return upperCaser.String(strings.TrimSpace(s))
}

// NormalizeFromForm builds a normalized payload from raw form fields.
// Unrecognized keys are ignored and missing keys become empty strings.
func NormalizeFromForm(fields map[string]string) Payload {
	return Normalize(Payload{
		StateCode:        fields["state_code"],
		CorpsMemberName:  fields["corps_member_name"],
		Sex:              fields["sex"],
		BankName:         fields["bank_name"],
		AccountNumber:    fields["account_number"],
		PhoneNumber:      fields["phone_number"],
		CallupNumber:     fields["callup_number"],
		CallupLetterName: fields["callup_letter_name"],
		AccountName:      fields["account_name"],
	})
}
