package usecases

import "corpsbank/internal/domain/submission"

// RecordFields carries the raw form values of one submission. Missing
// optional fields stay empty strings.
type RecordFields struct {
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

func (f RecordFields) toPayload() submission.Payload {
	return submission.Payload{
		StateCode:        f.StateCode,
		CorpsMemberName:  f.CorpsMemberName,
		Sex:              f.Sex,
		BankName:         f.BankName,
		AccountNumber:    f.AccountNumber,
		PhoneNumber:      f.PhoneNumber,
		CallupNumber:     f.CallupNumber,
		CallupLetterName: f.CallupLetterName,
		AccountName:      f.AccountName,
	}
}
