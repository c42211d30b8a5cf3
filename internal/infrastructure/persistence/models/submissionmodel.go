package models

import "time"

// SubmissionModel is the database persistence model for registration records.
// This is the anti-corruption layer between domain and database.
//
// The unique index on AccountNumber makes the storage engine itself reject
// concurrent inserts of the same account number; the repository's pre-check
// only exists to produce a friendlier error.
type SubmissionModel struct {
	ID               uint      `gorm:"primarykey"`
	StateCode        string    `gorm:"not null;size:20"`
	CorpsMemberName  string    `gorm:"not null;size:200"`
	Sex              string    `gorm:"not null;size:10"`
	BankName         string    `gorm:"not null;size:100"`
	AccountNumber    string    `gorm:"uniqueIndex;not null;size:30"`
	PhoneNumber      string    `gorm:"not null;size:30"`
	CallupNumber     string    `gorm:"size:50"`
	CallupLetterName string    `gorm:"size:200"`
	AccountName      string    `gorm:"size:200"`
	SubmittedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (SubmissionModel) TableName() string {
	return "submissions"
}
