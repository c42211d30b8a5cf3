package mappers

import (
	"corpsbank/internal/domain/submission"
	"corpsbank/internal/infrastructure/persistence/models"
)

// SubmissionMapper converts between the domain entity and the persistence model
type SubmissionMapper struct{}

func NewSubmissionMapper() SubmissionMapper {
	return SubmissionMapper{}
}

func (SubmissionMapper) ToModel(entity *submission.Submission) *models.SubmissionModel {
	return &models.SubmissionModel{
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
		SubmittedAt:      entity.SubmittedAt,
	}
}

func (SubmissionMapper) ToEntity(model *models.SubmissionModel) *submission.Submission {
	return &submission.Submission{
		ID:               model.ID,
		StateCode:        model.StateCode,
		CorpsMemberName:  model.CorpsMemberName,
		Sex:              model.Sex,
		BankName:         model.BankName,
		AccountNumber:    model.AccountNumber,
		PhoneNumber:      model.PhoneNumber,
		CallupNumber:     model.CallupNumber,
		CallupLetterName: model.CallupLetterName,
		AccountName:      model.AccountName,
		SubmittedAt:      model.SubmittedAt,
	}
}

func (m SubmissionMapper) ToEntities(submissionModels []*models.SubmissionModel) []*submission.Submission {
	entities := make([]*submission.Submission, 0, len(submissionModels))
	for _, model := range submissionModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
