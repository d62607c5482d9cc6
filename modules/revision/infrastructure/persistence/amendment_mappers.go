package persistence

import (
	"github.com/eprocurement-ocds/revision/modules/revision/domain/amendment"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
	"github.com/eprocurement-ocds/revision/modules/revision/infrastructure/persistence/models"
)

func toDBAmendment(a amendment.Amendment) models.Amendment {
	documents := make([]models.Document, 0, len(a.Documents()))
	for _, d := range a.Documents() {
		documents = append(documents, models.Document{
			ID:           d.ID().String(),
			DocumentType: string(d.DocumentType()),
			Title:        d.Title(),
			Description:  d.Description(),
		})
	}
	return models.Amendment{
		ID:          a.ID().String(),
		Token:       a.Token().String(),
		Owner:       a.Owner().String(),
		Rationale:   a.Rationale(),
		Description: a.Description(),
		Status:      string(a.Status()),
		Type:        string(a.Type()),
		RelatesTo:   string(a.RelatesTo()),
		RelatedItem: a.RelatedItem(),
		Date:        model.FormatDateTime(a.Date()),
		Documents:   documents,
	}
}

func toDomainAmendment(entity models.Amendment) (amendment.Amendment, error) {
	id, err := amendment.ParseID("id", entity.ID)
	if err != nil {
		return amendment.Amendment{}, err
	}
	token, err := model.ParseToken("token", entity.Token)
	if err != nil {
		return amendment.Amendment{}, err
	}
	owner, err := model.ParseOwner("owner", entity.Owner)
	if err != nil {
		return amendment.Amendment{}, err
	}
	status, err := amendment.ParseStatus("status", entity.Status)
	if err != nil {
		return amendment.Amendment{}, err
	}
	amdType, err := amendment.ParseType("type", entity.Type)
	if err != nil {
		return amendment.Amendment{}, err
	}
	relatesTo, err := amendment.ParseRelatesTo("relatesTo", entity.RelatesTo)
	if err != nil {
		return amendment.Amendment{}, err
	}
	date, err := model.ParseDateTime("date", entity.Date)
	if err != nil {
		return amendment.Amendment{}, err
	}

	documents := make([]amendment.Document, 0, len(entity.Documents))
	for _, d := range entity.Documents {
		document, err := toDomainDocument(d)
		if err != nil {
			return amendment.Amendment{}, err
		}
		documents = append(documents, document)
	}

	return amendment.New(
		id,
		token,
		owner,
		entity.Rationale,
		entity.Description,
		documents,
		status,
		amdType,
		relatesTo,
		entity.RelatedItem,
		date,
	), nil
}

func toDomainDocument(entity models.Document) (amendment.Document, error) {
	id, err := amendment.ParseDocumentID("document.id", entity.ID)
	if err != nil {
		return amendment.Document{}, err
	}
	documentType, err := amendment.ParseDocumentType("documentType", entity.DocumentType)
	if err != nil {
		return amendment.Document{}, err
	}
	return amendment.NewDocument(id, documentType, entity.Title, entity.Description), nil
}
