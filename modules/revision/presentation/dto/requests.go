package dto

import (
	"github.com/eprocurement-ocds/revision/modules/revision/domain/amendment"
)

// DocumentRequest is a document as it appears in command params.
type DocumentRequest struct {
	ID           string  `json:"id" validate:"required"`
	DocumentType string  `json:"documentType" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description,omitempty"`
}

// AmendmentRequest is the nested amendment block of createAmendment and
// dataValidation params. A nil Documents pointer means the attribute was
// omitted; presence with an empty array is rejected downstream.
type AmendmentRequest struct {
	ID          string             `json:"id" validate:"required"`
	Rationale   string             `json:"rationale" validate:"required"`
	Description *string            `json:"description,omitempty"`
	Documents   *[]DocumentRequest `json:"documents,omitempty"`
}

func (r AmendmentRequest) ToRaw() amendment.RawAmendment {
	var documents *[]amendment.RawDocument
	if r.Documents != nil {
		converted := make([]amendment.RawDocument, 0, len(*r.Documents))
		for _, d := range *r.Documents {
			converted = append(converted, amendment.RawDocument{
				ID:           d.ID,
				DocumentType: d.DocumentType,
				Title:        d.Title,
				Description:  d.Description,
			})
		}
		documents = &converted
	}
	return amendment.RawAmendment{
		ID:          r.ID,
		Rationale:   r.Rationale,
		Description: r.Description,
		Documents:   documents,
	}
}

// CreateAmendmentRequest carries createAmendment params. The top-level "id"
// is the tender or lot the cancellation targets, not the amendment id.
type CreateAmendmentRequest struct {
	Amendment     AmendmentRequest `json:"amendment" validate:"required"`
	ID            string           `json:"id" validate:"required"`
	OperationType string           `json:"operationType" validate:"required"`
	StartDate     string           `json:"startDate" validate:"required"`
	Cpid          string           `json:"cpid" validate:"required"`
	Ocid          string           `json:"ocid" validate:"required"`
	Owner         string           `json:"owner" validate:"required"`
}

// GetAmendmentIDsRequest carries getAmendmentIds params. All filters are
// optional; nil means the filter is not applied.
type GetAmendmentIDsRequest struct {
	Status       *string   `json:"status,omitempty"`
	Type         *string   `json:"type,omitempty"`
	RelatesTo    *string   `json:"relatesTo,omitempty"`
	RelatedItems *[]string `json:"relatedItems,omitempty"`
	Cpid         string    `json:"cpid" validate:"required"`
	Ocid         string    `json:"ocid" validate:"required"`
}

// DataValidationRequest carries dataValidation params. Amendments is a
// pointer so that an omitted attribute (missing) and a present empty array
// (empty-array error) stay distinguishable.
type DataValidationRequest struct {
	Amendments    *[]AmendmentRequest `json:"amendments,omitempty" validate:"required"`
	Cpid          string              `json:"cpid" validate:"required"`
	Ocid          string              `json:"ocid" validate:"required"`
	OperationType string              `json:"operationType" validate:"required"`
}
