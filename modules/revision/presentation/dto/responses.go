package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/amendment"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
	"github.com/eprocurement-ocds/revision/pkg/configuration"
)

type SuccessResponse struct {
	Version string `json:"version"`
	ID      string `json:"id"`
	Status  string `json:"status"`
	Result  any    `json:"result,omitempty"`
}

func NewSuccessResponse(version, id string, result any) SuccessResponse {
	return SuccessResponse{
		Version: version,
		ID:      id,
		Status:  "success",
		Result:  result,
	}
}

type ErrorDetail struct {
	Name string `json:"name"`
}

type Error struct {
	Code        string        `json:"code"`
	Description string        `json:"description"`
	Details     []ErrorDetail `json:"details,omitempty"`
}

type ErrorResponse struct {
	Version string  `json:"version"`
	ID      string  `json:"id"`
	Status  string  `json:"status"`
	Result  []Error `json:"result"`
}

// NewErrorResponse converts a typed failure into the error envelope. The
// full code carries the service id suffix; data errors additionally name the
// offending attribute.
func NewErrorResponse(version, id string, f fail.Fail, service configuration.ServiceOptions) ErrorResponse {
	apiError := Error{
		Code:        f.Code() + "/" + service.ID,
		Description: f.Description(),
	}
	if dataError, ok := fail.AsDataError(f); ok {
		apiError.Details = []ErrorDetail{{Name: dataError.Attribute()}}
	}
	return ErrorResponse{
		Version: version,
		ID:      id,
		Status:  "error",
		Result:  []Error{apiError},
	}
}

type IncidentService struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

type IncidentDetail struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Metadata    any    `json:"metadata"`
}

type IncidentResult struct {
	ID      string           `json:"id"`
	Date    string           `json:"date"`
	Service IncidentService  `json:"service"`
	Details []IncidentDetail `json:"details"`
}

type IncidentResponse struct {
	Version string         `json:"version"`
	ID      string         `json:"id"`
	Status  string         `json:"status"`
	Result  IncidentResult `json:"result"`
}

// NewIncidentResponse builds the opaque incident envelope. The incident id
// is freshly generated and also appears in the server log for correlation.
func NewIncidentResponse(version, id string, incidentID uuid.UUID, f fail.Fail, service configuration.ServiceOptions) IncidentResponse {
	return IncidentResponse{
		Version: version,
		ID:      id,
		Status:  "incident",
		Result: IncidentResult{
			ID:   incidentID.String(),
			Date: model.FormatDateTime(time.Now()),
			Service: IncidentService{
				ID:      service.ID,
				Name:    service.Name,
				Version: service.Version,
			},
			Details: []IncidentDetail{{
				Code:        f.Code() + "/" + service.ID,
				Description: f.Description(),
				Metadata:    nil,
			}},
		},
	}
}

// DocumentResult mirrors a stored document in API responses.
type DocumentResult struct {
	ID           string  `json:"id"`
	DocumentType string  `json:"documentType"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
}

// CreateAmendmentResult is the createAmendment success payload: the stored
// amendment projection including the issued token.
type CreateAmendmentResult struct {
	Amendment AmendmentResult `json:"amendment"`
}

type AmendmentResult struct {
	ID          string           `json:"id"`
	Token       string           `json:"token"`
	Rationale   string           `json:"rationale"`
	Description *string          `json:"description,omitempty"`
	Status      string           `json:"status"`
	Type        string           `json:"type"`
	RelatesTo   string           `json:"relatesTo"`
	RelatedItem string           `json:"relatedItem"`
	Date        string           `json:"date"`
	Documents   []DocumentResult `json:"documents,omitempty"`
}

func NewCreateAmendmentResult(a amendment.Amendment) CreateAmendmentResult {
	documents := make([]DocumentResult, 0, len(a.Documents()))
	for _, d := range a.Documents() {
		documents = append(documents, DocumentResult{
			ID:           d.ID().String(),
			DocumentType: string(d.DocumentType()),
			Title:        d.Title(),
			Description:  d.Description(),
		})
	}
	return CreateAmendmentResult{
		Amendment: AmendmentResult{
			ID:          a.ID().String(),
			Token:       a.Token().String(),
			Rationale:   a.Rationale(),
			Description: a.Description(),
			Status:      string(a.Status()),
			Type:        string(a.Type()),
			RelatesTo:   string(a.RelatesTo()),
			RelatedItem: a.RelatedItem(),
			Date:        model.FormatDateTime(a.Date()),
			Documents:   documents,
		},
	}
}

// NewGetAmendmentIDsResult projects amendment ids for the getAmendmentIds
// success payload.
func NewGetAmendmentIDsResult(ids []amendment.ID) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		result = append(result, id.String())
	}
	return result
}
