package amendment

import (
	"time"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
)

// RawDocument and RawAmendment carry unvalidated request fields into the
// builders. A nil Documents pointer means the attribute was omitted; a
// pointer to an empty slice means it was present and empty, which is a
// validation error.
type RawDocument struct {
	ID           string
	DocumentType string
	Title        string
	Description  *string
}

type RawAmendment struct {
	ID          string
	Rationale   string
	Description *string
	Documents   *[]RawDocument
}

// ParamsDocument is a fully-validated document inside command params.
type ParamsDocument struct {
	ID           DocumentID
	DocumentType DocumentType
	Title        string
	Description  *string
}

// ParamsAmendment is a fully-validated nested amendment inside command
// params.
type ParamsAmendment struct {
	ID          ID
	Rationale   string
	Description *string
	Documents   []ParamsDocument
}

// CreateParams is the typed command for createAmendment. Construct it only
// through NewCreateParams; a returned value is always fully validated.
type CreateParams struct {
	Amendment       ParamsAmendment
	RelatedEntityID string
	OperationType   OperationType
	StartDate       time.Time
	Cpid            model.Cpid
	Ocid            model.Ocid
	Owner           model.Owner
}

// NewCreateParams validates raw request fields in a fixed order and fails
// fast on the first violation. No partially-built params are ever returned.
func NewCreateParams(
	operationType string,
	startDate string,
	owner string,
	cpid string,
	ocid string,
	relatedEntityID string,
	rawAmendment RawAmendment,
) (CreateParams, error) {
	operationTypeParsed, err := ParseOperationType("operationType", operationType)
	if err != nil {
		return CreateParams{}, err
	}

	startDateParsed, err := model.ParseDateTime("startDate", startDate)
	if err != nil {
		return CreateParams{}, err
	}

	ownerParsed, err := model.ParseOwner("owner", owner)
	if err != nil {
		return CreateParams{}, err
	}

	cpidParsed, err := model.ParseCpid("cpid", cpid)
	if err != nil {
		return CreateParams{}, err
	}

	ocidParsed, err := model.ParseOcid("ocid", ocid)
	if err != nil {
		return CreateParams{}, err
	}

	amendmentParsed, err := newParamsAmendment(rawAmendment)
	if err != nil {
		return CreateParams{}, err
	}

	return CreateParams{
		Amendment:       amendmentParsed,
		RelatedEntityID: relatedEntityID,
		OperationType:   operationTypeParsed,
		StartDate:       startDateParsed,
		Cpid:            cpidParsed,
		Ocid:            ocidParsed,
		Owner:           ownerParsed,
	}, nil
}

func newParamsAmendment(raw RawAmendment) (ParamsAmendment, error) {
	if raw.Documents != nil && len(*raw.Documents) == 0 {
		return ParamsAmendment{}, fail.EmptyArray{Name: "amendment.documents"}
	}

	idParsed, err := ParseID("amendment.id", raw.ID)
	if err != nil {
		return ParamsAmendment{}, err
	}

	var documents []ParamsDocument
	if raw.Documents != nil {
		documents = make([]ParamsDocument, 0, len(*raw.Documents))
		for _, rawDocument := range *raw.Documents {
			document, err := newParamsDocument(rawDocument)
			if err != nil {
				return ParamsAmendment{}, err
			}
			documents = append(documents, document)
		}
	}

	return ParamsAmendment{
		ID:          idParsed,
		Rationale:   raw.Rationale,
		Description: raw.Description,
		Documents:   documents,
	}, nil
}

func newParamsDocument(raw RawDocument) (ParamsDocument, error) {
	idParsed, err := ParseDocumentID("document.id", raw.ID)
	if err != nil {
		return ParamsDocument{}, err
	}

	documentTypeParsed, err := ParseDocumentType("documentType", raw.DocumentType)
	if err != nil {
		return ParamsDocument{}, err
	}

	return ParamsDocument{
		ID:           idParsed,
		DocumentType: documentTypeParsed,
		Title:        raw.Title,
		Description:  raw.Description,
	}, nil
}

// GetIDsParams is the typed command for getAmendmentIds. Nil filters are
// wildcards; an empty RelatedItems set matches everything.
type GetIDsParams struct {
	Cpid         model.Cpid
	Ocid         model.Ocid
	Status       *Status
	Type         *Type
	RelatesTo    *RelatesTo
	RelatedItems []string
}

func NewGetIDsParams(
	cpid string,
	ocid string,
	status *string,
	amdType *string,
	relatesTo *string,
	relatedItems *[]string,
) (GetIDsParams, error) {
	cpidParsed, err := model.ParseCpid("cpid", cpid)
	if err != nil {
		return GetIDsParams{}, err
	}

	ocidParsed, err := model.ParseOcid("ocid", ocid)
	if err != nil {
		return GetIDsParams{}, err
	}

	var statusParsed *Status
	if status != nil {
		parsed, err := ParseStatus("status", *status)
		if err != nil {
			return GetIDsParams{}, err
		}
		statusParsed = &parsed
	}

	var typeParsed *Type
	if amdType != nil {
		parsed, err := ParseType("type", *amdType)
		if err != nil {
			return GetIDsParams{}, err
		}
		typeParsed = &parsed
	}

	var relatesToParsed *RelatesTo
	if relatesTo != nil {
		parsed, err := ParseRelatesTo("relatesTo", *relatesTo)
		if err != nil {
			return GetIDsParams{}, err
		}
		relatesToParsed = &parsed
	}

	var items []string
	if relatedItems != nil {
		if len(*relatedItems) == 0 {
			return GetIDsParams{}, fail.EmptyArray{Name: "relatedItems"}
		}
		items = *relatedItems
	}

	return GetIDsParams{
		Cpid:         cpidParsed,
		Ocid:         ocidParsed,
		Status:       statusParsed,
		Type:         typeParsed,
		RelatesTo:    relatesToParsed,
		RelatedItems: items,
	}, nil
}

// DataValidationParams is the typed command for dataValidation.
type DataValidationParams struct {
	Cpid          model.Cpid
	Ocid          model.Ocid
	OperationType OperationType
	Amendments    []ParamsAmendment
}

func NewDataValidationParams(
	cpid string,
	ocid string,
	operationType string,
	rawAmendments []RawAmendment,
) (DataValidationParams, error) {
	cpidParsed, err := model.ParseCpid("cpid", cpid)
	if err != nil {
		return DataValidationParams{}, err
	}

	ocidParsed, err := model.ParseOcid("ocid", ocid)
	if err != nil {
		return DataValidationParams{}, err
	}

	operationTypeParsed, err := ParseOperationType("operationType", operationType)
	if err != nil {
		return DataValidationParams{}, err
	}

	if len(rawAmendments) == 0 {
		return DataValidationParams{}, fail.EmptyArray{Name: "amendments"}
	}

	amendments := make([]ParamsAmendment, 0, len(rawAmendments))
	for _, raw := range rawAmendments {
		parsed, err := newParamsAmendment(raw)
		if err != nil {
			return DataValidationParams{}, err
		}
		amendments = append(amendments, parsed)
	}

	return DataValidationParams{
		Cpid:          cpidParsed,
		Ocid:          ocidParsed,
		OperationType: operationTypeParsed,
		Amendments:    amendments,
	}, nil
}
