// Package amendment holds the amendment aggregate of the revision service:
// a cancellation-related change request attached to a tender or a lot,
// addressed by (cpid, ocid, id).
package amendment

import (
	"time"

	"github.com/google/uuid"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
)

// ID identifies an amendment. UUID-backed and immutable.
type ID uuid.UUID

func (id ID) String() string { return uuid.UUID(id).String() }

func ParseID(name, value string) (ID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return ID{}, fail.DataFormatMismatch{
			Name:           name,
			ActualValue:    value,
			ExpectedFormat: "uuid",
		}
	}
	return ID(parsed), nil
}

// DocumentID identifies a document within an amendment.
type DocumentID string

func (id DocumentID) String() string { return string(id) }

func ParseDocumentID(name, value string) (DocumentID, error) {
	if value == "" {
		return "", fail.DataFormatMismatch{
			Name:           name,
			ActualValue:    value,
			ExpectedFormat: "string",
		}
	}
	return DocumentID(value), nil
}

type Document struct {
	id           DocumentID
	documentType DocumentType
	title        string
	description  *string
}

func NewDocument(id DocumentID, documentType DocumentType, title string, description *string) Document {
	return Document{
		id:           id,
		documentType: documentType,
		title:        title,
		description:  description,
	}
}

func (d Document) ID() DocumentID             { return d.id }
func (d Document) DocumentType() DocumentType { return d.documentType }
func (d Document) Title() string              { return d.title }
func (d Document) Description() *string       { return d.description }

// Equal compares documents by id alone.
func (d Document) Equal(other Document) bool { return d.id == other.id }

type Amendment struct {
	id          ID
	token       model.Token
	owner       model.Owner
	rationale   string
	description *string
	documents   []Document
	status      Status
	amdType     Type
	relatesTo   RelatesTo
	relatedItem string
	date        time.Time
}

func New(
	id ID,
	token model.Token,
	owner model.Owner,
	rationale string,
	description *string,
	documents []Document,
	status Status,
	amdType Type,
	relatesTo RelatesTo,
	relatedItem string,
	date time.Time,
) Amendment {
	return Amendment{
		id:          id,
		token:       token,
		owner:       owner,
		rationale:   rationale,
		description: description,
		documents:   documents,
		status:      status,
		amdType:     amdType,
		relatesTo:   relatesTo,
		relatedItem: relatedItem,
		date:        date,
	}
}

func (a Amendment) ID() ID                { return a.id }
func (a Amendment) Token() model.Token    { return a.token }
func (a Amendment) Owner() model.Owner    { return a.owner }
func (a Amendment) Rationale() string     { return a.rationale }
func (a Amendment) Description() *string  { return a.description }
func (a Amendment) Documents() []Document { return a.documents }
func (a Amendment) Status() Status        { return a.status }
func (a Amendment) Type() Type            { return a.amdType }
func (a Amendment) RelatesTo() RelatesTo  { return a.relatesTo }
func (a Amendment) RelatedItem() string   { return a.relatedItem }
func (a Amendment) Date() time.Time       { return a.date }
func (a Amendment) IsZero() bool          { return a.id == ID(uuid.Nil) }

// Equal compares amendments by id alone.
func (a Amendment) Equal(other Amendment) bool { return a.id == other.id }

// WithStatus returns a copy of the amendment carrying the given status.
func (a Amendment) WithStatus(status Status) Amendment {
	a.status = status
	return a
}
