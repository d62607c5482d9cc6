package fail

import "fmt"

// InvalidDocumentType reports a document whose type is outside the whitelist
// for the requested operation.
type InvalidDocumentType struct {
	DocumentID string
}

func (e InvalidDocumentType) Code() string { return "VR-1" }
func (e InvalidDocumentType) Description() string {
	return fmt.Sprintf("Document '%s' has invalid documentType.", e.DocumentID)
}
func (e InvalidDocumentType) Error() string { return e.Code() + ": " + e.Description() }

// InvalidToken reports a token that does not match the stored credential.
type InvalidToken struct{}

func (e InvalidToken) Code() string { return "VR-10.2.4.1" }
func (e InvalidToken) Description() string {
	return "Request token doesn't match token from the database."
}
func (e InvalidToken) Error() string { return e.Code() + ": " + e.Description() }

// InvalidOwner reports an owner that does not match the stored one.
type InvalidOwner struct{}

func (e InvalidOwner) Code() string { return "VR-10.2.4.2" }
func (e InvalidOwner) Description() string {
	return "Request owner doesn't match owner from the database."
}
func (e InvalidOwner) Error() string { return e.Code() + ": " + e.Description() }

// AmendmentNotFound reports an amendment id with no stored record.
type AmendmentNotFound struct {
	AmendmentID string
}

func (e AmendmentNotFound) Code() string        { return "VR-10.2.4.3" }
func (e AmendmentNotFound) Description() string { return "Amendment not found." }
func (e AmendmentNotFound) Error() string       { return e.Code() + ": " + e.Description() }

// PendingAmendmentExists reports a cancellation blocked by another pending
// cancellation amendment already attached to the tender or lot.
type PendingAmendmentExists struct {
	AmendmentID string
}

func (e PendingAmendmentExists) Code() string { return "VR-10.2.4.4" }
func (e PendingAmendmentExists) Description() string {
	return fmt.Sprintf("Found pending cancellation amendment '%s'.", e.AmendmentID)
}
func (e PendingAmendmentExists) Error() string { return e.Code() + ": " + e.Description() }
