package services

import (
	"context"
	"fmt"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/amendment"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
	"github.com/eprocurement-ocds/revision/pkg/composables"
	"github.com/eprocurement-ocds/revision/pkg/eventbus"
)

type AmendmentService struct {
	repo      amendment.Repository
	generator Generator
	publisher eventbus.EventBus
}

func NewAmendmentService(repo amendment.Repository, generator Generator, publisher eventbus.EventBus) *AmendmentService {
	return &AmendmentService{
		repo:      repo,
		generator: generator,
		publisher: publisher,
	}
}

// GetAmendmentIDsBy loads every amendment of the (cpid, ocid) process stage
// and filters in memory. Each filter is optional and they AND-combine; the
// repository's return order is preserved.
func (s *AmendmentService) GetAmendmentIDsBy(ctx context.Context, params amendment.GetIDsParams) ([]amendment.ID, error) {
	amendments, err := s.repo.FindByProcess(ctx, params.Cpid, params.Ocid)
	if err != nil {
		return nil, err
	}

	relatedItems := make(map[string]struct{}, len(params.RelatedItems))
	for _, item := range params.RelatedItems {
		relatedItems[item] = struct{}{}
	}

	ids := make([]amendment.ID, 0, len(amendments))
	for _, a := range amendments {
		if testEquals(a.Status(), params.Status) &&
			testEquals(a.Type(), params.Type) &&
			testEquals(a.RelatesTo(), params.RelatesTo) &&
			testContains(a.RelatedItem(), relatedItems) {
			ids = append(ids, a.ID())
		}
	}
	return ids, nil
}

// ValidateDocumentsTypes checks that every document in the batch carries the
// single document type allowed for the batch's operation. The first
// mismatching document fails the whole batch.
func (s *AmendmentService) ValidateDocumentsTypes(ctx context.Context, params amendment.DataValidationParams) error {
	correctDocumentType, err := requiredDocumentTypeFor(params.OperationType)
	if err != nil {
		return err
	}

	for _, a := range params.Amendments {
		for _, document := range a.Documents {
			if document.DocumentType != correctDocumentType {
				return fail.InvalidDocumentType{DocumentID: document.ID.String()}
			}
		}
	}
	return nil
}

// CreateAmendment builds a pending cancellation amendment from the params
// and saves it with a conditional insert. When the insert is not applied the
// row already exists, so the stored amendment is read back and returned:
// duplicate or racing requests converge on one record. The store's
// conditional write is the only mutual-exclusion point.
func (s *AmendmentService) CreateAmendment(ctx context.Context, params amendment.CreateParams) (amendment.Amendment, error) {
	relatesTo, err := relatesToFor(params.OperationType)
	if err != nil {
		return amendment.Amendment{}, err
	}

	documents := make([]amendment.Document, 0, len(params.Amendment.Documents))
	for _, document := range params.Amendment.Documents {
		documents = append(documents, amendment.NewDocument(
			document.ID,
			document.DocumentType,
			document.Title,
			document.Description,
		))
	}

	created := amendment.New(
		params.Amendment.ID,
		s.generator.GenerateToken(),
		params.Owner,
		params.Amendment.Rationale,
		params.Amendment.Description,
		documents,
		amendment.StatusPending,
		amendment.TypeCancellation,
		relatesTo,
		params.RelatedEntityID,
		params.StartDate,
	)

	applied, err := s.repo.SaveNew(ctx, params.Cpid, params.Ocid, created)
	if err != nil {
		return amendment.Amendment{}, err
	}
	if applied {
		composables.UseLogger(ctx).
			WithField("amendment-id", created.ID().String()).
			Debug("amendment created")
		s.publisher.Publish(amendment.CreatedEvent{
			Cpid:   params.Cpid,
			Ocid:   params.Ocid,
			Result: created,
		})
		return created, nil
	}

	existing, found, err := s.repo.FindByID(ctx, params.Cpid, params.Ocid, created.ID())
	if err != nil {
		return amendment.Amendment{}, err
	}
	if !found {
		return amendment.Amendment{}, fail.NewDatabaseConsistencyIncident(
			fmt.Sprintf("Amendment '%s' was not inserted but cannot be found.", created.ID()),
		)
	}
	return existing, nil
}

// CheckCancellationState verifies that no pending cancellation amendment
// blocks a new cancellation of the given tender or lot. Cancelling the whole
// tender is blocked by ANY pending cancellation amendment, lot-related ones
// included; cancelling a lot is blocked by a pending tender cancellation or
// a pending cancellation of the same lot.
func (s *AmendmentService) CheckCancellationState(
	ctx context.Context,
	cpid model.Cpid,
	ocid model.Ocid,
	relatesTo amendment.RelatesTo,
	relatedItem string,
) error {
	amendments, err := s.repo.FindByProcess(ctx, cpid, ocid)
	if err != nil {
		return err
	}

	for _, a := range amendments {
		if a.Type() != amendment.TypeCancellation || a.Status() != amendment.StatusPending {
			continue
		}
		if relatesTo == amendment.RelatesToTender {
			return fail.PendingAmendmentExists{AmendmentID: a.ID().String()}
		}
		if a.RelatesTo() == amendment.RelatesToTender ||
			(a.RelatesTo() == amendment.RelatesToLot && a.RelatedItem() == relatedItem) {
			return fail.PendingAmendmentExists{AmendmentID: a.ID().String()}
		}
	}
	return nil
}

// ProceedCancellationAmendment activates the pending cancellation amendment
// attached to the given tender or lot. The caller must present the token
// issued at creation and the owner recorded on the amendment.
func (s *AmendmentService) ProceedCancellationAmendment(
	ctx context.Context,
	cpid model.Cpid,
	ocid model.Ocid,
	relatesTo amendment.RelatesTo,
	relatedItem string,
	token model.Token,
	owner model.Owner,
) (amendment.Amendment, error) {
	amendments, err := s.repo.FindByProcess(ctx, cpid, ocid)
	if err != nil {
		return amendment.Amendment{}, err
	}

	var pending amendment.Amendment
	for _, a := range amendments {
		if a.Type() == amendment.TypeCancellation &&
			a.Status() == amendment.StatusPending &&
			a.RelatesTo() == relatesTo &&
			a.RelatedItem() == relatedItem {
			pending = a
			break
		}
	}
	if pending.IsZero() {
		return amendment.Amendment{}, fail.AmendmentNotFound{AmendmentID: relatedItem}
	}
	if pending.Token() != token {
		return amendment.Amendment{}, fail.InvalidToken{}
	}
	if pending.Owner() != owner {
		return amendment.Amendment{}, fail.InvalidOwner{}
	}

	activated := pending.WithStatus(amendment.StatusActive)
	applied, err := s.repo.Update(ctx, cpid, ocid, activated)
	if err != nil {
		return amendment.Amendment{}, err
	}
	if !applied {
		return amendment.Amendment{}, fail.NewDatabaseConsistencyIncident(
			fmt.Sprintf("Amendment '%s' disappeared during activation.", pending.ID()),
		)
	}
	return activated, nil
}

// requiredDocumentTypeFor maps the operation type to the single document
// type its documents must carry. The switch is exhaustive over the closed
// operation set; an unhandled variant is an internal incident, never a
// silent default.
func requiredDocumentTypeFor(operationType amendment.OperationType) (amendment.DocumentType, error) {
	switch operationType {
	case amendment.OperationTenderCancellation, amendment.OperationLotCancellation:
		return amendment.DocumentTypeCancellationDetails, nil
	}
	return "", fail.NewInternalIncident(fmt.Errorf("unhandled operation type '%s'", operationType))
}

func relatesToFor(operationType amendment.OperationType) (amendment.RelatesTo, error) {
	switch operationType {
	case amendment.OperationTenderCancellation:
		return amendment.RelatesToTender, nil
	case amendment.OperationLotCancellation:
		return amendment.RelatesToLot, nil
	}
	return "", fail.NewInternalIncident(fmt.Errorf("unhandled operation type '%s'", operationType))
}

func testEquals[T comparable](value T, pattern *T) bool {
	if pattern == nil {
		return true
	}
	return value == *pattern
}

func testContains(value string, patterns map[string]struct{}) bool {
	if len(patterns) == 0 {
		return true
	}
	_, ok := patterns[value]
	return ok
}
