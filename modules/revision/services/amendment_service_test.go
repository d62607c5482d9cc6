package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/amendment"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
	"github.com/eprocurement-ocds/revision/modules/revision/services"
	"github.com/eprocurement-ocds/revision/pkg/eventbus"
)

const (
	testCpid = "ocds-b3wdp1-MD-1580458690892"
	testOcid = "ocds-b3wdp1-MD-1580458690892-EV-1580458791896"
)

type processKey struct {
	cpid model.Cpid
	ocid model.Ocid
}

// inMemoryRepository keeps amendments per process in insertion order.
type inMemoryRepository struct {
	stored map[processKey][]amendment.Amendment
}

func newInMemoryRepository() *inMemoryRepository {
	return &inMemoryRepository{stored: map[processKey][]amendment.Amendment{}}
}

func (r *inMemoryRepository) FindByProcess(_ context.Context, cpid model.Cpid, ocid model.Ocid) ([]amendment.Amendment, error) {
	return r.stored[processKey{cpid, ocid}], nil
}

func (r *inMemoryRepository) FindByID(_ context.Context, cpid model.Cpid, ocid model.Ocid, id amendment.ID) (amendment.Amendment, bool, error) {
	for _, a := range r.stored[processKey{cpid, ocid}] {
		if a.ID() == id {
			return a, true, nil
		}
	}
	return amendment.Amendment{}, false, nil
}

func (r *inMemoryRepository) FindByIDs(_ context.Context, cpid model.Cpid, ocid model.Ocid, ids []amendment.ID) ([]amendment.Amendment, error) {
	wanted := map[amendment.ID]struct{}{}
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var found []amendment.Amendment
	for _, a := range r.stored[processKey{cpid, ocid}] {
		if _, ok := wanted[a.ID()]; ok {
			found = append(found, a)
		}
	}
	return found, nil
}

func (r *inMemoryRepository) SaveNew(_ context.Context, cpid model.Cpid, ocid model.Ocid, a amendment.Amendment) (bool, error) {
	key := processKey{cpid, ocid}
	for _, stored := range r.stored[key] {
		if stored.ID() == a.ID() {
			return false, nil
		}
	}
	r.stored[key] = append(r.stored[key], a)
	return true, nil
}

func (r *inMemoryRepository) Update(_ context.Context, cpid model.Cpid, ocid model.Ocid, a amendment.Amendment) (bool, error) {
	key := processKey{cpid, ocid}
	for i, stored := range r.stored[key] {
		if stored.ID() == a.ID() {
			r.stored[key][i] = a
			return true, nil
		}
	}
	return false, nil
}

type fixedGenerator struct {
	token model.Token
}

func (g fixedGenerator) GenerateToken() model.Token { return g.token }

func newService(t *testing.T, repo amendment.Repository, token model.Token) *services.AmendmentService {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return services.NewAmendmentService(repo, fixedGenerator{token: token}, eventbus.NewEventPublisher(log))
}

func createParams(t *testing.T, operationType, relatedEntityID, amendmentID string) amendment.CreateParams {
	t.Helper()
	params, err := amendment.NewCreateParams(
		operationType,
		"2020-02-10T10:30:00Z",
		"445f6851-c908-407d-9b45-14b92f3e964b",
		testCpid,
		testOcid,
		relatedEntityID,
		amendment.RawAmendment{
			ID:        amendmentID,
			Rationale: "Some rationale",
			Documents: &[]amendment.RawDocument{
				{ID: "doc-1", DocumentType: "cancellationDetails", Title: "cancellation act"},
			},
		},
	)
	require.NoError(t, err)
	return params
}

func TestCreateAmendment(t *testing.T) {
	t.Parallel()

	t.Run("creates a pending cancellation amendment", func(t *testing.T) {
		t.Parallel()
		repo := newInMemoryRepository()
		token := model.Token(uuid.New())
		svc := newService(t, repo, token)

		params := createParams(t, "tenderCancellation", "tender-1", uuid.NewString())
		created, err := svc.CreateAmendment(context.Background(), params)
		require.NoError(t, err)

		assert.Equal(t, params.Amendment.ID, created.ID())
		assert.Equal(t, token, created.Token())
		assert.Equal(t, amendment.StatusPending, created.Status())
		assert.Equal(t, amendment.TypeCancellation, created.Type())
		assert.Equal(t, amendment.RelatesToTender, created.RelatesTo())
		assert.Equal(t, "tender-1", created.RelatedItem())
		assert.Equal(t, params.StartDate, created.Date())
	})

	t.Run("lot cancellation relates to the lot", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, newInMemoryRepository(), model.Token(uuid.New()))

		created, err := svc.CreateAmendment(context.Background(), createParams(t, "lotCancellation", "lot-1", uuid.NewString()))
		require.NoError(t, err)
		assert.Equal(t, amendment.RelatesToLot, created.RelatesTo())
		assert.Equal(t, "lot-1", created.RelatedItem())
	})

	t.Run("repeated create returns the stored amendment", func(t *testing.T) {
		t.Parallel()
		repo := newInMemoryRepository()
		firstToken := model.Token(uuid.New())
		amendmentID := uuid.NewString()

		first, err := newService(t, repo, firstToken).
			CreateAmendment(context.Background(), createParams(t, "tenderCancellation", "tender-1", amendmentID))
		require.NoError(t, err)

		// Second request generates a different token; the stored one wins.
		second, err := newService(t, repo, model.Token(uuid.New())).
			CreateAmendment(context.Background(), createParams(t, "tenderCancellation", "tender-1", amendmentID))
		require.NoError(t, err)

		assert.Equal(t, first.ID(), second.ID())
		assert.Equal(t, firstToken, second.Token())
	})

	t.Run("not applied and not readable is a consistency incident", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, &vanishingRepository{}, model.Token(uuid.New()))

		_, err := svc.CreateAmendment(context.Background(), createParams(t, "tenderCancellation", "tender-1", uuid.NewString()))
		incident, ok := fail.AsIncident(err)
		require.True(t, ok)
		assert.Equal(t, "INC-03", incident.Code())
	})
}

// vanishingRepository reports every insert as not applied while the row can
// never be read back.
type vanishingRepository struct {
	inMemoryRepository
}

func (r *vanishingRepository) SaveNew(context.Context, model.Cpid, model.Ocid, amendment.Amendment) (bool, error) {
	return false, nil
}

func (r *vanishingRepository) FindByID(context.Context, model.Cpid, model.Ocid, amendment.ID) (amendment.Amendment, bool, error) {
	return amendment.Amendment{}, false, nil
}

func TestGetAmendmentIDsBy(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	svc := newService(t, repo, model.Token(uuid.New()))
	ctx := context.Background()

	tenderAmd, err := svc.CreateAmendment(ctx, createParams(t, "tenderCancellation", "tender-1", uuid.NewString()))
	require.NoError(t, err)
	lotAmd, err := svc.CreateAmendment(ctx, createParams(t, "lotCancellation", "lot-1", uuid.NewString()))
	require.NoError(t, err)
	otherLotAmd, err := svc.CreateAmendment(ctx, createParams(t, "lotCancellation", "lot-2", uuid.NewString()))
	require.NoError(t, err)

	getIDs := func(t *testing.T, status, amdType, relatesTo *string, relatedItems *[]string) []amendment.ID {
		t.Helper()
		params, err := amendment.NewGetIDsParams(testCpid, testOcid, status, amdType, relatesTo, relatedItems)
		require.NoError(t, err)
		ids, err := svc.GetAmendmentIDsBy(ctx, params)
		require.NoError(t, err)
		return ids
	}

	t.Run("no filters returns everything in stored order", func(t *testing.T) {
		ids := getIDs(t, nil, nil, nil, nil)
		assert.Equal(t, []amendment.ID{tenderAmd.ID(), lotAmd.ID(), otherLotAmd.ID()}, ids)
	})

	t.Run("relatesTo filter", func(t *testing.T) {
		relatesTo := "lot"
		ids := getIDs(t, nil, nil, &relatesTo, nil)
		assert.Equal(t, []amendment.ID{lotAmd.ID(), otherLotAmd.ID()}, ids)
	})

	t.Run("related items filter", func(t *testing.T) {
		items := []string{"lot-2", "tender-1"}
		ids := getIDs(t, nil, nil, nil, &items)
		assert.Equal(t, []amendment.ID{tenderAmd.ID(), otherLotAmd.ID()}, ids)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		relatesTo := "tender"
		items := []string{"lot-1"}
		ids := getIDs(t, nil, nil, &relatesTo, &items)
		assert.Empty(t, ids)
	})

	t.Run("unknown process yields no ids", func(t *testing.T) {
		params, err := amendment.NewGetIDsParams(testCpid, "ocds-b3wdp1-MD-1580458690892-PN-1580458791111", nil, nil, nil, nil)
		require.NoError(t, err)
		ids, err := svc.GetAmendmentIDsBy(ctx, params)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestValidateDocumentsTypes(t *testing.T) {
	t.Parallel()

	svc := newService(t, newInMemoryRepository(), model.Token(uuid.New()))

	buildParams := func(t *testing.T, documentTypes ...string) amendment.DataValidationParams {
		t.Helper()
		documents := make([]amendment.RawDocument, 0, len(documentTypes))
		for i, documentType := range documentTypes {
			documents = append(documents, amendment.RawDocument{
				ID:           "doc-" + string(rune('1'+i)),
				DocumentType: documentType,
				Title:        "title",
			})
		}
		params, err := amendment.NewDataValidationParams(testCpid, testOcid, "tenderCancellation", []amendment.RawAmendment{
			{ID: uuid.NewString(), Rationale: "rationale", Documents: &documents},
		})
		require.NoError(t, err)
		return params
	}

	t.Run("all documents carry cancellation details", func(t *testing.T) {
		t.Parallel()
		err := svc.ValidateDocumentsTypes(context.Background(), buildParams(t, "cancellationDetails", "cancellationDetails"))
		assert.NoError(t, err)
	})

	t.Run("first mismatching document fails the batch", func(t *testing.T) {
		t.Parallel()
		err := svc.ValidateDocumentsTypes(context.Background(), buildParams(t, "cancellationDetails", "tenderNotice"))
		var invalid fail.InvalidDocumentType
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "doc-2", invalid.DocumentID)
	})

	t.Run("no documents passes", func(t *testing.T) {
		t.Parallel()
		params, err := amendment.NewDataValidationParams(testCpid, testOcid, "lotCancellation", []amendment.RawAmendment{
			{ID: uuid.NewString(), Rationale: "rationale"},
		})
		require.NoError(t, err)
		assert.NoError(t, svc.ValidateDocumentsTypes(context.Background(), params))
	})
}

func TestCheckCancellationState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cpid := model.Cpid(testCpid)
	ocid := model.Ocid(testOcid)

	t.Run("clean process passes", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, newInMemoryRepository(), model.Token(uuid.New()))
		assert.NoError(t, svc.CheckCancellationState(ctx, cpid, ocid, amendment.RelatesToTender, "tender-1"))
		assert.NoError(t, svc.CheckCancellationState(ctx, cpid, ocid, amendment.RelatesToLot, "lot-1"))
	})

	t.Run("pending tender cancellation blocks everything", func(t *testing.T) {
		t.Parallel()
		repo := newInMemoryRepository()
		svc := newService(t, repo, model.Token(uuid.New()))
		_, err := svc.CreateAmendment(ctx, createParams(t, "tenderCancellation", "tender-1", uuid.NewString()))
		require.NoError(t, err)

		var pending fail.PendingAmendmentExists
		require.ErrorAs(t, svc.CheckCancellationState(ctx, cpid, ocid, amendment.RelatesToTender, "tender-1"), &pending)
		require.ErrorAs(t, svc.CheckCancellationState(ctx, cpid, ocid, amendment.RelatesToLot, "lot-1"), &pending)
	})

	t.Run("pending lot cancellation blocks the same lot and the whole tender", func(t *testing.T) {
		t.Parallel()
		repo := newInMemoryRepository()
		svc := newService(t, repo, model.Token(uuid.New()))
		_, err := svc.CreateAmendment(ctx, createParams(t, "lotCancellation", "lot-1", uuid.NewString()))
		require.NoError(t, err)

		var pending fail.PendingAmendmentExists
		require.ErrorAs(t, svc.CheckCancellationState(ctx, cpid, ocid, amendment.RelatesToLot, "lot-1"), &pending)
		require.ErrorAs(t, svc.CheckCancellationState(ctx, cpid, ocid, amendment.RelatesToTender, "tender-1"), &pending)
		assert.NoError(t, svc.CheckCancellationState(ctx, cpid, ocid, amendment.RelatesToLot, "lot-2"))
	})
}

func TestProceedCancellationAmendment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cpid := model.Cpid(testCpid)
	ocid := model.Ocid(testOcid)

	setup := func(t *testing.T) (*services.AmendmentService, amendment.Amendment) {
		t.Helper()
		repo := newInMemoryRepository()
		svc := newService(t, repo, model.Token(uuid.New()))
		created, err := svc.CreateAmendment(ctx, createParams(t, "lotCancellation", "lot-1", uuid.NewString()))
		require.NoError(t, err)
		return svc, created
	}

	t.Run("activates the pending amendment", func(t *testing.T) {
		t.Parallel()
		svc, created := setup(t)

		activated, err := svc.ProceedCancellationAmendment(
			ctx, cpid, ocid, amendment.RelatesToLot, "lot-1", created.Token(), created.Owner())
		require.NoError(t, err)
		assert.Equal(t, amendment.StatusActive, activated.Status())
		assert.Equal(t, created.ID(), activated.ID())

		// The stored record changed too, so a second proceed finds nothing
		// pending.
		_, err = svc.ProceedCancellationAmendment(
			ctx, cpid, ocid, amendment.RelatesToLot, "lot-1", created.Token(), created.Owner())
		var notFound fail.AmendmentNotFound
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("wrong token", func(t *testing.T) {
		t.Parallel()
		svc, created := setup(t)
		_, err := svc.ProceedCancellationAmendment(
			ctx, cpid, ocid, amendment.RelatesToLot, "lot-1", model.Token(uuid.New()), created.Owner())
		var invalid fail.InvalidToken
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("wrong owner", func(t *testing.T) {
		t.Parallel()
		svc, created := setup(t)
		_, err := svc.ProceedCancellationAmendment(
			ctx, cpid, ocid, amendment.RelatesToLot, "lot-1", created.Token(), model.Owner(uuid.New()))
		var invalid fail.InvalidOwner
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("no pending amendment", func(t *testing.T) {
		t.Parallel()
		svc, created := setup(t)
		_, err := svc.ProceedCancellationAmendment(
			ctx, cpid, ocid, amendment.RelatesToLot, "lot-2", created.Token(), created.Owner())
		var notFound fail.AmendmentNotFound
		require.ErrorAs(t, err, &notFound)
	})
}
