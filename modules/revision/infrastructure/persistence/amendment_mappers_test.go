package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/amendment"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
)

func TestAmendmentMapping(t *testing.T) {
	t.Parallel()

	description := "contract was cancelled"
	original := amendment.New(
		amendment.ID(uuid.New()),
		model.Token(uuid.New()),
		model.Owner(uuid.New()),
		"Some rationale",
		&description,
		[]amendment.Document{
			amendment.NewDocument("doc-1", amendment.DocumentTypeCancellationDetails, "cancellation act", &description),
			amendment.NewDocument("doc-2", amendment.DocumentTypeTenderNotice, "notice", nil),
		},
		amendment.StatusPending,
		amendment.TypeCancellation,
		amendment.RelatesToTender,
		"tender-1",
		time.Date(2020, 2, 10, 10, 30, 0, 0, time.UTC),
	)

	restored, err := toDomainAmendment(toDBAmendment(original))
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestCorruptedEntityIsRejected(t *testing.T) {
	t.Parallel()

	entity := toDBAmendment(amendment.New(
		amendment.ID(uuid.New()),
		model.Token(uuid.New()),
		model.Owner(uuid.New()),
		"Some rationale",
		nil,
		nil,
		amendment.StatusPending,
		amendment.TypeCancellation,
		amendment.RelatesToLot,
		"lot-1",
		time.Date(2020, 2, 10, 10, 30, 0, 0, time.UTC),
	))
	entity.Status = "unknown-status"

	_, err := toDomainAmendment(entity)
	var unknown fail.UnknownValue
	require.ErrorAs(t, err, &unknown)
}

func TestUnmarshalAmendmentWrapsFailuresAsParseIncidents(t *testing.T) {
	t.Parallel()

	_, err := unmarshalAmendment([]byte(`not json`))
	incident, ok := fail.AsIncident(err)
	require.True(t, ok)
	assert.Equal(t, "INC-02", incident.Code())
}
