package persistence

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/amendment"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
	"github.com/eprocurement-ocds/revision/modules/revision/infrastructure/persistence/models"
	"github.com/eprocurement-ocds/revision/pkg/composables"
)

const (
	selectByProcessSQL = `
		SELECT data
		FROM revision_amendments
		WHERE cpid = $1 AND ocid = $2`

	selectByIDSQL = `
		SELECT data
		FROM revision_amendments
		WHERE cpid = $1 AND ocid = $2 AND id = $3`

	selectByIDsSQL = `
		SELECT data
		FROM revision_amendments
		WHERE cpid = $1 AND ocid = $2 AND id = ANY($3)`

	insertSQL = `
		INSERT INTO revision_amendments (cpid, ocid, id, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cpid, ocid, id) DO NOTHING`

	updateSQL = `
		UPDATE revision_amendments
		SET data = $4
		WHERE cpid = $1 AND ocid = $2 AND id = $3`
)

type AmendmentRepository struct{}

func NewAmendmentRepository() amendment.Repository {
	return &AmendmentRepository{}
}

func (r *AmendmentRepository) FindByProcess(ctx context.Context, cpid model.Cpid, ocid model.Ocid) ([]amendment.Amendment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, fail.NewDatabaseInteractionIncident(err)
	}

	rows, err := tx.Query(ctx, selectByProcessSQL, cpid.String(), ocid.String())
	if err != nil {
		return nil, fail.NewDatabaseInteractionIncident(errors.Wrap(err, "querying amendments"))
	}
	defer rows.Close()

	return collectAmendments(rows)
}

func (r *AmendmentRepository) FindByID(ctx context.Context, cpid model.Cpid, ocid model.Ocid, id amendment.ID) (amendment.Amendment, bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return amendment.Amendment{}, false, fail.NewDatabaseInteractionIncident(err)
	}

	var data []byte
	err = tx.QueryRow(ctx, selectByIDSQL, cpid.String(), ocid.String(), id.String()).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return amendment.Amendment{}, false, nil
	}
	if err != nil {
		return amendment.Amendment{}, false, fail.NewDatabaseInteractionIncident(errors.Wrap(err, "querying amendment"))
	}

	found, err := unmarshalAmendment(data)
	if err != nil {
		return amendment.Amendment{}, false, err
	}
	return found, true, nil
}

func (r *AmendmentRepository) FindByIDs(ctx context.Context, cpid model.Cpid, ocid model.Ocid, ids []amendment.ID) ([]amendment.Amendment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, fail.NewDatabaseInteractionIncident(err)
	}

	rawIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.String())
	}

	rows, err := tx.Query(ctx, selectByIDsSQL, cpid.String(), ocid.String(), rawIDs)
	if err != nil {
		return nil, fail.NewDatabaseInteractionIncident(errors.Wrap(err, "querying amendments"))
	}
	defer rows.Close()

	return collectAmendments(rows)
}

func (r *AmendmentRepository) SaveNew(ctx context.Context, cpid model.Cpid, ocid model.Ocid, a amendment.Amendment) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, fail.NewDatabaseInteractionIncident(err)
	}

	data, err := json.Marshal(toDBAmendment(a))
	if err != nil {
		return false, fail.NewDatabaseInteractionIncident(errors.Wrap(err, "marshaling amendment"))
	}

	tag, err := tx.Exec(ctx, insertSQL, cpid.String(), ocid.String(), a.ID().String(), data)
	if err != nil {
		return false, fail.NewDatabaseInteractionIncident(errors.Wrap(err, "inserting amendment"))
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AmendmentRepository) Update(ctx context.Context, cpid model.Cpid, ocid model.Ocid, a amendment.Amendment) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, fail.NewDatabaseInteractionIncident(err)
	}

	data, err := json.Marshal(toDBAmendment(a))
	if err != nil {
		return false, fail.NewDatabaseInteractionIncident(errors.Wrap(err, "marshaling amendment"))
	}

	tag, err := tx.Exec(ctx, updateSQL, cpid.String(), ocid.String(), a.ID().String(), data)
	if err != nil {
		return false, fail.NewDatabaseInteractionIncident(errors.Wrap(err, "updating amendment"))
	}
	return tag.RowsAffected() == 1, nil
}

func collectAmendments(rows pgx.Rows) ([]amendment.Amendment, error) {
	amendments := make([]amendment.Amendment, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fail.NewDatabaseInteractionIncident(errors.Wrap(err, "scanning amendment"))
		}
		a, err := unmarshalAmendment(data)
		if err != nil {
			return nil, err
		}
		amendments = append(amendments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fail.NewDatabaseInteractionIncident(errors.Wrap(err, "iterating amendments"))
	}
	return amendments, nil
}

// unmarshalAmendment decodes a stored blob back into the aggregate. A blob
// that no longer parses is reported as a parse incident carrying the raw
// payload, so operators can find the broken row.
func unmarshalAmendment(data []byte) (amendment.Amendment, error) {
	var entity models.Amendment
	if err := json.Unmarshal(data, &entity); err != nil {
		return amendment.Amendment{}, fail.NewParseFromDatabaseIncident(string(data), err)
	}
	a, err := toDomainAmendment(entity)
	if err != nil {
		return amendment.Amendment{}, fail.NewParseFromDatabaseIncident(string(data), err)
	}
	return a, nil
}
