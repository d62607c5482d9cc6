package amendment

import (
	"context"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
)

// Repository is the persistence contract of the amendment aggregate.
// Implementations surface every failure as a fail.Incident; the booleans
// returned by the write methods report whether the conditional write was
// applied by the store.
type Repository interface {
	FindByProcess(ctx context.Context, cpid model.Cpid, ocid model.Ocid) ([]Amendment, error)
	FindByID(ctx context.Context, cpid model.Cpid, ocid model.Ocid, id ID) (Amendment, bool, error)
	FindByIDs(ctx context.Context, cpid model.Cpid, ocid model.Ocid, ids []ID) ([]Amendment, error)
	// SaveNew inserts the amendment only if no row exists for
	// (cpid, ocid, id). Applied is false when the row already existed.
	SaveNew(ctx context.Context, cpid model.Cpid, ocid model.Ocid, a Amendment) (applied bool, err error)
	// Update rewrites the stored amendment only if the row already exists.
	Update(ctx context.Context, cpid model.Cpid, ocid model.Ocid, a Amendment) (applied bool, err error)
}
