package amendment

import (
	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
)

// CreatedEvent is published after a new amendment has been persisted.
// It is not published on the idempotent path where the row already existed.
type CreatedEvent struct {
	Cpid   model.Cpid
	Ocid   model.Ocid
	Result Amendment
}
