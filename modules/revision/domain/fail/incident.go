package fail

import "fmt"

// Incident is an unexpected, infrastructure-level failure. It is never shown
// to the caller as a field error: the controller logs it with full context and
// responds with an opaque incident id plus service metadata.
type Incident struct {
	code        string
	description string
	err         error
}

func (i Incident) Code() string        { return i.code }
func (i Incident) Description() string { return i.description }
func (i Incident) Unwrap() error       { return i.err }

func (i Incident) Error() string {
	if i.err != nil {
		return fmt.Sprintf("%s: %s: %s", i.code, i.description, i.err)
	}
	return i.code + ": " + i.description
}

// NewDatabaseInteractionIncident wraps a failed round-trip to the store.
func NewDatabaseInteractionIncident(err error) Incident {
	return Incident{
		code:        "INC-01",
		description: "Database interaction failed.",
		err:         err,
	}
}

// NewParseFromDatabaseIncident wraps persisted data that no longer
// deserializes into the domain model.
func NewParseFromDatabaseIncident(data string, err error) Incident {
	return Incident{
		code:        "INC-02",
		description: fmt.Sprintf("Could not parse data stored in the database: '%s'.", data),
		err:         err,
	}
}

// NewDatabaseConsistencyIncident reports a store state that contradicts a
// write the service just observed, e.g. a conditional insert that was not
// applied while the conflicting row cannot be read back.
func NewDatabaseConsistencyIncident(description string) Incident {
	return Incident{
		code:        "INC-03",
		description: description,
	}
}

// NewInternalIncident wraps a failure with no more specific classification.
func NewInternalIncident(err error) Incident {
	return Incident{
		code:        "INC-00",
		description: "Internal server error.",
		err:         err,
	}
}
