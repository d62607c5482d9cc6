// Package dto defines the wire types of the command API: the request
// envelope, per-action params and the success/error/incident responses.
package dto

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
	"github.com/eprocurement-ocds/revision/pkg/constants"
)

const (
	ActionCreateAmendment = "createAmendment"
	ActionGetAmendmentIDs = "getAmendmentIds"
	ActionDataValidation  = "dataValidation"
)

// Command is the request envelope every operation travels in. Params stays
// raw until the action is known.
type Command struct {
	Version string          `json:"version" validate:"required"`
	ID      string          `json:"id" validate:"required"`
	Action  string          `json:"action" validate:"required"`
	Params  json.RawMessage `json:"params" validate:"required"`
}

// ParseCommand decodes and shape-checks the envelope. Unparseable JSON is a
// bad request; a missing required attribute is reported by its wire name.
func ParseCommand(body []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(body, &cmd); err != nil {
		return Command{}, fail.BadRequest{Message: "Invalid request body."}
	}
	if err := validateShape(cmd); err != nil {
		return cmd, err
	}
	return cmd, nil
}

// DecodeParams decodes the params block into the action's request type and
// shape-checks its required attributes.
func DecodeParams(raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fail.BadRequest{Message: "Invalid params."}
	}
	return validateShape(dst)
}

func validateShape(v any) error {
	err := constants.Validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fail.BadRequest{Message: "Invalid request."}
	}
	return fail.MissingRequiredAttribute{Name: fieldErrors[0].Field()}
}
