package fail

import (
	"fmt"
	"strings"
)

// MissingRequiredAttribute reports an absent attribute the request must carry.
type MissingRequiredAttribute struct {
	Name string
}

func (e MissingRequiredAttribute) Code() string      { return "DR-1" }
func (e MissingRequiredAttribute) Attribute() string { return e.Name }
func (e MissingRequiredAttribute) Description() string {
	return fmt.Sprintf("Missing required attribute '%s'.", e.Name)
}
func (e MissingRequiredAttribute) Error() string { return e.Code() + ": " + e.Description() }

// UnknownValue reports an enum attribute outside its allowed set.
type UnknownValue struct {
	Name           string
	ActualValue    string
	ExpectedValues []string
}

func (e UnknownValue) Code() string      { return "DR-3" }
func (e UnknownValue) Attribute() string { return e.Name }
func (e UnknownValue) Description() string {
	return fmt.Sprintf(
		"Attribute '%s' contains unknown value '%s'. Allowed values: '%s'.",
		e.Name, e.ActualValue, strings.Join(e.ExpectedValues, ", "),
	)
}
func (e UnknownValue) Error() string { return e.Code() + ": " + e.Description() }

// DataFormatMismatch reports a malformed attribute value.
type DataFormatMismatch struct {
	Name           string
	ActualValue    string
	ExpectedFormat string
}

func (e DataFormatMismatch) Code() string      { return "DR-4" }
func (e DataFormatMismatch) Attribute() string { return e.Name }
func (e DataFormatMismatch) Description() string {
	return fmt.Sprintf(
		"Attribute '%s' has an invalid format '%s'. Expected format: '%s'.",
		e.Name, e.ActualValue, e.ExpectedFormat,
	)
}
func (e DataFormatMismatch) Error() string { return e.Code() + ": " + e.Description() }

// EmptyArray reports a collection that is present but empty where emptiness
// is not allowed. An omitted collection is not an error.
type EmptyArray struct {
	Name string
}

func (e EmptyArray) Code() string      { return "DR-10" }
func (e EmptyArray) Attribute() string { return e.Name }
func (e EmptyArray) Description() string {
	return fmt.Sprintf("Attribute '%s' is an empty array.", e.Name)
}
func (e EmptyArray) Error() string { return e.Code() + ": " + e.Description() }

// BadRequest reports a request body or params block that could not be parsed
// at all.
type BadRequest struct {
	Message string
}

func (e BadRequest) Code() string { return "RQ-1" }
func (e BadRequest) Description() string {
	if e.Message == "" {
		return "Invalid request."
	}
	return e.Message
}
func (e BadRequest) Error() string { return e.Code() + ": " + e.Description() }
