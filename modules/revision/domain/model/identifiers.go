// Package model holds the strongly-typed identifiers shared across the
// revision domain. Every type is constructed through a parse function that
// validates the raw value, so a live instance is always well-formed.
package model

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
)

var (
	cpidRegex = regexp.MustCompile(`^ocds-[a-z0-9]{6}-[A-Z]{2}-[0-9]{13}$`)
	ocidRegex = regexp.MustCompile(`^ocds-[a-z0-9]{6}-[A-Z]{2}-[0-9]{13}-(AC|EI|EV|FS|NP|PN|TE)-[0-9]{13}$`)
)

// Cpid scopes a procurement process.
type Cpid string

func (c Cpid) String() string { return string(c) }

func ParseCpid(name, value string) (Cpid, error) {
	if !cpidRegex.MatchString(value) {
		return "", fail.DataFormatMismatch{
			Name:           name,
			ActualValue:    value,
			ExpectedFormat: cpidRegex.String(),
		}
	}
	return Cpid(value), nil
}

// Ocid scopes one stage/release within a cpid.
type Ocid string

func (o Ocid) String() string { return string(o) }

func ParseOcid(name, value string) (Ocid, error) {
	if !ocidRegex.MatchString(value) {
		return "", fail.DataFormatMismatch{
			Name:           name,
			ActualValue:    value,
			ExpectedFormat: ocidRegex.String(),
		}
	}
	return Ocid(value), nil
}

// Owner identifies the platform party that created an amendment.
type Owner uuid.UUID

func (o Owner) String() string { return uuid.UUID(o).String() }

func ParseOwner(name, value string) (Owner, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return Owner{}, fail.DataFormatMismatch{
			Name:           name,
			ActualValue:    value,
			ExpectedFormat: "uuid",
		}
	}
	return Owner(parsed), nil
}

// Token is the opaque credential issued at amendment creation; later
// mutations must present it.
type Token uuid.UUID

func (t Token) String() string { return uuid.UUID(t).String() }

func ParseToken(name, value string) (Token, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return Token{}, fail.DataFormatMismatch{
			Name:           name,
			ActualValue:    value,
			ExpectedFormat: "uuid",
		}
	}
	return Token(parsed), nil
}
