package services

import (
	"github.com/google/uuid"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/model"
)

// Generator produces the credentials the service issues. Kept behind an
// interface so tests can pin the generated values.
type Generator interface {
	GenerateToken() model.Token
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return UUIDGenerator{}
}

func (UUIDGenerator) GenerateToken() model.Token {
	return model.Token(uuid.New())
}
