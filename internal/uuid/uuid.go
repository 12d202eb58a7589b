// Package uuid wraps ID generation behind an interface so repositories can
// be tested with deterministic IDs.
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator produces unique identifiers.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with google/uuid v4 IDs.
type GoogleUUIDGenerator struct{}

// New returns a fresh UUID string.
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator.
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
