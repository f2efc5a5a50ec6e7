package idgen

import (
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator issues random (version 4) UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID generator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh UUID in canonical text form
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
