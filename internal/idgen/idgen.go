// Package idgen provides ID generation behind a small interface so that
// services stay reproducible in tests.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique identifiers for new records.
type Generator interface {
	NewID() string
}

// UUIDGenerator generates random version-4 UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator returns the production Generator.
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequenceGenerator yields "<prefix>-1", "<prefix>-2", … deterministically.
// Intended for tests.
type SequenceGenerator struct {
	prefix  string
	counter atomic.Int64
}

// NewSequenceGenerator creates a deterministic Generator with the given prefix.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.counter.Add(1))
}
