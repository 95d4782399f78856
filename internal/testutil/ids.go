// Package testutil provides deterministic helpers shared by package tests.
package testutil

import (
	"strconv"
	"sync"
)

// FixedIDGenerator returns the same request id every time.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator for id.
// If id is empty, Generate() returns "test-request".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-request"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed id.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}

// SequentialIDGenerator yields prefix-1, prefix-2, ... in call order.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SequentialIDGenerator struct {
	prefix string

	mu  sync.Mutex
	seq int64
}

// NewSequentialIDGenerator creates a generator starting at 1.
func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	return &SequentialIDGenerator{prefix: prefix}
}

// Generate increments the sequence and returns the next id.
func (g *SequentialIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return g.prefix + "-" + strconv.FormatInt(g.seq, 10)
}
