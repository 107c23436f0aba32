// Package idgen provides the identity generators used for actions and
// recording sessions.
package idgen

import (
	"sync/atomic"

	"github.com/rs/xid"
)

// ID is a numeric identifier handed out to actions and sequence slots.
type ID int32

// Generator produces identifiers.
type Generator interface {
	Generate() ID
}

// NewSequential returns a generator whose first emitted ID is "1". It is safe
// for concurrent use.
func NewSequential() Generator {
	return &sequentialGenerator{}
}

type sequentialGenerator struct {
	next atomic.Int32
}

func (g *sequentialGenerator) Generate() ID {
	return ID(g.next.Add(1))
}

// NewFixed returns a generator that always emits the given value.
func NewFixed(v ID) Generator {
	return fixedGenerator(v)
}

type fixedGenerator ID

func (g fixedGenerator) Generate() ID {
	return ID(g)
}

// NewSessionTag returns a globally unique, sortable tag that can be used to
// name a recording session.
func NewSessionTag() string {
	return xid.New().String()
}
