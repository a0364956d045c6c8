/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import "math"

// Allocates strictly increasing object IDs
type idGenerator struct {
	nextID  ObjectID
	onNewID func(ObjectID)
}

// onNewID hook is used in tests
func newIDGenerator(onNewID func(ObjectID)) *idGenerator {
	return &idGenerator{
		nextID:  FirstObjectID,
		onNewID: onNewID,
	}
}

// Returns next object ID. Panics if IDs are exhausted
func (g *idGenerator) NextID() ObjectID {
	if g.nextID == math.MaxInt32 {
		panic("object IDs are exhausted")
	}
	id := g.nextID
	g.nextID++
	if g.onNewID != nil {
		g.onNewID(id)
	}
	return id
}

// Returns last allocated ID or NullObjectID if nothing is allocated
func (g *idGenerator) LastID() ObjectID {
	return g.nextID - 1
}
