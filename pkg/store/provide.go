/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"github.com/google/uuid"

	"github.com/voedger/objstore/pkg/schema"
)

// Creates and returns new property store bound to registry.
//
// Validation is on (strict mode).
func New(reg schema.IRegistry, opts ...Option) *Store {
	o := options{newGuid: uuid.New}
	for _, opt := range opts {
		opt(&o)
	}
	return newStore(reg, o)
}
