/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"github.com/google/uuid"

	"github.com/voedger/objstore/pkg/schema"
)

type Option func(*options)

type options struct {
	newGuid func() uuid.UUID
	onNewID func(ObjectID)
	wsClass *schema.ClassID
}

// Guid generator for objects created by CreateOwned. Default is uuid.New
func WithGuidGenerator(f func() uuid.UUID) Option {
	return func(o *options) { o.newGuid = f }
}

// Hook called for every allocated object ID
func WithAllocationHook(f func(ObjectID)) Option {
	return func(o *options) { o.onNewID = f }
}

// Writing system class. If set, strict SetMultiString admits writing systems of the class
// or its subclasses only
func WithWritingSystemClass(class schema.ClassID) Option {
	return func(o *options) { o.wsClass = &class }
}
