/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/store"
)

// Load result
type Result struct {
	Registry *schema.Registry
	Store    *store.Store

	// Designated root object. NullObjectID if document has no root object
	Root store.ObjectID

	Stats Stats
}

// Load statistics
type Stats struct {
	Objects        int
	WritingSystems int
	CustomFields   int
	AtomicRefs     int
	VectorRefs     int

	// References to unknown guids, omitted from loaded values
	Dangling int
}

func (s Stats) String() string {
	return fmt.Sprintf("objects: %d, writing systems: %d, custom fields: %d, atomic refs: %d, vector refs: %d, dangling: %d",
		s.Objects, s.WritingSystems, s.CustomFields, s.AtomicRefs, s.VectorRefs, s.Dangling)
}

// Reference deferred until tree is built
type deferredRef struct {
	obj     store.ObjectID
	field   schema.FieldID
	targets []uuid.UUID
	line    int
}

type fieldKey struct {
	class schema.ClassID
	stem  string
}
