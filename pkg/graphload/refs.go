/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objstore/pkg/store"
)

// Resolves deferred references in the order they were met.
//
// Atomic reference to unknown guid is set to NullObjectID. Unknown guids are omitted from vectors.
func (ld *load) resolveRefs() error {
	for _, r := range ld.atomic {
		target := store.NullObjectID
		if obj, ok := ld.target(r, r.targets[0]); ok {
			target = obj
			ld.stats.AtomicRefs++
		}
		if err := ld.st.SetRef(r.obj, r.field, target); err != nil {
			return ld.failRef(r, err)
		}
	}

	for _, r := range ld.vectors {
		resolved := make([]store.ObjectID, 0, len(r.targets))
		for _, g := range r.targets {
			if obj, ok := ld.target(r, g); ok {
				resolved = append(resolved, obj)
			}
		}
		if err := ld.st.SetRefs(r.obj, r.field, resolved); err != nil {
			return ld.failRef(r, err)
		}
		ld.stats.VectorRefs += len(resolved)
	}

	if ld.stats.Dangling > 0 {
		logger.Warning(fmt.Sprintf("%d reference(s) to unknown objects omitted", ld.stats.Dangling))
	}
	return nil
}

func (ld *load) target(r deferredRef, g uuid.UUID) (store.ObjectID, bool) {
	if obj, ok := ld.st.ObjectByGuid(g); ok {
		return obj, true
	}
	ld.stats.Dangling++
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("line %d: %v field «%s» refers unknown object %v", r.line, r.obj, ld.reg.FieldName(r.field), g))
	}
	return store.NullObjectID, false
}

func (ld *load) failRef(r deferredRef, err error) error {
	return &LoadError{Stage: ld.stage, Field: ld.reg.FieldName(r.field), Line: r.line, Err: err}
}
