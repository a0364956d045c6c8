/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/voedger/objstore/pkg/schema"
)

// Adds guid to reverse index. Guid of object can be set once
func (s *Store) indexGuid(obj ObjectID, g uuid.UUID) error {
	if cur, ok := s.segs.guids[propKey{obj, schema.Field_Guid}]; ok {
		return fmt.Errorf(errGuidChange, obj, cur, g, ErrGuidImmutable)
	}
	if other, ok := s.byGuid[g]; ok && other != obj {
		return fmt.Errorf(errGuidUsed, obj, g, other, ErrDuplicateGuid)
	}
	s.byGuid[g] = obj
	return nil
}

// Returns object by its guid
func (s *Store) ObjectByGuid(g uuid.UUID) (ObjectID, bool) {
	obj, ok := s.byGuid[g]
	return obj, ok
}

// Returns object guid
func (s *Store) GuidOf(obj ObjectID) (uuid.UUID, bool) {
	g, ok := s.segs.guids[propKey{obj, schema.Field_Guid}]
	return g, ok
}
