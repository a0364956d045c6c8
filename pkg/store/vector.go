/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"fmt"

	"github.com/voedger/objstore/pkg/schema"
)

// Replaces half-open range [start, end) of vector field by items.
//
// For owning vectors inserted items get Owner and OwnFlid of the vector. For owning sequences every item
// from start to the new end gets OwnOrd equal to its new index. Removed items are not changed.
//
// If strict mode is on, items must be valid objects assignable to field. Items inserted into
// owning vector must not be owned by other object or field, and must not stay in the vector
// outside the replaced range.
func (s *Store) Replace(obj ObjectID, field schema.FieldID, start, end int, items []ObjectID) error {
	kind, known := s.reg.FieldKind(field)
	if !known {
		return fmt.Errorf(errUnknownFieldID, field, ErrUnknownField)
	}
	if !kind.IsVector() {
		return fmt.Errorf(errNotVectorField, obj, s.reg.FieldName(field), kind, ErrTypeMismatch)
	}

	cur := s.segs.vectors[propKey{obj, field}]
	if start < 0 || end < start || end > len(cur) {
		return fmt.Errorf(errReplaceRange, obj, s.reg.FieldName(field), start, end, len(cur), ErrOutOfRange)
	}

	if s.strict {
		if err := s.validObject(obj, field); err != nil {
			return err
		}
		for _, id := range items {
			if err := s.validRef(obj, field, id); err != nil {
				return err
			}
		}
		if kind.IsOwning() {
			if err := s.validOwnedItems(obj, field, start, end, items); err != nil {
				return err
			}
		}
	}

	s.splice(obj, field, kind, start, end, items)
	return nil
}

// Replaces range of vector without validation. Range must be checked by caller
func (s *Store) splice(obj ObjectID, field schema.FieldID, kind schema.Kind, start, end int, items []ObjectID) {
	k := propKey{obj, field}
	cur := s.segs.vectors[k]

	next := make([]ObjectID, 0, len(cur)-(end-start)+len(items))
	next = append(next, cur[:start]...)
	next = append(next, items...)
	next = append(next, cur[end:]...)

	if s.mixed {
		s.segs.delOthers(k, Variant_Refs)
	}
	s.segs.vectors[k] = next

	if !kind.IsOwning() {
		return
	}
	for _, id := range items {
		s.segs.refs[propKey{id, schema.Field_Owner}] = obj
		s.segs.ints[propKey{id, schema.Field_OwnFlid}] = int32(field)
	}
	if kind.IsSequence() {
		for i := start; i < len(next); i++ {
			s.segs.ints[propKey{next[i], schema.Field_OwnOrd}] = int32(i)
		}
	}
}
