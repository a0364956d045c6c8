/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/tsstrings"
)

// Sets multi-string field alternative for writing system. Nil string removes alternative.
//
// If strict mode is on, field must be of multi-string kind and writing system must be valid object
// of writing system class, see WithWritingSystemClass.
func (s *Store) SetMultiString(obj ObjectID, field schema.FieldID, ws tsstrings.WS, v tsstrings.ITsString) error {
	if s.strict {
		kind, known := s.reg.FieldKind(field)
		if !known {
			return fmt.Errorf(errUnknownFieldID, field, ErrUnknownField)
		}
		if err := s.validObject(obj, field); err != nil {
			return err
		}
		if !kind.IsMulti() {
			return fmt.Errorf(errNotMultiField, obj, s.reg.FieldName(field), kind, ErrTypeMismatch)
		}
		wsClass, ok := s.ClassOf(ObjectID(ws))
		if !ok {
			return fmt.Errorf(errInvalidWS, obj, s.reg.FieldName(field), ObjectID(ws), ErrInvalidReference)
		}
		if s.wsClass != nil && !s.reg.InheritsFrom(wsClass, *s.wsClass) {
			return fmt.Errorf(errNotWSClass, obj, s.reg.FieldName(field), ObjectID(ws), wsClass, ErrInvalidReference)
		}
	}

	k := propKey{obj, field}
	alts := s.multi[k]
	if v == nil {
		delete(alts, ws)
		if len(alts) == 0 {
			delete(s.multi, k)
		}
		return nil
	}
	if alts == nil {
		alts = make(map[tsstrings.WS]tsstrings.ITsString)
		s.multi[k] = alts
	}
	alts[ws] = v
	return nil
}

// Returns multi-string field alternative for writing system.
//
// If alternative is absent and virtual field hook is registered, alternative is computed by hook.
// Otherwise ErrNotFound is returned.
func (s *Store) MultiString(obj ObjectID, field schema.FieldID, ws tsstrings.WS) (tsstrings.ITsString, error) {
	kind, known := s.reg.FieldKind(field)
	if known && !kind.IsMulti() {
		return nil, fmt.Errorf(errNotMultiField, obj, s.reg.FieldName(field), kind, ErrTypeMismatch)
	}
	if v, ok := s.multi[propKey{obj, field}][ws]; ok {
		return v, nil
	}
	if hook, ok := s.virtual[field]; ok {
		v, err := s.computeVirtual(obj, field, ws, hook)
		if err != nil {
			return nil, err
		}
		t, ok := v.(Text)
		if !ok {
			return nil, fmt.Errorf(errWrongVariant, obj, s.reg.FieldName(field), kind, v.Variant(), ErrTypeMismatch)
		}
		return t.ITsString, nil
	}
	return nil, fmt.Errorf(errValueNotFound, obj, s.reg.FieldName(field), ErrNotFound)
}

// Returns copy of all stored alternatives of multi-string field
func (s *Store) Alternatives(obj ObjectID, field schema.FieldID) map[tsstrings.WS]tsstrings.ITsString {
	return maps.Clone(s.multi[propKey{obj, field}])
}
