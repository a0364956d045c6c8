/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"fmt"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/tsstrings"
)

// Registers hook, which computes value of field when it is read and no value is stored.
//
// If recomputeEveryRead then computed value is discarded after read, so hook is called on every read.
// Otherwise computed value is stored and hook is not called for the object again.
//
// Field must be known by registry. Hook of field can be registered once.
func (s *Store) RegisterVirtual(field schema.FieldID, compute VirtualFunc, recomputeEveryRead bool) error {
	if _, ok := s.reg.FieldKind(field); !ok {
		return fmt.Errorf(errUnknownFieldID, field, ErrUnknownField)
	}
	if _, ok := s.virtual[field]; ok {
		return fmt.Errorf(errVirtualHookRegistered, s.reg.FieldName(field), ErrVirtualRedefined)
	}
	s.virtual[field] = virtualHook{compute, recomputeEveryRead}
	return nil
}

func (s *Store) computeVirtual(obj ObjectID, field schema.FieldID, ws tsstrings.WS, hook virtualHook) (Value, error) {
	v, err := hook.compute(obj, field, ws)
	if err != nil {
		return nil, fmt.Errorf(errVirtualFieldCompute, obj, s.reg.FieldName(field), err)
	}
	if v == nil {
		return nil, fmt.Errorf(errValueNotFound, obj, s.reg.FieldName(field), ErrNotFound)
	}

	kind, _ := s.reg.FieldKind(field)
	if VariantOf(kind) != v.Variant() {
		return nil, fmt.Errorf(errWrongVariant, obj, s.reg.FieldName(field), kind, v.Variant(), ErrTypeMismatch)
	}

	if !hook.recomputeEveryRead {
		if kind.IsMulti() {
			k := propKey{obj, field}
			if s.multi[k] == nil {
				s.multi[k] = make(map[tsstrings.WS]tsstrings.ITsString)
			}
			s.multi[k][ws] = v.(Text).ITsString
		} else {
			s.segs.put(propKey{obj, field}, v)
		}
	}
	return v, nil
}
