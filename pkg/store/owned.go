/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"fmt"

	"github.com/voedger/objstore/pkg/schema"
)

// Creates object of class owned by owner field and returns its ID.
//
// Position is PositionAtomic for owning atomic fields, PositionAppend for owning collections and
// sequences, or index to insert into owning sequence. New object gets Class, generated Guid, Owner,
// OwnFlid and OwnOrd.
//
// Returns ErrInvalidDestination if class is not assignable to field.
func (s *Store) CreateOwned(class schema.ClassID, owner ObjectID, field schema.FieldID, position int) (ObjectID, error) {
	kind, known := s.reg.FieldKind(field)
	if !known {
		return NullObjectID, fmt.Errorf(errUnknownFieldID, field, ErrUnknownField)
	}
	if !kind.IsOwning() {
		return NullObjectID, fmt.Errorf(errNotOwningField, s.reg.FieldName(field), kind, ErrTypeMismatch)
	}
	if !s.IsValidObject(owner) {
		return NullObjectID, fmt.Errorf(errCreateOwnerInvalid, owner, ErrInvalidReference)
	}
	if s.strict {
		if err := s.validObject(owner, field); err != nil {
			return NullObjectID, err
		}
	}
	if !s.reg.IsClass(class) {
		return NullObjectID, fmt.Errorf(errCreateUnknownClass, class, ErrInvalidReference)
	}
	if !s.reg.IsAssignable(field, class) {
		return NullObjectID, fmt.Errorf(errCreateNotAssignable, class, s.reg.FieldName(field), ErrInvalidDestination)
	}

	switch {
	case kind.IsAtomic():
		if position != PositionAtomic {
			return NullObjectID, fmt.Errorf(errPositionMismatch, position, s.reg.FieldName(field), kind, ErrTypeMismatch)
		}
	case kind.IsSequence():
		if position == PositionAppend {
			break
		}
		if position < 0 {
			return NullObjectID, fmt.Errorf(errPositionMismatch, position, s.reg.FieldName(field), kind, ErrTypeMismatch)
		}
		if l := len(s.segs.vectors[propKey{owner, field}]); position > l {
			return NullObjectID, fmt.Errorf(errPositionRange, position, s.reg.FieldName(field), l, ErrOutOfRange)
		}
	default:
		if position != PositionAppend {
			return NullObjectID, fmt.Errorf(errPositionMismatch, position, s.reg.FieldName(field), kind, ErrTypeMismatch)
		}
	}

	obj := s.Allocate()
	if err := s.stamp(obj, class, owner, field); err != nil {
		return NullObjectID, err
	}

	if kind.IsAtomic() {
		s.setOwnedAtomic(owner, field, obj)
		return obj, nil
	}

	if position == PositionAppend {
		position = len(s.segs.vectors[propKey{owner, field}])
	}
	s.splice(owner, field, kind, position, position, []ObjectID{obj})
	return obj, nil
}

// Sets bookkeeping fields of new owned object
func (s *Store) stamp(obj ObjectID, class schema.ClassID, owner ObjectID, field schema.FieldID) error {
	if err := s.put(obj, schema.Field_Class, schema.Kind_Integer, true, Int(class)); err != nil {
		return err
	}
	if err := s.put(obj, schema.Field_Guid, schema.Kind_Guid, true, Guid(s.newGuid())); err != nil {
		return err
	}
	s.segs.refs[propKey{obj, schema.Field_Owner}] = owner
	s.segs.ints[propKey{obj, schema.Field_OwnFlid}] = int32(field)
	s.segs.ints[propKey{obj, schema.Field_OwnOrd}] = 0
	return nil
}

// Stores value of owning field and stamps ownership of objects set
func (s *Store) putOwning(obj ObjectID, field schema.FieldID, kind schema.Kind, v Value) {
	switch v := v.(type) {
	case Ref:
		s.setOwnedAtomic(obj, field, ObjectID(v))
	case Refs:
		s.splice(obj, field, kind, 0, len(s.segs.vectors[propKey{obj, field}]), v)
	}
}

func (s *Store) setOwnedAtomic(owner ObjectID, field schema.FieldID, obj ObjectID) {
	k := propKey{owner, field}
	if s.mixed {
		s.segs.delOthers(k, Variant_Ref)
	}
	s.segs.refs[k] = obj
	if obj == NullObjectID {
		return
	}
	s.segs.refs[propKey{obj, schema.Field_Owner}] = owner
	s.segs.ints[propKey{obj, schema.Field_OwnFlid}] = int32(field)
	s.segs.ints[propKey{obj, schema.Field_OwnOrd}] = 0
}
