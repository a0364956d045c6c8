/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"fmt"

	"github.com/voedger/objstore/pkg/schema"
)

// Validates value to be set into object field.
//
// Checks, in order:
//   - field is known by registry,
//   - object has Class and Guid set (except when Class or Guid is set) and its class declares or inherits the field,
//   - value variant matches field kind,
//   - referenced objects are valid and assignable to object-valued field, zero is admitted for atomic fields,
//   - objects set into owning field are not owned by other object or field and are listed once,
//   - Class value is registered class,
//   - Owner and OwnFlid are consistent.
func (s *Store) validate(obj ObjectID, field schema.FieldID, kind schema.Kind, known bool, v Value) error {
	if !known {
		return fmt.Errorf(errUnknownFieldID, field, ErrUnknownField)
	}

	if field != schema.Field_Class && field != schema.Field_Guid {
		if err := s.validObject(obj, field); err != nil {
			return err
		}
	}

	if kind.IsMulti() {
		return fmt.Errorf(errMultiOnly, obj, s.reg.FieldName(field), kind, ErrTypeMismatch)
	}
	if VariantOf(kind) != v.Variant() {
		return fmt.Errorf(errWrongVariant, obj, s.reg.FieldName(field), kind, v.Variant(), ErrTypeMismatch)
	}

	switch v := v.(type) {
	case Ref:
		if v != Ref(NullObjectID) {
			if err := s.validRef(obj, field, ObjectID(v)); err != nil {
				return err
			}
		}
	case Refs:
		for _, id := range v {
			if err := s.validRef(obj, field, id); err != nil {
				return err
			}
		}
	case Int:
		if field == schema.Field_Class && !s.reg.IsClass(schema.ClassID(v)) {
			return fmt.Errorf(errUnknownClass, obj, int32(v), ErrInvalidReference)
		}
	}

	if kind.IsOwning() {
		if err := s.validOwning(obj, field, v); err != nil {
			return err
		}
	}

	switch field {
	case schema.Field_Owner, schema.Field_OwnFlid:
		return s.validOwnership(obj, field, v)
	}

	return nil
}

// Checks value of owning field, whole current content is replaced
func (s *Store) validOwning(obj ObjectID, field schema.FieldID, v Value) error {
	switch v := v.(type) {
	case Ref:
		if v == Ref(NullObjectID) {
			return nil
		}
		return s.validOwnedItems(obj, field, 0, 0, []ObjectID{ObjectID(v)})
	case Refs:
		return s.validOwnedItems(obj, field, 0, len(s.segs.vectors[propKey{obj, field}]), v)
	}
	return nil
}

// Checks items to replace range [start, end) of owning field: every item is not owned by other object
// or field, and occurs once in the field after replacement
func (s *Store) validOwnedItems(obj ObjectID, field schema.FieldID, start, end int, items []ObjectID) error {
	cur := s.segs.vectors[propKey{obj, field}]
	kept := make(map[ObjectID]bool, len(cur)-(end-start)+len(items))
	for _, id := range cur[:start] {
		kept[id] = true
	}
	for _, id := range cur[end:] {
		kept[id] = true
	}
	for _, id := range items {
		if owner, flid, ok := s.OwnerOf(id); ok && (owner != obj || flid != field) {
			return fmt.Errorf(errOwnedElsewhere, id, owner, s.reg.FieldName(flid), ErrNotOwned)
		}
		if kept[id] {
			return fmt.Errorf(errOwnedTwice, id, obj, s.reg.FieldName(field), ErrNotOwned)
		}
		kept[id] = true
	}
	return nil
}

// Checks object has Class and Guid, and its class declares or inherits field
func (s *Store) validObject(obj ObjectID, field schema.FieldID) error {
	class, ok := s.ClassOf(obj)
	if !ok {
		return fmt.Errorf(errNoClass, obj, s.reg.FieldName(field), ErrInvalidReference)
	}
	if !s.segs.has(propKey{obj, schema.Field_Guid}, Variant_Guid) {
		return fmt.Errorf(errNoGuid, obj, s.reg.FieldName(field), ErrInvalidReference)
	}
	if fc, ok := s.reg.FieldClass(field); !ok || !s.reg.InheritsFrom(class, fc) {
		return fmt.Errorf(errFieldNotInClass, obj, class, s.reg.FieldName(field), ErrUnknownField)
	}
	return nil
}

// Checks target is valid object assignable to field
func (s *Store) validRef(obj ObjectID, field schema.FieldID, target ObjectID) error {
	class, ok := s.ClassOf(target)
	if !ok {
		return fmt.Errorf(errRefInvalidObject, obj, s.reg.FieldName(field), target, ErrInvalidReference)
	}
	if !s.reg.IsAssignable(field, class) {
		return fmt.Errorf(errRefNotAssignable, obj, s.reg.FieldName(field), target, class, ErrInvalidReference)
	}
	return nil
}

// Checks Owner and OwnFlid consistency, taking the value being set instead of stored one
func (s *Store) validOwnership(obj ObjectID, field schema.FieldID, v Value) error {
	owner, hasOwner := s.segs.refs[propKey{obj, schema.Field_Owner}]
	flid, hasFlid := s.segs.ints[propKey{obj, schema.Field_OwnFlid}]
	switch field {
	case schema.Field_Owner:
		owner, hasOwner = ObjectID(v.(Ref)), true
	case schema.Field_OwnFlid:
		flid, hasFlid = int32(v.(Int)), true
	}
	if !hasOwner || !hasFlid || owner == NullObjectID {
		return nil
	}
	return s.validOwned(obj, owner, schema.FieldID(flid))
}

// Checks owner field admits object
func (s *Store) validOwned(obj, owner ObjectID, flid schema.FieldID) error {
	ownerClass, ok := s.ClassOf(owner)
	if !ok {
		return fmt.Errorf(errOwnerInvalid, obj, owner, ErrNotOwned)
	}
	kind, ok := s.reg.FieldKind(flid)
	if !ok || !kind.IsOwning() {
		return fmt.Errorf(errOwnFlidNotOwning, obj, s.reg.FieldName(flid), kind, ErrNotOwned)
	}
	if fc, ok := s.reg.FieldClass(flid); !ok || !s.reg.InheritsFrom(ownerClass, fc) {
		return fmt.Errorf(errOwnFlidNotInClass, obj, owner, ownerClass, s.reg.FieldName(flid), ErrNotOwned)
	}
	class, _ := s.ClassOf(obj)
	if !s.reg.IsAssignable(flid, class) {
		return fmt.Errorf(errOwnFlidNotAssignable, obj, class, s.reg.FieldName(flid), ErrNotOwned)
	}
	return nil
}
