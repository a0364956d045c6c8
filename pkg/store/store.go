/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/tsstrings"
)

// Typed property store.
//
// Store keeps per-object field values in type-segregated maps and validates them against
// schema registry while strict mode is on.
//
// Store is not safe for concurrent use. If it is shared between goroutines, callers must
// synchronize access.
type Store struct {
	reg     schema.IRegistry
	strict  bool
	ids     *idGenerator
	newGuid func() uuid.UUID
	wsClass *schema.ClassID

	segs    segments
	multi   map[propKey]map[tsstrings.WS]tsstrings.ITsString
	byGuid  map[uuid.UUID]ObjectID
	objects int

	// some value is stored in segment other than declared by field kind
	mixed bool

	virtual map[schema.FieldID]virtualHook
}

func newStore(reg schema.IRegistry, o options) *Store {
	s := &Store{
		reg:     reg,
		strict:  true,
		ids:     newIDGenerator(o.onNewID),
		newGuid: o.newGuid,
		wsClass: o.wsClass,
		virtual: make(map[schema.FieldID]virtualHook),
	}
	s.clear()
	return s
}

func (s *Store) clear() {
	s.segs = newSegments()
	s.multi = make(map[propKey]map[tsstrings.WS]tsstrings.ITsString)
	s.byGuid = make(map[uuid.UUID]ObjectID)
	s.objects = 0
	s.mixed = false
}

// Returns registry the store is bound to
func (s *Store) Registry() schema.IRegistry { return s.reg }

// Returns is validation on
func (s *Store) Strict() bool { return s.strict }

// Turns validation on or off. Returns previous mode
func (s *Store) SetStrict(strict bool) (old bool) {
	old, s.strict = s.strict, strict
	return old
}

// Turns validation off and returns function which restores previous mode.
//
//	defer s.SuspendValidation()()
func (s *Store) SuspendValidation() (restore func()) {
	old := s.SetStrict(false)
	return func() { s.SetStrict(old) }
}

// Allocates new object ID. Object fields are not initialized
func (s *Store) Allocate() ObjectID {
	return s.ids.NextID()
}

// Discards all objects and values. Allocated IDs are never reused, virtual field hooks are kept
func (s *Store) ClearAll() {
	s.clear()
}

// Sets field value.
//
// If strict mode is on value is validated, see validate. Guid uniqueness and immutability
// are checked in both modes.
//
// Objects set into owning field get Owner and OwnFlid of the field, items of owning sequence
// get OwnOrd equal to their index. Objects removed from owning field are not changed.
func (s *Store) Set(obj ObjectID, field schema.FieldID, v Value) error {
	kind, known := s.reg.FieldKind(field)
	if v == nil {
		return fmt.Errorf(errWrongVariant, obj, s.reg.FieldName(field), kind, Variant_null, ErrTypeMismatch)
	}
	if s.strict {
		if err := s.validate(obj, field, kind, known, v); err != nil {
			return err
		}
	}
	if known && kind.IsOwning() && VariantOf(kind) == v.Variant() {
		s.putOwning(obj, field, kind, v)
		return nil
	}
	return s.put(obj, field, kind, known, v)
}

func (s *Store) put(obj ObjectID, field schema.FieldID, kind schema.Kind, known bool, v Value) error {
	k := propKey{obj, field}

	switch field {
	case schema.Field_Guid:
		if g, ok := v.(Guid); ok {
			if err := s.indexGuid(obj, uuid.UUID(g)); err != nil {
				return err
			}
		}
	case schema.Field_Class:
		if _, ok := v.(Int); ok && !s.segs.has(k, Variant_Int) {
			s.objects++
		}
	}

	if !known || VariantOf(kind) != v.Variant() {
		s.mixed = true
	}
	if s.mixed {
		s.segs.delOthers(k, v.Variant())
	}
	s.segs.put(k, v)
	return nil
}

// Returns field value.
//
// If value is absent and virtual field hook is registered, value is computed by hook.
// Otherwise ErrNotFound is returned.
func (s *Store) Get(obj ObjectID, field schema.FieldID) (Value, error) {
	kind, known := s.reg.FieldKind(field)
	if known && kind.IsMulti() {
		return nil, fmt.Errorf(errMultiOnly, obj, s.reg.FieldName(field), kind, ErrTypeMismatch)
	}
	if v, ok := s.lookup(obj, field, kind, known); ok {
		return v, nil
	}
	if hook, ok := s.virtual[field]; ok {
		return s.computeVirtual(obj, field, 0, hook)
	}
	return nil, fmt.Errorf(errValueNotFound, obj, s.reg.FieldName(field), ErrNotFound)
}

// Returns stored field value. Virtual field hooks are not called
func (s *Store) TryGet(obj ObjectID, field schema.FieldID) (Value, bool) {
	kind, known := s.reg.FieldKind(field)
	if known && kind.IsMulti() {
		return nil, false
	}
	return s.lookup(obj, field, kind, known)
}

// Returns is field value stored. For multi-string fields returns is any alternative stored
func (s *Store) Has(obj ObjectID, field schema.FieldID) bool {
	kind, known := s.reg.FieldKind(field)
	k := propKey{obj, field}
	if known && kind.IsMulti() {
		return len(s.multi[k]) > 0
	}
	if known && s.segs.has(k, VariantOf(kind)) {
		return true
	}
	_, ok := s.segs.probe(k)
	return ok
}

func (s *Store) lookup(obj ObjectID, field schema.FieldID, kind schema.Kind, known bool) (Value, bool) {
	k := propKey{obj, field}
	if known {
		if v, ok := s.segs.get(k, VariantOf(kind)); ok {
			return v, true
		}
		if !s.mixed {
			return nil, false
		}
	}
	return s.segs.probe(k)
}

// Returns is object valid: its class is set
func (s *Store) IsValidObject(obj ObjectID) bool {
	_, ok := s.ClassOf(obj)
	return ok
}

// Returns object class
func (s *Store) ClassOf(obj ObjectID) (schema.ClassID, bool) {
	c, ok := s.segs.ints[propKey{obj, schema.Field_Class}]
	return schema.ClassID(c), ok
}

// Returns object owner and owning field. Returns false if object is not owned
func (s *Store) OwnerOf(obj ObjectID) (owner ObjectID, field schema.FieldID, ok bool) {
	owner, ok = s.segs.refs[propKey{obj, schema.Field_Owner}]
	if !ok || owner == NullObjectID {
		return NullObjectID, schema.NullFieldID, false
	}
	flid := s.segs.ints[propKey{obj, schema.Field_OwnFlid}]
	return owner, schema.FieldID(flid), true
}

// Returns count of valid objects
func (s *Store) ObjectCount() int { return s.objects }

// Enumerates valid objects in ascending ID order
func (s *Store) Objects(cb func(ObjectID)) {
	ids := make([]ObjectID, 0, s.objects)
	for k := range s.segs.ints {
		if k.field == schema.Field_Class {
			ids = append(ids, k.obj)
		}
	}
	slices.Sort(ids)
	for _, id := range ids {
		cb(id)
	}
}

// Enumerates values stored for object, multi-string alternatives excluded
func (s *Store) Values(obj ObjectID, cb func(schema.FieldID, Value)) {
	type fv struct {
		field schema.FieldID
		value Value
	}
	var values []fv
	s.segs.fieldsOf(obj, func(k propKey, v Value) {
		values = append(values, fv{k.field, v})
	})
	sort.Slice(values, func(i, j int) bool { return values[i].field < values[j].field })
	for _, v := range values {
		cb(v.field, v.value)
	}
}
