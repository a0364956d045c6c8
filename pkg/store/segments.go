/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/voedger/objstore/pkg/tsstrings"
)

// Type-segregated value maps, one per variant
type segments struct {
	bools    map[propKey]bool
	ints     map[propKey]int32
	int64s   map[propKey]int64
	floats   map[propKey]float64
	guids    map[propKey]uuid.UUID
	binaries map[propKey][]byte
	unicodes map[propKey]string
	texts    map[propKey]tsstrings.ITsString
	refs     map[propKey]ObjectID
	vectors  map[propKey][]ObjectID
}

func newSegments() segments {
	return segments{
		bools:    make(map[propKey]bool),
		ints:     make(map[propKey]int32),
		int64s:   make(map[propKey]int64),
		floats:   make(map[propKey]float64),
		guids:    make(map[propKey]uuid.UUID),
		binaries: make(map[propKey][]byte),
		unicodes: make(map[propKey]string),
		texts:    make(map[propKey]tsstrings.ITsString),
		refs:     make(map[propKey]ObjectID),
		vectors:  make(map[propKey][]ObjectID),
	}
}

// Stores value. Slices are copied
func (s *segments) put(k propKey, v Value) {
	switch v := v.(type) {
	case Bool:
		s.bools[k] = bool(v)
	case Int:
		s.ints[k] = int32(v)
	case Int64:
		s.int64s[k] = int64(v)
	case Float:
		s.floats[k] = float64(v)
	case Guid:
		s.guids[k] = uuid.UUID(v)
	case Binary:
		s.binaries[k] = slices.Clone([]byte(v))
	case Unicode:
		s.unicodes[k] = string(v)
	case Text:
		s.texts[k] = v.ITsString
	case Ref:
		s.refs[k] = ObjectID(v)
	case Refs:
		s.vectors[k] = slices.Clone([]ObjectID(v))
	}
}

// Returns value from segment of specified variant. Slices are copied
func (s *segments) get(k propKey, vr Variant) (Value, bool) {
	switch vr {
	case Variant_Bool:
		v, ok := s.bools[k]
		return Bool(v), ok
	case Variant_Int:
		v, ok := s.ints[k]
		return Int(v), ok
	case Variant_Int64:
		v, ok := s.int64s[k]
		return Int64(v), ok
	case Variant_Float:
		v, ok := s.floats[k]
		return Float(v), ok
	case Variant_Guid:
		v, ok := s.guids[k]
		return Guid(v), ok
	case Variant_Binary:
		v, ok := s.binaries[k]
		return Binary(slices.Clone(v)), ok
	case Variant_Unicode:
		v, ok := s.unicodes[k]
		return Unicode(v), ok
	case Variant_Text:
		v, ok := s.texts[k]
		return Text{v}, ok
	case Variant_Ref:
		v, ok := s.refs[k]
		return Ref(v), ok
	case Variant_Refs:
		v, ok := s.vectors[k]
		return Refs(slices.Clone(v)), ok
	}
	return nil, false
}

// Returns value from the first segment which has it
func (s *segments) probe(k propKey) (Value, bool) {
	for vr := Variant_Bool; vr < Variant_count; vr++ {
		if v, ok := s.get(k, vr); ok {
			return v, true
		}
	}
	return nil, false
}

func (s *segments) has(k propKey, vr Variant) bool {
	switch vr {
	case Variant_Bool:
		_, ok := s.bools[k]
		return ok
	case Variant_Int:
		_, ok := s.ints[k]
		return ok
	case Variant_Int64:
		_, ok := s.int64s[k]
		return ok
	case Variant_Float:
		_, ok := s.floats[k]
		return ok
	case Variant_Guid:
		_, ok := s.guids[k]
		return ok
	case Variant_Binary:
		_, ok := s.binaries[k]
		return ok
	case Variant_Unicode:
		_, ok := s.unicodes[k]
		return ok
	case Variant_Text:
		_, ok := s.texts[k]
		return ok
	case Variant_Ref:
		_, ok := s.refs[k]
		return ok
	case Variant_Refs:
		_, ok := s.vectors[k]
		return ok
	}
	return false
}

func (s *segments) del(k propKey, vr Variant) {
	switch vr {
	case Variant_Bool:
		delete(s.bools, k)
	case Variant_Int:
		delete(s.ints, k)
	case Variant_Int64:
		delete(s.int64s, k)
	case Variant_Float:
		delete(s.floats, k)
	case Variant_Guid:
		delete(s.guids, k)
	case Variant_Binary:
		delete(s.binaries, k)
	case Variant_Unicode:
		delete(s.unicodes, k)
	case Variant_Text:
		delete(s.texts, k)
	case Variant_Ref:
		delete(s.refs, k)
	case Variant_Refs:
		delete(s.vectors, k)
	}
}

// Removes value of key from all segments except keep
func (s *segments) delOthers(k propKey, keep Variant) {
	for vr := Variant_Bool; vr < Variant_count; vr++ {
		if vr != keep {
			s.del(k, vr)
		}
	}
}

// Enumerates values stored for object, in variant order
func (s *segments) fieldsOf(obj ObjectID, cb func(propKey, Value)) {
	for vr := Variant_Bool; vr < Variant_count; vr++ {
		s.keys(vr, func(k propKey) {
			if k.obj == obj {
				v, _ := s.get(k, vr)
				cb(k, v)
			}
		})
	}
}

func (s *segments) keys(vr Variant, cb func(propKey)) {
	switch vr {
	case Variant_Bool:
		eachKey(s.bools, cb)
	case Variant_Int:
		eachKey(s.ints, cb)
	case Variant_Int64:
		eachKey(s.int64s, cb)
	case Variant_Float:
		eachKey(s.floats, cb)
	case Variant_Guid:
		eachKey(s.guids, cb)
	case Variant_Binary:
		eachKey(s.binaries, cb)
	case Variant_Unicode:
		eachKey(s.unicodes, cb)
	case Variant_Text:
		eachKey(s.texts, cb)
	case Variant_Ref:
		eachKey(s.refs, cb)
	case Variant_Refs:
		eachKey(s.vectors, cb)
	}
}

func eachKey[V any](m map[propKey]V, cb func(propKey)) {
	for k := range m {
		cb(k)
	}
}
