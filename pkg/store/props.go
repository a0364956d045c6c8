/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/tsstrings"
)

func (s *Store) SetBool(obj ObjectID, field schema.FieldID, v bool) error {
	return s.Set(obj, field, Bool(v))
}

func (s *Store) SetInt(obj ObjectID, field schema.FieldID, v int32) error {
	return s.Set(obj, field, Int(v))
}

func (s *Store) SetInt64(obj ObjectID, field schema.FieldID, v int64) error {
	return s.Set(obj, field, Int64(v))
}

// Sets Time field. Time is stored as Unix milliseconds
func (s *Store) SetTime(obj ObjectID, field schema.FieldID, v time.Time) error {
	return s.Set(obj, field, Int64(v.UnixMilli()))
}

func (s *Store) SetFloat(obj ObjectID, field schema.FieldID, v float64) error {
	return s.Set(obj, field, Float(v))
}

func (s *Store) SetGuid(obj ObjectID, field schema.FieldID, v uuid.UUID) error {
	return s.Set(obj, field, Guid(v))
}

func (s *Store) SetBinary(obj ObjectID, field schema.FieldID, v []byte) error {
	return s.Set(obj, field, Binary(v))
}

func (s *Store) SetUnicode(obj ObjectID, field schema.FieldID, v string) error {
	return s.Set(obj, field, Unicode(v))
}

func (s *Store) SetText(obj ObjectID, field schema.FieldID, v tsstrings.ITsString) error {
	return s.Set(obj, field, Text{v})
}

func (s *Store) SetRef(obj ObjectID, field schema.FieldID, v ObjectID) error {
	return s.Set(obj, field, Ref(v))
}

func (s *Store) SetRefs(obj ObjectID, field schema.FieldID, v []ObjectID) error {
	return s.Set(obj, field, Refs(v))
}

func (s *Store) Bool(obj ObjectID, field schema.FieldID) (bool, error) {
	v, err := getAs[Bool](s, obj, field)
	return bool(v), err
}

func (s *Store) Int(obj ObjectID, field schema.FieldID) (int32, error) {
	v, err := getAs[Int](s, obj, field)
	return int32(v), err
}

func (s *Store) Int64(obj ObjectID, field schema.FieldID) (int64, error) {
	v, err := getAs[Int64](s, obj, field)
	return int64(v), err
}

// Returns Time field value, stored as Unix milliseconds
func (s *Store) Time(obj ObjectID, field schema.FieldID) (time.Time, error) {
	v, err := getAs[Int64](s, obj, field)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(int64(v)).UTC(), nil
}

func (s *Store) Float(obj ObjectID, field schema.FieldID) (float64, error) {
	v, err := getAs[Float](s, obj, field)
	return float64(v), err
}

func (s *Store) Guid(obj ObjectID, field schema.FieldID) (uuid.UUID, error) {
	v, err := getAs[Guid](s, obj, field)
	return uuid.UUID(v), err
}

func (s *Store) Binary(obj ObjectID, field schema.FieldID) ([]byte, error) {
	v, err := getAs[Binary](s, obj, field)
	return []byte(v), err
}

func (s *Store) Unicode(obj ObjectID, field schema.FieldID) (string, error) {
	v, err := getAs[Unicode](s, obj, field)
	return string(v), err
}

func (s *Store) Text(obj ObjectID, field schema.FieldID) (tsstrings.ITsString, error) {
	v, err := getAs[Text](s, obj, field)
	return v.ITsString, err
}

// Returns atomic object field value. NullObjectID means no reference
func (s *Store) Ref(obj ObjectID, field schema.FieldID) (ObjectID, error) {
	v, err := getAs[Ref](s, obj, field)
	return ObjectID(v), err
}

// Returns copy of vector field value
func (s *Store) Refs(obj ObjectID, field schema.FieldID) ([]ObjectID, error) {
	v, err := getAs[Refs](s, obj, field)
	return []ObjectID(v), err
}

func getAs[T Value](s *Store, obj ObjectID, field schema.FieldID) (T, error) {
	var zero T
	v, err := s.Get(obj, field)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		kind, _ := s.reg.FieldKind(field)
		return zero, fmt.Errorf(errWrongVariant, obj, s.reg.FieldName(field), kind, v.Variant(), ErrTypeMismatch)
	}
	return t, nil
}
