/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/tsstrings"
)

func TestStore_Virtual(t *testing.T) {
	require := require.New(t)

	reg := testRegistry(t)
	const (
		fldHeadword schema.FieldID = 5002901
		fldCount    schema.FieldID = 5002902
		fldLabel    schema.FieldID = 5002903
		fldBroken   schema.FieldID = 5002904
	)
	require.NoError(reg.RegisterVirtualField("LexEntry", "Headword", fldHeadword, schema.Kind_Unicode))
	require.NoError(reg.RegisterVirtualField("LexEntry", "SenseCount", fldCount, schema.Kind_Integer))
	require.NoError(reg.RegisterVirtualField("LexEntry", "Label", fldLabel, schema.Kind_MultiUnicode))
	require.NoError(reg.RegisterVirtualField("LexEntry", "Broken", fldBroken, schema.Kind_Integer))

	s := New(reg)
	e := newObject(t, s, clsEntry)
	require.NoError(s.SetUnicode(e, fldForm, "house"))

	headwordCalls := 0
	require.NoError(s.RegisterVirtual(fldHeadword, func(obj ObjectID, _ schema.FieldID, _ tsstrings.WS) (Value, error) {
		headwordCalls++
		form, err := s.Unicode(obj, fldForm)
		return Unicode(form + "1"), err
	}, false))

	countCalls := 0
	require.NoError(s.RegisterVirtual(fldCount, func(obj ObjectID, _ schema.FieldID, _ tsstrings.WS) (Value, error) {
		countCalls++
		v, _ := s.Refs(obj, fldSenses)
		return Int(len(v)), nil
	}, true))

	require.NoError(s.RegisterVirtual(fldLabel, func(obj ObjectID, _ schema.FieldID, ws tsstrings.WS) (Value, error) {
		return Text{tsstrings.FromString("label", ws)}, nil
	}, false))

	require.NoError(s.RegisterVirtual(fldBroken, func(ObjectID, schema.FieldID, tsstrings.WS) (Value, error) {
		return nil, errors.New("boom")
	}, false))

	t.Run("computed value is cached", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			v, err := s.Unicode(e, fldHeadword)
			require.NoError(err)
			require.Equal("house1", v)
		}
		require.Equal(1, headwordCalls)
		require.True(s.Has(e, fldHeadword))
	})

	t.Run("computed value is discarded after every read", func(t *testing.T) {
		v, err := s.Int(e, fldCount)
		require.NoError(err)
		require.EqualValues(0, v)

		_, err = s.CreateOwned(clsSense, e, fldSenses, PositionAppend)
		require.NoError(err)

		v, err = s.Int(e, fldCount)
		require.NoError(err)
		require.EqualValues(1, v)
		require.Equal(2, countCalls)
		require.False(s.Has(e, fldCount))
	})

	t.Run("try get does not compute", func(t *testing.T) {
		_, ok := s.TryGet(e, fldCount)
		require.False(ok)
		require.Equal(2, countCalls)
	})

	t.Run("multi-string virtual field", func(t *testing.T) {
		v, err := s.MultiString(e, fldLabel, 7)
		require.NoError(err)
		require.Equal(tsstrings.WS(7), v.WS())
		require.Len(s.Alternatives(e, fldLabel), 1)
	})

	t.Run("hook error", func(t *testing.T) {
		_, err := s.Get(e, fldBroken)
		require.ErrorContains(err, "boom")
	})

	t.Run("registration errors", func(t *testing.T) {
		err := s.RegisterVirtual(fldHeadword, func(ObjectID, schema.FieldID, tsstrings.WS) (Value, error) { return nil, nil }, true)
		require.ErrorIs(err, ErrVirtualRedefined)
		err = s.RegisterVirtual(fldUnknownFld, func(ObjectID, schema.FieldID, tsstrings.WS) (Value, error) { return nil, nil }, true)
		require.ErrorIs(err, ErrUnknownField)
	})
}
