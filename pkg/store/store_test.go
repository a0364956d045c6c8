/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/tsstrings"
)

func TestStore_Allocate(t *testing.T) {
	require := require.New(t)

	var hooked []ObjectID
	s := testStore(t, WithAllocationHook(func(id ObjectID) { hooked = append(hooked, id) }))

	prev := NullObjectID
	for i := 0; i < 100; i++ {
		id := s.Allocate()
		require.Greater(id, prev)
		prev = id
	}
	require.Len(hooked, 100)
	require.Equal(FirstObjectID, hooked[0])

	obj := s.Allocate()
	require.False(s.IsValidObject(obj), "allocation must not initialize fields")
	require.Zero(s.ObjectCount())
}

func TestStore_SetGet(t *testing.T) {
	require := require.New(t)

	s := testStore(t)
	require.True(s.Strict())

	e := newObject(t, s, clsEntry)
	other := newObject(t, s, clsSubentry)

	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	source := uuid.New()

	require.NoError(s.SetUnicode(e, fldForm, "house"))
	require.NoError(s.SetInt(e, fldHomograph, 2))
	require.NoError(s.SetInt(e, fldDated, 20240301))
	require.NoError(s.SetBool(e, fldExcluded, true))
	require.NoError(s.SetText(e, fldComment, tsstrings.FromString("note", 1)))
	require.NoError(s.SetTime(e, fldCreated, created))
	require.NoError(s.SetInt64(e, fldFrequency, 1<<40))
	require.NoError(s.SetFloat(e, fldWeight, 0.5))
	require.NoError(s.SetBinary(e, fldPhoto, []byte{1, 2, 3}))
	require.NoError(s.SetGuid(e, fldSource, source))
	require.NoError(s.SetRef(e, fldMain, other))
	require.NoError(s.SetRefs(e, fldVariants, []ObjectID{other, e}))

	t.Run("typed readers", func(t *testing.T) {
		form, err := s.Unicode(e, fldForm)
		require.NoError(err)
		require.Equal("house", form)

		h, err := s.Int(e, fldHomograph)
		require.NoError(err)
		require.EqualValues(2, h)

		d, err := s.Int(e, fldDated)
		require.NoError(err)
		require.EqualValues(20240301, d)

		ex, err := s.Bool(e, fldExcluded)
		require.NoError(err)
		require.True(ex)

		c, err := s.Text(e, fldComment)
		require.NoError(err)
		require.Equal("note", c.Text())

		tm, err := s.Time(e, fldCreated)
		require.NoError(err)
		require.True(created.Equal(tm))

		f, err := s.Int64(e, fldFrequency)
		require.NoError(err)
		require.EqualValues(1<<40, f)

		w, err := s.Float(e, fldWeight)
		require.NoError(err)
		require.Equal(0.5, w)

		p, err := s.Binary(e, fldPhoto)
		require.NoError(err)
		require.Equal([]byte{1, 2, 3}, p)

		g, err := s.Guid(e, fldSource)
		require.NoError(err)
		require.Equal(source, g)

		m, err := s.Ref(e, fldMain)
		require.NoError(err)
		require.Equal(other, m)

		v, err := s.Refs(e, fldVariants)
		require.NoError(err)
		require.Equal([]ObjectID{other, e}, v)
	})

	t.Run("stored slices are copies", func(t *testing.T) {
		p, _ := s.Binary(e, fldPhoto)
		p[0] = 99
		p2, _ := s.Binary(e, fldPhoto)
		require.Equal(byte(1), p2[0])

		v, _ := s.Refs(e, fldVariants)
		v[0] = 0
		v2, _ := s.Refs(e, fldVariants)
		require.Equal(other, v2[0])
	})

	t.Run("generic get", func(t *testing.T) {
		v, err := s.Get(e, fldHomograph)
		require.NoError(err)
		require.Equal(Int(2), v)
		require.Equal(Variant_Int, v.Variant())

		v, ok := s.TryGet(e, fldForm)
		require.True(ok)
		require.Equal(Unicode("house"), v)
		require.True(s.Has(e, fldForm))
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := s.Get(other, fldForm)
		require.ErrorIs(err, ErrNotFound)
		require.ErrorIs(err, ErrStore)
		_, ok := s.TryGet(other, fldForm)
		require.False(ok)
		require.False(s.Has(other, fldForm))
	})

	t.Run("typed reader of other variant", func(t *testing.T) {
		_, err := s.Bool(e, fldForm)
		require.ErrorIs(err, ErrTypeMismatch)
	})

	t.Run("zero is no reference", func(t *testing.T) {
		require.NoError(s.SetRef(e, fldMain, NullObjectID))
		m, err := s.Ref(e, fldMain)
		require.NoError(err)
		require.Equal(NullObjectID, m)
	})

	t.Run("values enumeration", func(t *testing.T) {
		var fields []schema.FieldID
		s.Values(e, func(f schema.FieldID, _ Value) { fields = append(fields, f) })
		require.Len(fields, 14)
		require.Equal([]schema.FieldID{schema.Field_Guid, schema.Field_Class, fldForm}, fields[:3])
		require.Equal(fldDated, fields[13])
	})
}

func TestStore_StrictRejection(t *testing.T) {
	require := require.New(t)

	s := testStore(t)
	e := newObject(t, s, clsEntry)
	sense := newObject(t, s, clsSense)
	ws := newObject(t, s, clsWS)
	bare := s.Allocate()
	noGuid := s.Allocate()
	require.NoError(s.SetInt(noGuid, schema.Field_Class, int32(clsEntry)))

	tests := []struct {
		name  string
		obj   ObjectID
		field schema.FieldID
		value Value
		err   error
	}{
		{"wrong variant", e, fldHomograph, Unicode("2"), ErrTypeMismatch},
		{"nil value", e, fldHomograph, nil, ErrTypeMismatch},
		{"multi-string field by Set", e, fldCitation, Text{tsstrings.FromString("x", tsstrings.WS(ws))}, ErrTypeMismatch},
		{"not assignable atomic reference", e, fldMain, Ref(sense), ErrInvalidReference},
		{"not assignable vector item", e, fldVariants, Refs{e, sense}, ErrInvalidReference},
		{"reference to invalid object", e, fldMain, Ref(bare), ErrInvalidReference},
		{"zero item in vector", e, fldVariants, Refs{0}, ErrInvalidReference},
		{"unknown field", e, fldUnknownFld, Int(1), ErrUnknownField},
		{"field of other class", sense, fldForm, Unicode("x"), ErrUnknownField},
		{"object without class", bare, fldForm, Unicode("x"), ErrInvalidReference},
		{"object without guid", noGuid, fldForm, Unicode("x"), ErrInvalidReference},
		{"unregistered class", bare, schema.Field_Class, Int(777), ErrInvalidReference},
		{"owner field not owning", sense, schema.Field_OwnFlid, Int(int32(fldMain)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Set(tt.obj, tt.field, tt.value)
			if tt.err == nil {
				require.NoError(err)
				return
			}
			require.ErrorIs(err, tt.err)
			_, ok := s.TryGet(tt.obj, tt.field)
			require.False(ok, "rejected value must not be stored")
		})
	}

	t.Run("same operations succeed when not strict", func(t *testing.T) {
		restore := s.SuspendValidation()
		defer restore()

		for _, tt := range tests {
			if tt.value == nil || tt.field == fldCitation {
				continue
			}
			require.NoError(s.Set(tt.obj, tt.field, tt.value), tt.name)
			v, ok := s.TryGet(tt.obj, tt.field)
			require.True(ok, tt.name)
			require.Equal(tt.value, v, tt.name)
		}
	})
	require.True(s.Strict(), "validation mode must be restored")
}

func TestStore_Ownership(t *testing.T) {
	require := require.New(t)

	s := testStore(t)
	p := newObject(t, s, clsProject)
	e := newObject(t, s, clsEntry)
	sense := newObject(t, s, clsSense)

	t.Run("consistent owner", func(t *testing.T) {
		require.NoError(s.SetInt(e, schema.Field_OwnFlid, int32(fldEntries)))
		require.NoError(s.SetRef(e, schema.Field_Owner, p))
		owner, flid, ok := s.OwnerOf(e)
		require.True(ok)
		require.Equal(p, owner)
		require.Equal(fldEntries, flid)
	})

	t.Run("owning field does not admit class", func(t *testing.T) {
		require.NoError(s.SetInt(sense, schema.Field_OwnFlid, int32(fldEntries)))
		err := s.SetRef(sense, schema.Field_Owner, p)
		require.ErrorIs(err, ErrNotOwned)
	})

	t.Run("owning field is not declared by owner class", func(t *testing.T) {
		require.NoError(s.SetInt(sense, schema.Field_OwnFlid, int32(fldSenses)))
		err := s.SetRef(sense, schema.Field_Owner, p)
		require.ErrorIs(err, ErrNotOwned)
	})

	t.Run("owner field is not owning", func(t *testing.T) {
		require.NoError(s.SetRef(sense, schema.Field_Owner, NullObjectID))
		require.NoError(s.SetInt(sense, schema.Field_OwnFlid, int32(fldMain)))
		err := s.SetRef(sense, schema.Field_Owner, e)
		require.ErrorIs(err, ErrNotOwned)
	})

	t.Run("changing OwnFlid is checked against owner", func(t *testing.T) {
		err := s.SetInt(e, schema.Field_OwnFlid, int32(fldWSs))
		require.ErrorIs(err, ErrNotOwned)
	})
}

func TestStore_Guid(t *testing.T) {
	require := require.New(t)

	s := testStore(t)
	g := uuid.New()
	obj := s.Allocate()
	require.NoError(s.SetInt(obj, schema.Field_Class, int32(clsEntry)))
	require.NoError(s.SetGuid(obj, schema.Field_Guid, g))

	found, ok := s.ObjectByGuid(g)
	require.True(ok)
	require.Equal(obj, found)

	got, ok := s.GuidOf(obj)
	require.True(ok)
	require.Equal(g, got)

	t.Run("same guid again", func(t *testing.T) {
		require.ErrorIs(s.SetGuid(obj, schema.Field_Guid, g), ErrGuidImmutable)
		found, ok := s.ObjectByGuid(g)
		require.True(ok)
		require.Equal(obj, found)
	})

	t.Run("guid is immutable in both modes", func(t *testing.T) {
		require.ErrorIs(s.SetGuid(obj, schema.Field_Guid, uuid.New()), ErrGuidImmutable)
		defer s.SuspendValidation()()
		require.ErrorIs(s.SetGuid(obj, schema.Field_Guid, uuid.New()), ErrGuidImmutable)
	})

	t.Run("guid is unique", func(t *testing.T) {
		other := s.Allocate()
		require.ErrorIs(s.SetGuid(other, schema.Field_Guid, g), ErrDuplicateGuid)
		_, ok := s.GuidOf(other)
		require.False(ok)
	})

	t.Run("unknown guid", func(t *testing.T) {
		_, ok := s.ObjectByGuid(uuid.New())
		require.False(ok)
	})
}

func TestStore_MultiString(t *testing.T) {
	require := require.New(t)

	s := testStore(t)
	e := newObject(t, s, clsEntry)
	en := newObject(t, s, clsWS)
	fr := newObject(t, s, clsWS)

	require.NoError(s.SetMultiString(e, fldCitation, tsstrings.WS(en), tsstrings.FromString("house", tsstrings.WS(en))))
	require.NoError(s.SetMultiString(e, fldCitation, tsstrings.WS(fr), tsstrings.FromString("maison", tsstrings.WS(fr))))

	v, err := s.MultiString(e, fldCitation, tsstrings.WS(fr))
	require.NoError(err)
	require.Equal("maison", v.Text())

	alts := s.Alternatives(e, fldCitation)
	require.Len(alts, 2)
	require.True(s.Has(e, fldCitation))

	t.Run("missing alternative", func(t *testing.T) {
		_, err := s.MultiString(e, fldCitation, 12345)
		require.ErrorIs(err, ErrNotFound)
	})

	t.Run("nil removes alternative", func(t *testing.T) {
		require.NoError(s.SetMultiString(e, fldCitation, tsstrings.WS(fr), nil))
		require.Len(s.Alternatives(e, fldCitation), 1)
	})

	t.Run("strict errors", func(t *testing.T) {
		str := tsstrings.FromString("x", tsstrings.WS(en))
		require.ErrorIs(s.SetMultiString(e, fldForm, tsstrings.WS(en), str), ErrTypeMismatch)
		require.ErrorIs(s.SetMultiString(e, fldCitation, 54321, str), ErrInvalidReference)
		require.ErrorIs(s.SetMultiString(e, fldUnknownFld, tsstrings.WS(en), str), ErrUnknownField)
		_, err := s.MultiString(e, fldForm, tsstrings.WS(en))
		require.ErrorIs(err, ErrTypeMismatch)
		_, err = s.Get(e, fldCitation)
		require.ErrorIs(err, ErrTypeMismatch)
	})

	t.Run("not strict accepts any writing system", func(t *testing.T) {
		defer s.SuspendValidation()()
		require.NoError(s.SetMultiString(e, fldCitation, 54321, tsstrings.FromString("x", 54321)))
	})
}

func TestStore_MultiStringWritingSystemClass(t *testing.T) {
	require := require.New(t)

	s := testStore(t, WithWritingSystemClass(clsWS))
	e := newObject(t, s, clsEntry)
	en := newObject(t, s, clsWS)
	sense := newObject(t, s, clsSense)

	require.NoError(s.SetMultiString(e, fldCitation, tsstrings.WS(en), tsstrings.FromString("house", tsstrings.WS(en))))

	err := s.SetMultiString(e, fldCitation, tsstrings.WS(sense), tsstrings.FromString("x", tsstrings.WS(sense)))
	require.ErrorIs(err, ErrInvalidReference)
	require.Len(s.Alternatives(e, fldCitation), 1)

	t.Run("not strict accepts object of other class", func(t *testing.T) {
		defer s.SuspendValidation()()
		require.NoError(s.SetMultiString(e, fldCitation, tsstrings.WS(sense), tsstrings.FromString("x", tsstrings.WS(sense))))
	})
}

func TestStore_ClearAll(t *testing.T) {
	require := require.New(t)

	s := testStore(t)
	e := newObject(t, s, clsEntry)
	g, _ := s.GuidOf(e)
	require.Equal(1, s.ObjectCount())

	s.ClearAll()

	require.Zero(s.ObjectCount())
	require.False(s.IsValidObject(e))
	_, ok := s.ObjectByGuid(g)
	require.False(ok)
	require.Greater(s.Allocate(), e, "IDs must not be reused")
}

func TestStore_Objects(t *testing.T) {
	require := require.New(t)

	s := testStore(t)
	a := newObject(t, s, clsEntry)
	_ = s.Allocate()
	b := newObject(t, s, clsSense)

	var objs []ObjectID
	s.Objects(func(id ObjectID) { objs = append(objs, id) })
	require.Equal([]ObjectID{a, b}, objs)
	require.Equal(2, s.ObjectCount())

	c, ok := s.ClassOf(b)
	require.True(ok)
	require.Equal(clsSense, c)
}

func TestStore_Unsupported(t *testing.T) {
	require := require.New(t)

	s := testStore(t)
	for _, err := range []error{
		s.DeleteObject(1),
		s.DeleteOwned(1, fldEntries, 2),
		s.MoveOwned(1, fldSenses, 0, 1, 2, fldSenses, 0),
		s.Undo(),
		s.Redo(),
		s.PropChanged(1, fldForm, 0, 1, 0),
	} {
		require.ErrorIs(err, ErrUnsupported)
		require.ErrorIs(err, errors.ErrUnsupported)
		require.ErrorIs(err, ErrStore)
	}

	require.NotPanics(func() {
		s.AddNotification(nil)
		s.RemoveNotification(nil)
	})
}
