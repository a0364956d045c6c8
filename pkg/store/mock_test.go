/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voedger/objstore/pkg/schema"
	schemamock "github.com/voedger/objstore/pkg/schema/mock"
)

func TestStore_WithMockRegistry(t *testing.T) {
	require := require.New(t)

	const (
		clsNote  schema.ClassID = 7
		fldTitle schema.FieldID = 7001
		fldLinks schema.FieldID = 7002
	)

	t.Run("fixture registry", func(t *testing.T) {
		reg := schemamock.NewRegistry().
			AddClass(clsNote, "Note", schema.RootClassID).
			AddField(fldTitle, "Title", clsNote, schema.Kind_Unicode, 0).
			AddField(fldLinks, "Links", clsNote, schema.Kind_ReferenceCollection, clsNote)

		s := New(reg)
		a := newObject(t, s, clsNote)
		b := newObject(t, s, clsNote)

		require.NoError(s.SetUnicode(a, fldTitle, "first"))
		require.NoError(s.SetRefs(a, fldLinks, []ObjectID{b}))
		require.ErrorIs(s.SetInt(a, fldTitle, 1), ErrTypeMismatch)
		require.ErrorIs(s.SetInt(a, schema.Field_Class, 8), ErrInvalidReference)
	})

	t.Run("expectations registry", func(t *testing.T) {
		reg := schemamock.NewEmptyRegistry()
		reg.On("FieldKind", schema.Field_Class).Return(schema.Kind_Integer, true)
		reg.On("FieldKind", schema.Field_Guid).Return(schema.Kind_Guid, true)
		reg.On("FieldKind", fldTitle).Return(schema.Kind_Unicode, true)
		reg.On("IsClass", clsNote).Return(true).Once()
		reg.On("FieldClass", fldTitle).Return(clsNote, true)
		reg.On("InheritsFrom", clsNote, clsNote).Return(true)

		s := New(reg)
		obj := s.Allocate()
		require.NoError(s.SetInt(obj, schema.Field_Class, int32(clsNote)))
		require.NoError(s.SetGuid(obj, schema.Field_Guid, uuid.New()))
		require.NoError(s.SetUnicode(obj, fldTitle, "title"))

		reg.AssertExpectations(t)
		reg.AssertNotCalled(t, "IsAssignable", mock.Anything, mock.Anything)
	})
}
