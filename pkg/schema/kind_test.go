/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	require := require.New(t)

	t.Run("names round trip", func(t *testing.T) {
		for k, n := range kindNames {
			if k == Kind_null {
				continue
			}
			require.Equal(n, k.String())
			pk, ok := ParseKind(n)
			require.True(ok, n)
			require.Equal(k, pk)
			require.True(k.IsValid())
		}
	})

	t.Run("unknown kinds", func(t *testing.T) {
		_, ok := ParseKind("null")
		require.False(ok)
		_, ok = ParseKind("integer")
		require.False(ok)
		require.False(Kind(10).IsValid())
		require.Equal("Kind(10)", Kind(10).String())
	})

	t.Run("classification", func(t *testing.T) {
		require.True(Kind_OwningSequence.IsObject())
		require.True(Kind_OwningSequence.IsOwning())
		require.True(Kind_OwningSequence.IsSequence())
		require.True(Kind_OwningSequence.IsVector())
		require.False(Kind_OwningSequence.IsAtomic())

		require.True(Kind_ReferenceAtomic.IsReference())
		require.True(Kind_ReferenceAtomic.IsAtomic())
		require.False(Kind_ReferenceAtomic.IsVector())

		require.True(Kind_ReferenceCollection.IsVector())
		require.False(Kind_ReferenceCollection.IsSequence())

		require.False(Kind_Integer.IsObject())
		require.True(Kind_MultiBigUnicode.IsMulti())
		require.False(Kind_BigUnicode.IsMulti())
	})

	t.Run("text marshaling", func(t *testing.T) {
		b, err := Kind_GenDate.MarshalText()
		require.NoError(err)
		require.Equal("GenDate", string(b))
	})
}

func TestKindMask(t *testing.T) {
	require := require.New(t)

	t.Run("predefined masks partition all kinds", func(t *testing.T) {
		for k := range kindNames {
			if k == Kind_null {
				require.False(MaskAll.Has(k))
				continue
			}
			n := 0
			for _, m := range []KindMask{MaskBasic, MaskStrings, MaskMulti, MaskObject} {
				if m.Has(k) {
					n++
				}
			}
			require.Equal(1, n, k)
			require.Equal(k.IsObject(), MaskObject.Has(k), k)
			require.Equal(k.IsVector(), MaskVector.Has(k), k)
		}
	})

	t.Run("parse", func(t *testing.T) {
		m, ok := ParseKindMask("owning, Integer")
		require.True(ok)
		require.True(m.Has(Kind_OwningAtomic))
		require.True(m.Has(Kind_Integer))
		require.False(m.Has(Kind_ReferenceAtomic))

		m, ok = ParseKindMask("")
		require.True(ok)
		require.Equal(MaskNone, m)

		_, ok = ParseKindMask("basic,Nope")
		require.False(ok)
	})
}
