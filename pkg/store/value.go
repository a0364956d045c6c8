/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/tsstrings"
)

// Property value.
//
// Value is one of Bool, Int, Int64, Float, Guid, Binary, Unicode, Text, Ref or Refs.
// Field kind determines which variant is admitted, see VariantOf.
type Value interface {
	fmt.Stringer
	Variant() Variant
}

// Value variant tag
type Variant uint8

const (
	Variant_null Variant = iota
	Variant_Bool
	Variant_Int
	Variant_Int64
	Variant_Float
	Variant_Guid
	Variant_Binary
	Variant_Unicode
	Variant_Text
	Variant_Ref
	Variant_Refs
	Variant_count
)

var variantNames = [Variant_count]string{"null", "Bool", "Int", "Int64", "Float", "Guid", "Binary", "Unicode", "Text", "Ref", "Refs"}

func (v Variant) String() string {
	if v < Variant_count {
		return variantNames[v]
	}
	return "Variant(" + strconv.Itoa(int(v)) + ")"
}

// Returns variant which stores values of field kind.
//
// Multi-string kinds store Text alternatives per writing system.
func VariantOf(k schema.Kind) Variant {
	switch k {
	case schema.Kind_Boolean:
		return Variant_Bool
	case schema.Kind_Integer, schema.Kind_GenDate:
		return Variant_Int
	case schema.Kind_Time, schema.Kind_Numeric:
		return Variant_Int64
	case schema.Kind_Float:
		return Variant_Float
	case schema.Kind_Guid:
		return Variant_Guid
	case schema.Kind_Binary, schema.Kind_Image:
		return Variant_Binary
	case schema.Kind_Unicode, schema.Kind_BigUnicode:
		return Variant_Unicode
	case schema.Kind_String, schema.Kind_BigString,
		schema.Kind_MultiString, schema.Kind_MultiBigString, schema.Kind_MultiUnicode, schema.Kind_MultiBigUnicode:
		return Variant_Text
	case schema.Kind_OwningAtomic, schema.Kind_ReferenceAtomic:
		return Variant_Ref
	case schema.Kind_OwningCollection, schema.Kind_ReferenceCollection, schema.Kind_OwningSequence, schema.Kind_ReferenceSequence:
		return Variant_Refs
	}
	return Variant_null
}

type (
	Bool    bool
	Int     int32
	Int64   int64
	Float   float64
	Guid    uuid.UUID
	Binary  []byte
	Unicode string
	Ref     ObjectID
	Refs    []ObjectID
)

// Formatted string value
type Text struct {
	tsstrings.ITsString
}

func (Bool) Variant() Variant    { return Variant_Bool }
func (Int) Variant() Variant     { return Variant_Int }
func (Int64) Variant() Variant   { return Variant_Int64 }
func (Float) Variant() Variant   { return Variant_Float }
func (Guid) Variant() Variant    { return Variant_Guid }
func (Binary) Variant() Variant  { return Variant_Binary }
func (Unicode) Variant() Variant { return Variant_Unicode }
func (Text) Variant() Variant    { return Variant_Text }
func (Ref) Variant() Variant     { return Variant_Ref }
func (Refs) Variant() Variant    { return Variant_Refs }

func (v Bool) String() string    { return strconv.FormatBool(bool(v)) }
func (v Int) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v Int64) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string   { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Guid) String() string    { return uuid.UUID(v).String() }
func (v Binary) String() string  { return hex.EncodeToString(v) }
func (v Unicode) String() string { return strconv.Quote(string(v)) }
func (v Ref) String() string     { return strconv.FormatInt(int64(v), 10) }

func (v Text) String() string {
	if v.ITsString == nil {
		return `""`
	}
	return strconv.Quote(v.Text())
}

func (v Refs) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, id := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(int64(id), 10))
	}
	b.WriteByte(']')
	return b.String()
}
