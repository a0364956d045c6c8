/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

import (
	"strconv"
	"strings"
)

// Value kind of a field.
//
// Numeric values are stable: they are used in kind masks and in custom field declarations.
type Kind uint8

const (
	Kind_null Kind = 0

	Kind_Boolean Kind = 1
	Kind_Integer Kind = 2
	Kind_Numeric Kind = 3
	Kind_Float   Kind = 4
	Kind_Time    Kind = 5
	Kind_Guid    Kind = 6
	Kind_Image   Kind = 7
	Kind_GenDate Kind = 8
	Kind_Binary  Kind = 9

	Kind_String          Kind = 13
	Kind_MultiString     Kind = 14
	Kind_Unicode         Kind = 15
	Kind_MultiUnicode    Kind = 16
	Kind_BigString       Kind = 17
	Kind_MultiBigString  Kind = 18
	Kind_BigUnicode      Kind = 19
	Kind_MultiBigUnicode Kind = 20

	Kind_OwningAtomic        Kind = 23
	Kind_ReferenceAtomic     Kind = 24
	Kind_OwningCollection    Kind = 25
	Kind_ReferenceCollection Kind = 26
	Kind_OwningSequence      Kind = 27
	Kind_ReferenceSequence   Kind = 28
)

var kindNames = map[Kind]string{
	Kind_null:                "null",
	Kind_Boolean:             "Boolean",
	Kind_Integer:             "Integer",
	Kind_Numeric:             "Numeric",
	Kind_Float:               "Float",
	Kind_Time:                "Time",
	Kind_Guid:                "Guid",
	Kind_Image:               "Image",
	Kind_GenDate:             "GenDate",
	Kind_Binary:              "Binary",
	Kind_String:              "String",
	Kind_MultiString:         "MultiString",
	Kind_Unicode:             "Unicode",
	Kind_MultiUnicode:        "MultiUnicode",
	Kind_BigString:           "BigString",
	Kind_MultiBigString:      "MultiBigString",
	Kind_BigUnicode:          "BigUnicode",
	Kind_MultiBigUnicode:     "MultiBigUnicode",
	Kind_OwningAtomic:        "OwningAtomic",
	Kind_ReferenceAtomic:     "ReferenceAtomic",
	Kind_OwningCollection:    "OwningCollection",
	Kind_ReferenceCollection: "ReferenceCollection",
	Kind_OwningSequence:      "OwningSequence",
	Kind_ReferenceSequence:   "ReferenceSequence",
}

// Returns kind by name. Name is case sensitive, see Kind.String()
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name && k != Kind_null {
			return k, true
		}
	}
	return Kind_null, false
}

// Returns is kind one of value kinds
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok && k != Kind_null
}

// Returns is kind one of the six object-valued kinds
func (k Kind) IsObject() bool {
	return k >= Kind_OwningAtomic && k <= Kind_ReferenceSequence
}

// Returns is kind one of owning kinds (atomic, collection or sequence)
func (k Kind) IsOwning() bool {
	return k == Kind_OwningAtomic || k == Kind_OwningCollection || k == Kind_OwningSequence
}

// Returns is kind one of reference (non-owning) object kinds
func (k Kind) IsReference() bool {
	return k == Kind_ReferenceAtomic || k == Kind_ReferenceCollection || k == Kind_ReferenceSequence
}

// Returns is kind atomic object kind
func (k Kind) IsAtomic() bool {
	return k == Kind_OwningAtomic || k == Kind_ReferenceAtomic
}

// Returns is kind stores ordered list of objects (collection or sequence)
func (k Kind) IsVector() bool {
	return k.IsObject() && !k.IsAtomic()
}

// Returns is kind a sequence, owning or reference
func (k Kind) IsSequence() bool {
	return k == Kind_OwningSequence || k == Kind_ReferenceSequence
}

// Returns is kind keeps string alternatives per writing system
func (k Kind) IsMulti() bool {
	return k == Kind_MultiString || k == Kind_MultiUnicode || k == Kind_MultiBigString || k == Kind_MultiBigUnicode
}

// Returns kind mask with single kind bit
func (k Kind) Mask() KindMask {
	return KindMask(1) << k
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	const base = 10
	return "Kind(" + strconv.FormatUint(uint64(k), base) + ")"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Bit set over value kinds. Bit N is set if kind with numeric value N is included.
type KindMask uint32

const (
	MaskNone KindMask = 0

	MaskBasic KindMask = 1<<Kind_Boolean | 1<<Kind_Integer | 1<<Kind_Numeric | 1<<Kind_Float |
		1<<Kind_Time | 1<<Kind_Guid | 1<<Kind_Image | 1<<Kind_GenDate | 1<<Kind_Binary

	MaskStrings KindMask = 1<<Kind_String | 1<<Kind_Unicode | 1<<Kind_BigString | 1<<Kind_BigUnicode

	MaskMulti KindMask = 1<<Kind_MultiString | 1<<Kind_MultiUnicode | 1<<Kind_MultiBigString | 1<<Kind_MultiBigUnicode

	MaskOwning KindMask = 1<<Kind_OwningAtomic | 1<<Kind_OwningCollection | 1<<Kind_OwningSequence

	MaskReference KindMask = 1<<Kind_ReferenceAtomic | 1<<Kind_ReferenceCollection | 1<<Kind_ReferenceSequence

	MaskObject = MaskOwning | MaskReference

	MaskAtomic KindMask = 1<<Kind_OwningAtomic | 1<<Kind_ReferenceAtomic

	MaskVector = MaskObject &^ MaskAtomic

	MaskAll = MaskBasic | MaskStrings | MaskMulti | MaskObject
)

// Returns is kind included in mask
func (m KindMask) Has(k Kind) bool {
	return m&k.Mask() != 0
}

var maskNames = map[string]KindMask{
	"all":       MaskAll,
	"basic":     MaskBasic,
	"strings":   MaskStrings,
	"multi":     MaskMulti,
	"owning":    MaskOwning,
	"reference": MaskReference,
	"object":    MaskObject,
	"atomic":    MaskAtomic,
	"vector":    MaskVector,
}

// Parses comma separated list of mask names («basic», «owning», …) or kind names («Integer», …)
func ParseKindMask(s string) (KindMask, bool) {
	m := MaskNone
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if pm, ok := maskNames[strings.ToLower(part)]; ok {
			m |= pm
			continue
		}
		k, ok := ParseKind(part)
		if !ok {
			return MaskNone, false
		}
		m |= k.Mask()
	}
	return m, true
}
