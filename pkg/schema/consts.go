/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

// Root class. Present in every registry before any schema document is loaded.
const (
	RootClassName         = "CmObject"
	RootClassID   ClassID = 0
)

// Bookkeeping fields, carried by every object regardless of its class
const (
	FieldName_Guid    = "Guid"
	FieldName_Class   = "Class"
	FieldName_Owner   = "Owner"
	FieldName_OwnFlid = "OwnFlid"
	FieldName_OwnOrd  = "OwnOrd"
)

const (
	Field_Guid    FieldID = 101
	Field_Class   FieldID = 102
	Field_Owner   FieldID = 103
	Field_OwnFlid FieldID = 104
	Field_OwnOrd  FieldID = 105
)

// Null (zero) field ID is reserved and never identifies a field
const NullFieldID FieldID = 0

// Numbering multipliers: clid = module * ClassesPerModule + classNum,
// flid = clid * FieldsPerClass + fieldNum
const (
	ClassesPerModule = 1000
	FieldsPerClass   = 1000
	MaxModules       = 1000
)

// Custom field numbers start from this offset inside the class field range
const FirstCustomFieldNum = 500

// Values of boolean attributes in schema documents
const (
	attrTrue  = "true"
	attrFalse = "false"
)

// Cardinality attribute values for owning and rel fields
const (
	cardAtomic     = "atomic"
	cardCollection = "col"
	cardSequence   = "seq"
)
