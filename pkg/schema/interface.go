/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

// Class identifier
type ClassID uint32

// Field identifier. Never zero, see NullFieldID
type FieldID uint32

// Read-only view of registry, used to validate property values.
//
// Implemented by *Registry and by mock.Registry.
type IRegistry interface {
	// Returns is class with specified ID registered
	IsClass(ClassID) bool

	// Returns declared kind of field. Returns false if field is unknown
	FieldKind(FieldID) (Kind, bool)

	// Returns qualified field name «Class.Field», suitable for error messages.
	// Returns field ID as string if field is unknown
	FieldName(FieldID) string

	// Returns class which owns the field declaration
	FieldClass(FieldID) (ClassID, bool)

	// Returns is class equal to ancestor or is ancestor in class superclass chain
	InheritsFrom(class, ancestor ClassID) bool

	// Returns is class admitted as value of object-valued field
	IsAssignable(FieldID, ClassID) bool
}
