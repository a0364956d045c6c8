/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Class definition
type Class struct {
	id       ClassID
	name     string
	abstract bool

	superName     string
	super         ClassID
	superResolved bool

	fields     []FieldID
	subclasses []ClassID
}

func newClass(id ClassID, name string, abstract bool, superName string) *Class {
	return &Class{
		id:        id,
		name:      name,
		abstract:  abstract,
		superName: superName,
	}
}

func (c *Class) ID() ClassID { return c.id }

func (c *Class) Name() string { return c.name }

func (c *Class) Abstract() bool { return c.abstract }

// Returns is class the root class
func (c *Class) IsRoot() bool { return c.id == RootClassID }

// Returns superclass name as declared in schema document. Empty for root class
func (c *Class) SuperclassName() string { return c.superName }

// Returns superclass ID. Returns false for root class and for classes with superclass not resolved yet
func (c *Class) Superclass() (ClassID, bool) {
	return c.super, c.superResolved
}

// Returns IDs of class own fields in declaration order
func (c *Class) Fields() []FieldID {
	return slices.Clone(c.fields)
}

// Returns IDs of direct subclasses in registration order
func (c *Class) Subclasses() []ClassID {
	return slices.Clone(c.subclasses)
}

func (c *Class) String() string {
	return fmt.Sprintf("class «%s» (%d)", c.name, c.id)
}
