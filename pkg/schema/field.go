/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

import "fmt"

// Field definition
type Field struct {
	id    FieldID
	name  string
	class ClassID
	kind  Kind
	prov  Provenance
	big   bool

	destName     string
	dest         ClassID
	destResolved bool

	// passthrough metadata, not validated
	label      string
	help       string
	xmlUI      string
	listRoot   string
	wsSelector string
}

func newField(id FieldID, name string, class ClassID, kind Kind, prov Provenance) *Field {
	return &Field{
		id:    id,
		name:  name,
		class: class,
		kind:  kind,
		prov:  prov,
	}
}

func (f *Field) ID() FieldID { return f.id }

func (f *Field) Name() string { return f.name }

// Returns ID of class which declares the field
func (f *Field) Class() ClassID { return f.class }

func (f *Field) Kind() Kind { return f.kind }

func (f *Field) Provenance() Provenance { return f.prov }

// Returns is field declared with «big» flag (BigString, BigUnicode, MultiBigString, MultiBigUnicode)
func (f *Field) Big() bool { return f.big }

// Returns destination class name for object-valued fields
func (f *Field) DestinationName() string { return f.destName }

// Returns destination class ID for object-valued fields.
// Returns false if field is not object-valued or destination class is not resolved yet
func (f *Field) Destination() (ClassID, bool) {
	return f.dest, f.destResolved
}

func (f *Field) Label() string { return f.label }

func (f *Field) Help() string { return f.help }

func (f *Field) XMLUI() string { return f.xmlUI }

func (f *Field) ListRoot() string { return f.listRoot }

func (f *Field) WSSelector() string { return f.wsSelector }

func (f *Field) String() string {
	return fmt.Sprintf("%s-field «%s» (%d)", f.kind, f.name, f.id)
}
