/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

import "fmt"

// Registers run-time virtual field.
//
// Virtual field has no stored backing value, its value is computed by a hook registered in property store.
// Object-valued virtual fields registered by this method admit objects of any class, use
// RegisterVirtualObjectField to restrict destination class.
//
// Virtual fields are never removed or redefined.
func (r *Registry) RegisterVirtualField(className, fieldName string, id FieldID, kind Kind) error {
	return r.registerVirtual(className, fieldName, id, kind, RootClassName)
}

// Registers run-time object-valued virtual field with specified destination class.
//
// Destination class may be not registered yet, it is resolved by next schema load.
func (r *Registry) RegisterVirtualObjectField(className, fieldName string, id FieldID, kind Kind, destClassName string) error {
	if !kind.IsObject() {
		return enrichError(ErrInvalidKind, "%v is not object-valued kind", kind)
	}
	if destClassName == "" {
		return errMissingAttr("destination class", "virtual field «%s.%s»", className, fieldName)
	}
	return r.registerVirtual(className, fieldName, id, kind, destClassName)
}

func (r *Registry) registerVirtual(className, fieldName string, id FieldID, kind Kind, destClassName string) error {
	c, err := r.checkNewField(className, fieldName, kind)
	if err != nil {
		return err
	}
	if id == NullFieldID {
		return enrichError(ErrIDCollision, "field ID %d is reserved", id)
	}
	if exists, ok := r.fields[id]; ok {
		return enrichError(ErrIDCollision, "field ID %d is used by %v", id, exists)
	}

	f := newField(id, fieldName, c.id, kind, Provenance_Virtual)
	f.big = isBigKind(kind)
	r.setDestination(f, destClassName)
	r.addField(f)

	return nil
}

// Adds custom field to class and returns its ID.
//
// Custom fields are stored like model fields. Their IDs are allocated from the class field range starting
// with FirstCustomFieldNum. For object-valued kinds destination class name is required.
func (r *Registry) AddCustomField(className, fieldName string, kind Kind, destClassName string) (FieldID, error) {
	c, err := r.checkNewField(className, fieldName, kind)
	if err != nil {
		return NullFieldID, err
	}
	if kind.IsObject() && destClassName == "" {
		return NullFieldID, errMissingAttr("destination class", "custom field «%s.%s»", className, fieldName)
	}

	id := NullFieldID
	base := uint32(c.id) * FieldsPerClass
	for n := uint32(FirstCustomFieldNum + 1); n < FieldsPerClass; n++ {
		if _, used := r.fields[FieldID(base+n)]; !used {
			id = FieldID(base + n)
			break
		}
	}
	if id == NullFieldID {
		return NullFieldID, enrichError(ErrIDCollision, "%v has no free custom field IDs", c)
	}

	f := newField(id, fieldName, c.id, kind, Provenance_Custom)
	f.big = isBigKind(kind)
	r.setDestination(f, destClassName)
	r.addField(f)

	return id, nil
}

func (r *Registry) checkNewField(className, fieldName string, kind Kind) (*Class, error) {
	c, ok := r.classByName[className]
	if !ok {
		return nil, enrichError(ErrClassNotFound, "class «%s»", className)
	}
	if !kind.IsValid() {
		return nil, enrichError(ErrInvalidKind, "%v", kind)
	}
	if fieldName == "" {
		return nil, errMissingAttr("name", "field of %v", c)
	}
	if exists, ok := r.fieldByName[fieldKey{c.id, fieldName}]; ok {
		return nil, enrichError(ErrNameCollision, "%v already has %v", c, exists)
	}
	return c, nil
}

func (r *Registry) setDestination(f *Field, destClassName string) {
	if !f.kind.IsObject() {
		return
	}
	f.destName = destClassName
	if d, ok := r.classByName[destClassName]; ok {
		f.dest, f.destResolved = d.id, true
	}
}

// Returns qualified names of fields with unresolved destination class, for diagnostics
func (r *Registry) UnresolvedFields() []string {
	var res []string
	for _, id := range r.sortedFieldIDs() {
		f := r.fields[id]
		if f.kind.IsObject() && !f.destResolved {
			res = append(res, fmt.Sprintf("%s → %s", r.FieldName(id), f.destName))
		}
	}
	return res
}
