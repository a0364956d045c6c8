/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"
)

// Registry of class and field definitions.
//
// Registry is built by one or more Load calls and is read-only thereafter,
// except for virtual and custom fields, which may be added at any time.
//
// Registry is not safe for concurrent mutation. If it is shared between
// goroutines while fields are added, callers must synchronize access.
//
// # Implements:
//   - IRegistry
type Registry struct {
	classes     map[ClassID]*Class
	classByName map[string]*Class
	fields      map[FieldID]*Field
	fieldByName map[fieldKey]*Field
}

type fieldKey struct {
	class ClassID
	name  string
}

func newRegistry() *Registry {
	r := &Registry{
		classes:     make(map[ClassID]*Class),
		classByName: make(map[string]*Class),
		fields:      make(map[FieldID]*Field),
		fieldByName: make(map[fieldKey]*Field),
	}
	r.addRoot()
	return r
}

// Adds root class with bookkeeping fields
func (r *Registry) addRoot() {
	root := newClass(RootClassID, RootClassName, true, "")
	r.addClass(root)

	owner := newField(Field_Owner, FieldName_Owner, RootClassID, Kind_ReferenceAtomic, Provenance_Model)
	owner.destName, owner.dest, owner.destResolved = RootClassName, RootClassID, true

	for _, f := range []*Field{
		newField(Field_Guid, FieldName_Guid, RootClassID, Kind_Guid, Provenance_Model),
		newField(Field_Class, FieldName_Class, RootClassID, Kind_Integer, Provenance_Model),
		owner,
		newField(Field_OwnFlid, FieldName_OwnFlid, RootClassID, Kind_Integer, Provenance_Model),
		newField(Field_OwnOrd, FieldName_OwnOrd, RootClassID, Kind_Integer, Provenance_Model),
	} {
		r.addField(f)
	}
}

func (r *Registry) addClass(c *Class) {
	r.classes[c.id] = c
	r.classByName[c.name] = c
}

func (r *Registry) addField(f *Field) {
	r.fields[f.id] = f
	r.fieldByName[fieldKey{f.class, f.name}] = f
	if c, ok := r.classes[f.class]; ok {
		c.fields = append(c.fields, f.id)
	}
}

// Returns deep copy of registry
func (r *Registry) clone() *Registry {
	n := &Registry{
		classes:     make(map[ClassID]*Class, len(r.classes)),
		classByName: make(map[string]*Class, len(r.classByName)),
		fields:      make(map[FieldID]*Field, len(r.fields)),
		fieldByName: make(map[fieldKey]*Field, len(r.fieldByName)),
	}
	for id, c := range r.classes {
		cc := *c
		cc.fields = slices.Clone(c.fields)
		cc.subclasses = slices.Clone(c.subclasses)
		n.classes[id] = &cc
		n.classByName[cc.name] = &cc
	}
	for id, f := range r.fields {
		ff := *f
		n.fields[id] = &ff
		n.fieldByName[fieldKey{ff.class, ff.name}] = &ff
	}
	return n
}

// Returns class ID by class name. Name is case sensitive
func (r *Registry) ClassID(name string) (ClassID, bool) {
	if c, ok := r.classByName[name]; ok {
		return c.id, true
	}
	return 0, false
}

// Returns class by ID
func (r *Registry) Class(id ClassID) (*Class, bool) {
	c, ok := r.classes[id]
	return c, ok
}

// Returns class by name
func (r *Registry) ClassByName(name string) (*Class, bool) {
	c, ok := r.classByName[name]
	return c, ok
}

// Returns class name by ID
func (r *Registry) ClassName(id ClassID) (string, bool) {
	if c, ok := r.classes[id]; ok {
		return c.name, true
	}
	return "", false
}

func (r *Registry) IsClass(id ClassID) bool {
	_, ok := r.classes[id]
	return ok
}

// Returns count of registered classes, root class included
func (r *Registry) ClassCount() int { return len(r.classes) }

// Returns count of registered fields, bookkeeping and virtual fields included
func (r *Registry) FieldCount() int { return len(r.fields) }

// Returns IDs of all registered classes in ascending order
func (r *Registry) ClassIDs() []ClassID {
	ids := make([]ClassID, 0, len(r.classes))
	for id := range r.classes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Enumerates classes in ascending ID order
func (r *Registry) Classes(cb func(*Class)) {
	for _, id := range r.ClassIDs() {
		cb(r.classes[id])
	}
}

// Returns superclass ID of class. Returns false for root class, unknown class or class with unresolved superclass
func (r *Registry) SuperclassOf(id ClassID) (ClassID, bool) {
	if c, ok := r.classes[id]; ok {
		return c.Superclass()
	}
	return 0, false
}

// Returns field ID by class and field names.
//
// If includeInherited then superclasses are searched up to the root class.
// Names are case sensitive.
func (r *Registry) FieldID(className, fieldName string, includeInherited bool) (FieldID, bool) {
	c, ok := r.classByName[className]
	if !ok {
		return NullFieldID, false
	}
	return r.fieldIDByClass(c, fieldName, includeInherited)
}

// Returns field ID by class ID and field name, see FieldID
func (r *Registry) FieldIDByClass(class ClassID, fieldName string, includeInherited bool) (FieldID, bool) {
	c, ok := r.classes[class]
	if !ok {
		return NullFieldID, false
	}
	return r.fieldIDByClass(c, fieldName, includeInherited)
}

func (r *Registry) fieldIDByClass(c *Class, fieldName string, includeInherited bool) (FieldID, bool) {
	for c != nil {
		if f, ok := r.fieldByName[fieldKey{c.id, fieldName}]; ok {
			return f.id, true
		}
		if !includeInherited {
			break
		}
		c = r.superclass(c)
	}
	return NullFieldID, false
}

// Returns resolved superclass or nil
func (r *Registry) superclass(c *Class) *Class {
	if c.IsRoot() || !c.superResolved {
		return nil
	}
	return r.classes[c.super]
}

// Returns field by ID
func (r *Registry) Field(id FieldID) (*Field, bool) {
	f, ok := r.fields[id]
	return f, ok
}

func (r *Registry) FieldKind(id FieldID) (Kind, bool) {
	if f, ok := r.fields[id]; ok {
		return f.kind, true
	}
	return Kind_null, false
}

func (r *Registry) FieldName(id FieldID) string {
	f, ok := r.fields[id]
	if !ok {
		return strconv.FormatUint(uint64(id), 10)
	}
	if c, ok := r.classes[f.class]; ok {
		return c.name + "." + f.name
	}
	return f.name
}

func (r *Registry) FieldClass(id FieldID) (ClassID, bool) {
	if f, ok := r.fields[id]; ok {
		return f.class, true
	}
	return 0, false
}

// Returns destination class of object-valued field.
// Returns false if field is unknown, not object-valued or its destination is not resolved
func (r *Registry) DestinationClass(id FieldID) (ClassID, bool) {
	if f, ok := r.fields[id]; ok && f.kind.IsObject() {
		return f.Destination()
	}
	return 0, false
}

func (r *Registry) IsVirtual(id FieldID) bool {
	f, ok := r.fields[id]
	return ok && f.prov == Provenance_Virtual
}

func (r *Registry) IsCustom(id FieldID) bool {
	f, ok := r.fields[id]
	return ok && f.prov == Provenance_Custom
}

// Returns fields of class filtered by kinds mask.
//
// Class own fields are returned first in declaration order. If includeSuperclasses then
// fields of each ancestor follow, walking up to the root class.
func (r *Registry) FieldsOf(id ClassID, includeSuperclasses bool, mask KindMask) []FieldID {
	c, ok := r.classes[id]
	if !ok {
		return nil
	}
	var res []FieldID
	for c != nil {
		for _, fid := range c.fields {
			if mask.Has(r.fields[fid].kind) {
				res = append(res, fid)
			}
		}
		if !includeSuperclasses {
			break
		}
		c = r.superclass(c)
	}
	return res
}

// Returns is class equal to ancestor or is ancestor in class superclass chain
func (r *Registry) InheritsFrom(class, ancestor ClassID) bool {
	c, ok := r.classes[class]
	for steps := len(r.classes); ok && steps >= 0; steps-- {
		if c.id == ancestor {
			return true
		}
		c = r.superclass(c)
		ok = c != nil
	}
	return false
}

// Returns is class admitted as value of object-valued field: class must be
// field destination class or one of its subclasses
func (r *Registry) IsAssignable(id FieldID, class ClassID) bool {
	dest, ok := r.DestinationClass(id)
	if !ok {
		return false
	}
	return r.InheritsFrom(class, dest)
}

// Returns IDs of direct subclasses of class in registration order
func (r *Registry) DirectSubclasses(id ClassID) []ClassID {
	if c, ok := r.classes[id]; ok {
		return c.Subclasses()
	}
	return nil
}

// Returns class and all its subclasses, recursively, in pre-order. Class itself is first
func (r *Registry) AllSubclasses(id ClassID) []ClassID {
	c, ok := r.classes[id]
	if !ok {
		return nil
	}
	var res []ClassID
	var walk func(c *Class)
	walk = func(c *Class) {
		res = append(res, c.id)
		for _, sub := range c.subclasses {
			walk(r.classes[sub])
		}
	}
	walk(c)
	return res
}

// Resolves destination class names and superclass names, declared by name only.
//
// Unresolved destinations are kept and retried by the next resolve.
// Superclass cycles are returned as error.
func (r *Registry) resolve() (err error) {
	unresolved := 0
	for _, f := range r.fields {
		if !f.kind.IsObject() || f.destResolved {
			continue
		}
		if d, ok := r.classByName[f.destName]; ok {
			f.dest, f.destResolved = d.id, true
			continue
		}
		unresolved++
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("field «%s» destination class «%s» is not resolved yet", r.FieldName(f.id), f.destName))
		}
	}
	if unresolved > 0 {
		logger.Warning(fmt.Sprintf("%d field(s) have unresolved destination class", unresolved))
	}

	for _, id := range r.ClassIDs() {
		c := r.classes[id]
		if c.IsRoot() || c.superResolved {
			continue
		}
		s, ok := r.classByName[c.superName]
		if !ok {
			continue
		}
		if r.InheritsFrom(s.id, c.id) {
			err = errors.Join(err, enrichError(ErrInheritanceCycle, "%v superclass «%s»", c, c.superName))
			continue
		}
		c.super, c.superResolved = s.id, true
		s.subclasses = append(s.subclasses, c.id)
	}

	return err
}

// Checks that superclass chain of every class terminates at the root class.
//
// Returns ErrUnresolvedSuperclass joined for every class with broken chain.
func (r *Registry) CheckComplete() (err error) {
	for _, id := range r.ClassIDs() {
		if !r.InheritsFrom(id, RootClassID) {
			c := r.classes[id]
			err = errors.Join(err, enrichError(ErrUnresolvedSuperclass, "%v superclass «%s»", c, c.superName))
		}
	}
	return err
}

// Returns names of classes with unresolved superclass, sorted
func (r *Registry) PendingClasses() []string {
	var res []string
	for _, c := range r.classes {
		if !c.IsRoot() && !c.superResolved {
			res = append(res, c.name)
		}
	}
	sort.Strings(res)
	return res
}

func (r *Registry) sortedFieldIDs() []FieldID {
	ids := make([]FieldID, 0, len(r.fields))
	for id := range r.fields {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
