/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package mock

import (
	"strconv"

	"github.com/stretchr/testify/mock"

	"github.com/voedger/objstore/pkg/schema"
)

// Registry mock.
//
// If classes or fields are added, registry answers from them. Otherwise calls are routed to mock.Mock,
// so expectations must be set with On().
//
// # Implements:
//   - schema.IRegistry
type Registry struct {
	mock.Mock
	classes map[schema.ClassID]*Class
	fields  map[schema.FieldID]*Field
}

type Class struct {
	ID    schema.ClassID
	Name  string
	Super schema.ClassID
}

type Field struct {
	ID    schema.FieldID
	Name  string
	Class schema.ClassID
	Kind  schema.Kind
	Dest  schema.ClassID
}

// Returns new registry mock with root class and bookkeeping fields
func NewRegistry() *Registry {
	r := &Registry{
		classes: make(map[schema.ClassID]*Class),
		fields:  make(map[schema.FieldID]*Field),
	}
	r.AddClass(schema.RootClassID, schema.RootClassName, schema.RootClassID)
	r.AddField(schema.Field_Guid, schema.FieldName_Guid, schema.RootClassID, schema.Kind_Guid, 0)
	r.AddField(schema.Field_Class, schema.FieldName_Class, schema.RootClassID, schema.Kind_Integer, 0)
	r.AddField(schema.Field_Owner, schema.FieldName_Owner, schema.RootClassID, schema.Kind_ReferenceAtomic, schema.RootClassID)
	r.AddField(schema.Field_OwnFlid, schema.FieldName_OwnFlid, schema.RootClassID, schema.Kind_Integer, 0)
	r.AddField(schema.Field_OwnOrd, schema.FieldName_OwnOrd, schema.RootClassID, schema.Kind_Integer, 0)
	return r
}

// Returns empty registry mock, which routes all calls to mock.Mock
func NewEmptyRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) AddClass(id schema.ClassID, name string, super schema.ClassID) *Registry {
	r.classes[id] = &Class{ID: id, Name: name, Super: super}
	return r
}

func (r *Registry) AddField(id schema.FieldID, name string, class schema.ClassID, kind schema.Kind, dest schema.ClassID) *Registry {
	r.fields[id] = &Field{ID: id, Name: name, Class: class, Kind: kind, Dest: dest}
	return r
}

func (r *Registry) isFixture() bool { return len(r.classes) > 0 }

func (r *Registry) IsClass(id schema.ClassID) bool {
	if r.isFixture() {
		_, ok := r.classes[id]
		return ok
	}
	return r.Called(id).Bool(0)
}

func (r *Registry) FieldKind(id schema.FieldID) (schema.Kind, bool) {
	if r.isFixture() {
		if f, ok := r.fields[id]; ok {
			return f.Kind, true
		}
		return schema.Kind_null, false
	}
	args := r.Called(id)
	return args.Get(0).(schema.Kind), args.Bool(1)
}

func (r *Registry) FieldName(id schema.FieldID) string {
	if r.isFixture() {
		if f, ok := r.fields[id]; ok {
			return r.classes[f.Class].Name + "." + f.Name
		}
		return strconv.FormatUint(uint64(id), 10)
	}
	return r.Called(id).String(0)
}

func (r *Registry) FieldClass(id schema.FieldID) (schema.ClassID, bool) {
	if r.isFixture() {
		if f, ok := r.fields[id]; ok {
			return f.Class, true
		}
		return 0, false
	}
	args := r.Called(id)
	return args.Get(0).(schema.ClassID), args.Bool(1)
}

func (r *Registry) InheritsFrom(class, ancestor schema.ClassID) bool {
	if r.isFixture() {
		c, ok := r.classes[class]
		for steps := len(r.classes); ok && steps >= 0; steps-- {
			if c.ID == ancestor {
				return true
			}
			if c.ID == schema.RootClassID {
				break
			}
			c, ok = r.classes[c.Super]
		}
		return false
	}
	return r.Called(class, ancestor).Bool(0)
}

func (r *Registry) IsAssignable(id schema.FieldID, class schema.ClassID) bool {
	if r.isFixture() {
		f, ok := r.fields[id]
		return ok && f.Kind.IsObject() && r.InheritsFrom(class, f.Dest)
	}
	return r.Called(id, class).Bool(0)
}
