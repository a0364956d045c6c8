/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/store"
	"github.com/voedger/objstore/pkg/tsstrings"
)

// Builds objects of document.
//
// Custom fields are registered first. Writing system objects, top level and owned ones, are allocated and
// registered by code before any other object is built, so strings of any object may refer them.
// Top level writing systems are built first, designated root object is built last.
func (ld *load) buildTree(doc *element) error {
	var (
		wss, rest []*element
		root      *element
	)
	for _, e := range doc.children {
		switch {
		case e.name == elemAdditionalFields:
			if err := ld.addCustomFields(e); err != nil {
				return err
			}
		case ld.isWritingSystem(e.name):
			wss = append(wss, e)
		case root == nil && e.name == ld.opts.rootClass:
			root = e
		default:
			rest = append(rest, e)
		}
	}

	for _, e := range doc.children {
		if e.name != elemAdditionalFields {
			if err := ld.scanWritingSystems(e); err != nil {
				return err
			}
		}
	}

	for _, e := range append(append(wss, rest...), root) {
		if e == nil {
			continue
		}
		id, err := ld.buildObject(e, store.NullObjectID, schema.NullFieldID, 0)
		if err != nil {
			return err
		}
		if e == root {
			ld.root = id
		}
	}
	if root == nil {
		logger.Warning(fmt.Sprintf("document has no root object of class «%s»", ld.opts.rootClass))
	}

	logger.Verbose(fmt.Sprintf("%d objects built, %d atomic and %d vector references deferred",
		ld.stats.Objects, len(ld.atomic), len(ld.vectors)))
	return nil
}

// Allocates and registers writing system objects of subtree. Unknown classes and fields are skipped,
// they are reported by buildObject
func (ld *load) scanWritingSystems(e *element) error {
	class, ok := ld.reg.ClassID(e.name)
	if !ok {
		return nil
	}
	if ld.isWritingSystem(e.name) {
		id := ld.st.Allocate()
		if err := ld.registerWritingSystem(e, id); err != nil {
			return err
		}
		ld.wsObjects[e] = id
		ld.stats.WritingSystems++
	}
	for _, fe := range e.children {
		f, ok := ld.fieldID(class, fe.name)
		if !ok {
			continue
		}
		if k, _ := ld.reg.FieldKind(f); k.IsOwning() {
			for _, ce := range fe.children {
				if err := ld.scanWritingSystems(ce); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (ld *load) isWritingSystem(name string) bool {
	if ld.wsCodeField == schema.NullFieldID {
		return false
	}
	c, ok := ld.reg.ClassID(name)
	return ok && ld.reg.InheritsFrom(c, ld.wsClass)
}

// Registers writing system code of element as ws
func (ld *load) registerWritingSystem(e *element, ws store.ObjectID) error {
	class, _ := ld.reg.ClassID(e.name)
	for _, fe := range e.children {
		if f, ok := ld.fieldID(class, fe.name); !ok || f != ld.wsCodeField {
			continue
		}
		h, err := ld.holder(fe, elemUni)
		if err != nil || h == nil {
			return ld.fail(fe, e.name, fe.name, errMalformed("writing system has no code"))
		}
		code := tsstrings.CanonicalWSCode(h.text.String())
		if prev, ok := ld.wsByCode[code]; ok {
			return ld.fail(fe, e.name, fe.name, errMalformed("writing system «%s» repeats, first is %v", code, store.ObjectID(prev)))
		}
		ld.wsByCode[code] = tsstrings.WS(ws)
		logger.Verbose(fmt.Sprintf("writing system «%s» is %v", code, ws))
		return nil
	}
	return ld.fail(e, e.name, "", errMalformed("writing system has no «%s» field", ld.opts.wsCodeField))
}

// Builds object from element and, recursively, all objects it owns.
//
// Writing system objects get IDs allocated by scanWritingSystems, other objects get new IDs.
func (ld *load) buildObject(e *element, owner store.ObjectID, ownFlid schema.FieldID, ownOrd int) (store.ObjectID, error) {
	class, ok := ld.reg.ClassID(e.name)
	if !ok {
		return store.NullObjectID, ld.fail(e, "", "", errMalformed("unknown class «%s»", e.name))
	}
	id, ok := e.attr(attrID)
	if !ok {
		return store.NullObjectID, ld.fail(e, e.name, "", errMissingAttr(attrID))
	}
	g, err := parseGuid(id)
	if err != nil {
		return store.NullObjectID, ld.fail(e, e.name, "", err)
	}

	obj, ok := ld.wsObjects[e]
	if !ok {
		obj = ld.st.Allocate()
	}

	for _, p := range []struct {
		field schema.FieldID
		value store.Value
	}{
		{schema.Field_Class, store.Int(class)},
		{schema.Field_Guid, store.Guid(g)},
		{schema.Field_Owner, store.Ref(owner)},
		{schema.Field_OwnFlid, store.Int(ownFlid)},
		{schema.Field_OwnOrd, store.Int(ownOrd)},
	} {
		if err := ld.st.Set(obj, p.field, p.value); err != nil {
			return store.NullObjectID, ld.fail(e, e.name, "", err)
		}
	}
	ld.stats.Objects++

	for _, fe := range e.children {
		if err := ld.loadField(obj, class, e, fe); err != nil {
			return store.NullObjectID, err
		}
	}

	return obj, nil
}

// Loads field element of object
func (ld *load) loadField(obj store.ObjectID, class schema.ClassID, oe, fe *element) error {
	field, ok := ld.fieldID(class, fe.name)
	if !ok {
		return ld.fail(fe, oe.name, fe.name, errMalformed("unknown field «%s»", fe.name))
	}
	kind, _ := ld.reg.FieldKind(field)

	var err error
	switch {
	case kind.IsOwning():
		err = ld.loadOwned(obj, field, kind, fe)
	case kind.IsReference():
		err = ld.deferRefs(obj, field, kind, fe)
	case kind.IsMulti():
		err = ld.loadAlternatives(obj, field, kind, fe)
	default:
		err = ld.loadScalar(obj, field, kind, fe)
	}
	if err != nil {
		return ld.fail(fe, oe.name, ld.reg.FieldName(field), err)
	}
	return nil
}

// Builds owned objects and sets owning field
func (ld *load) loadOwned(obj store.ObjectID, field schema.FieldID, kind schema.Kind, fe *element) error {
	if kind.IsAtomic() && len(fe.children) > 1 {
		return errMalformed("atomic field has %d objects", len(fe.children))
	}

	owned := make([]store.ObjectID, 0, len(fe.children))
	for i, ce := range fe.children {
		ord := 0
		if kind.IsSequence() {
			ord = i
		}
		id, err := ld.buildObject(ce, obj, field, ord)
		if err != nil {
			return err
		}
		owned = append(owned, id)
	}
	if len(owned) == 0 {
		return nil
	}

	if kind.IsAtomic() {
		return ld.st.SetRef(obj, field, owned[0])
	}

	// repeated field elements append
	at := 0
	if v, ok := ld.st.TryGet(obj, field); ok {
		at = len(v.(store.Refs))
	}
	return ld.st.Replace(obj, field, at, at, owned)
}

// Collects «Link» targets of reference field. References are resolved after the tree is built
func (ld *load) deferRefs(obj store.ObjectID, field schema.FieldID, kind schema.Kind, fe *element) error {
	targets := make([]uuid.UUID, 0, len(fe.children))
	for _, le := range fe.children {
		if le.name != elemLink {
			return errMalformed("unexpected element «%s», expected «%s»", le.name, elemLink)
		}
		t, ok := le.attr(attrTarget)
		if !ok {
			return errMissingAttr(attrTarget)
		}
		g, err := parseGuid(t)
		if err != nil {
			return err
		}
		targets = append(targets, g)
	}
	if len(targets) == 0 {
		return nil
	}

	if kind.IsAtomic() {
		if len(targets) > 1 {
			return errMalformed("atomic field has %d links", len(targets))
		}
		ld.atomic = append(ld.atomic, deferredRef{obj: obj, field: field, targets: targets, line: fe.line})
		return nil
	}

	k := fieldRef{obj, field}
	if i, ok := ld.vectorIdx[k]; ok {
		ld.vectors[i].targets = append(ld.vectors[i].targets, targets...)
		return nil
	}
	ld.vectorIdx[k] = len(ld.vectors)
	ld.vectors = append(ld.vectors, deferredRef{obj: obj, field: field, targets: targets, line: fe.line})
	return nil
}
