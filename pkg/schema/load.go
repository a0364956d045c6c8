/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/untillpro/goutils/logger"
)

// Loads schema document.
//
// If resetExisting then all prior definitions, virtual fields included, are discarded first,
// otherwise new classes and fields are merged with existing ones. Class re-declared
// with the same name and ID gets new fields merged in.
//
// Destination and superclass names are resolved after the document is applied;
// unresolved ones are retried by subsequent loads.
//
// If error is returned, registry stays unchanged.
func (r *Registry) Load(rd io.Reader, resetExisting bool) error {
	m, err := decodeModel(rd)
	if err != nil {
		return err
	}

	var next *Registry
	if resetExisting {
		next = newRegistry()
	} else {
		next = r.clone()
	}

	classes, fields, err := next.apply(m)
	if err != nil {
		return err
	}

	if err := next.resolve(); err != nil {
		return err
	}

	*r = *next

	logger.Verbose(fmt.Sprintf("schema loaded: %d classes, %d fields; registry has %d classes, %d fields",
		classes, fields, r.ClassCount(), r.FieldCount()))
	if p := r.PendingClasses(); len(p) > 0 {
		logger.Verbose(fmt.Sprintf("classes with unresolved superclass: %v", p))
	}

	return nil
}

// Applies document to registry. Returns count of classes and fields met in document
func (r *Registry) apply(m *xmlModel) (classes, fields int, err error) {
	inDoc := make(map[string]bool)

	for _, mod := range m.Modules {
		elem := fmt.Sprintf("module «%s»", mod.XMLName.Local)
		if mod.Num == "" {
			return 0, 0, errMissingAttr("num", elem)
		}
		modNum, err := parseNum(mod.Num, MaxModules)
		if err != nil {
			return 0, 0, errInvalidAttr("num", mod.Num, elem)
		}

		for i := range mod.Classes {
			xc := &mod.Classes[i]
			classes++
			c, err := r.applyClass(modNum, xc, inDoc)
			if err != nil {
				return 0, 0, err
			}
			for j := range xc.Props.Items {
				fields++
				if err := r.applyField(c, &xc.Props.Items[j]); err != nil {
					return 0, 0, err
				}
			}
		}
	}

	if classes == 0 {
		return 0, 0, ErrMissingClassListing
	}

	return classes, fields, nil
}

func (r *Registry) applyClass(modNum uint32, xc *xmlClass, inDoc map[string]bool) (*Class, error) {
	if xc.ID == "" {
		return nil, errMissingAttr("id", "class #%s", xc.Num)
	}
	elem := fmt.Sprintf("class «%s»", xc.ID)
	if xc.Num == "" {
		return nil, errMissingAttr("num", elem)
	}
	num, err := parseNum(xc.Num, ClassesPerModule)
	if err != nil {
		return nil, errInvalidAttr("num", xc.Num, elem)
	}
	isRoot := xc.ID == RootClassName
	if xc.Base == "" && !isRoot {
		return nil, errMissingAttr("base", elem)
	}
	abstract, err := parseBool(xc.Abstract)
	if err != nil {
		return nil, errInvalidAttr("abstract", xc.Abstract, elem)
	}

	if inDoc[xc.ID] {
		return nil, enrichError(ErrDuplicateClass, "%s repeats in document", elem)
	}
	inDoc[xc.ID] = true

	id := ClassID(modNum*ClassesPerModule + num)

	if exists, ok := r.classByName[xc.ID]; ok {
		if exists.id != id {
			return nil, enrichError(ErrDuplicateClass, "%s ID %d conflicts with registered %v", elem, id, exists)
		}
		return exists, nil
	}
	if exists, ok := r.classes[id]; ok {
		return nil, enrichError(ErrDuplicateClass, "%s ID %d is used by %v", elem, id, exists)
	}

	c := newClass(id, xc.ID, abstract, xc.Base)
	r.addClass(c)
	return c, nil
}

func (r *Registry) applyField(c *Class, xp *xmlProp) error {
	if xp.ID == "" {
		return errMissingAttr("id", "%s field #%s", c, xp.Num)
	}
	elem := fmt.Sprintf("%s field «%s»", c, xp.ID)
	if xp.Num == "" {
		return errMissingAttr("num", elem)
	}
	num, err := parseNum(xp.Num, FieldsPerClass)
	if err != nil || num == 0 {
		return errInvalidAttr("num", xp.Num, elem)
	}
	if xp.Sig == "" {
		return errMissingAttr("sig", elem)
	}

	kind, err := propKind(xp, elem)
	if err != nil {
		return err
	}

	id := FieldID(uint32(c.id)*FieldsPerClass + num)

	if exists, ok := r.fieldByName[fieldKey{c.id, xp.ID}]; ok {
		if exists.id == id && exists.kind == kind {
			return nil // merged again
		}
		return enrichError(ErrNameCollision, "%s conflicts with registered %v", elem, exists)
	}
	if exists, ok := r.fields[id]; ok {
		return enrichError(ErrIDCollision, "%s ID %d is used by %v", elem, id, exists)
	}

	f := newField(id, xp.ID, c.id, kind, Provenance_Model)
	f.big = isBigKind(kind)
	if kind.IsObject() {
		f.destName = xp.Sig
	}
	f.label = xp.UserLabel
	f.help = xp.HelpString
	f.xmlUI = xp.XMLUI
	f.listRoot = xp.ListRoot
	f.wsSelector = xp.WSSelector

	r.addField(f)
	return nil
}

// Returns field kind from field element name, «sig», «card» and «big» attributes
func propKind(xp *xmlProp, elem string) (Kind, error) {
	switch xp.XMLName.Local {
	case propBasic:
		k, ok := ParseKind(xp.Sig)
		if !ok || k.IsObject() {
			return Kind_null, errInvalidAttr("sig", xp.Sig, elem)
		}
		big, err := parseBool(xp.Big)
		if err != nil {
			return Kind_null, errInvalidAttr("big", xp.Big, elem)
		}
		if big {
			if bk, ok := bigKinds[k]; ok {
				k = bk
			}
		}
		return k, nil
	case propOwning, propRel:
		if xp.Card == "" {
			return Kind_null, errMissingAttr("card", elem)
		}
		kinds, ok := cardKinds[xp.Card]
		if !ok {
			return Kind_null, errInvalidAttr("card", xp.Card, elem)
		}
		if xp.XMLName.Local == propOwning {
			return kinds[0], nil
		}
		return kinds[1], nil
	}
	return Kind_null, enrichError(ErrMalformedSchema, "%s has unknown element name «%s»", elem, xp.XMLName.Local)
}

var bigKinds = map[Kind]Kind{
	Kind_String:       Kind_BigString,
	Kind_Unicode:      Kind_BigUnicode,
	Kind_MultiString:  Kind_MultiBigString,
	Kind_MultiUnicode: Kind_MultiBigUnicode,
}

func isBigKind(k Kind) bool {
	for _, bk := range bigKinds {
		if bk == k {
			return true
		}
	}
	return false
}

// owning and reference kinds by cardinality
var cardKinds = map[string][2]Kind{
	cardAtomic:     {Kind_OwningAtomic, Kind_ReferenceAtomic},
	cardCollection: {Kind_OwningCollection, Kind_ReferenceCollection},
	cardSequence:   {Kind_OwningSequence, Kind_ReferenceSequence},
}

// Parses non-negative number less than limit
func parseNum(s string, limit uint32) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if n >= uint64(limit) {
		return 0, errors.New("out of range")
	}
	return uint32(n), nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "", attrFalse:
		return false, nil
	case attrTrue:
		return true, nil
	}
	return false, errors.New("not a boolean")
}
