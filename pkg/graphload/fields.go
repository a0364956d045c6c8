/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"strings"

	"github.com/voedger/objstore/pkg/schema"
)

// Returns field ID by class and field element name.
//
// Field element name is field name followed by optional decimal field number. Name without digits is tried first,
// then name as is. Results are cached by (class, name without digits).
func (ld *load) fieldID(class schema.ClassID, elemName string) (schema.FieldID, bool) {
	stem := fieldStem(elemName)
	k := fieldKey{class, stem}
	if id, ok := ld.fields.Get(k); ok {
		return id, true
	}
	if id, ok := ld.reg.FieldIDByClass(class, stem, true); ok {
		ld.fields.Put(k, id)
		return id, true
	}
	if stem != elemName {
		return ld.reg.FieldIDByClass(class, elemName, true)
	}
	return schema.NullFieldID, false
}

// Returns name with trailing decimal digits removed
func fieldStem(name string) string {
	stem := strings.TrimRight(name, "0123456789")
	if stem == "" {
		return name
	}
	return stem
}
