/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"fmt"
	"strconv"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objstore/pkg/schema"
)

// Registers custom fields declared by «AdditionalFields» element.
//
//	<AdditionalFields>
//	  <CustomField class="LexEntry" name="Etymology" type="String"/>
//	  <CustomField class="LexEntry" name="Related" type="ReferenceCollection" destclass="LexEntry"/>
//	</AdditionalFields>
//
// Type is kind name or kind number.
func (ld *load) addCustomFields(e *element) error {
	for _, cf := range e.children {
		if cf.name != elemCustomField {
			return ld.fail(cf, "", "", errMalformed("unexpected element in «%s»", elemAdditionalFields))
		}

		class, ok := cf.attr(attrClass)
		if !ok {
			return ld.fail(cf, "", "", errMissingAttr(attrClass))
		}
		name, ok := cf.attr(attrName)
		if !ok {
			return ld.fail(cf, class, "", errMissingAttr(attrName))
		}
		typ, ok := cf.attr(attrType)
		if !ok {
			return ld.fail(cf, class, name, errMissingAttr(attrType))
		}
		kind, ok := parseKind(typ)
		if !ok {
			return ld.fail(cf, class, name, errMalformed("unknown field type «%s»", typ))
		}
		dest, _ := cf.attr(attrDestClass)

		id, err := ld.reg.AddCustomField(class, name, kind, dest)
		if err != nil {
			return ld.fail(cf, class, name, err)
		}
		ld.stats.CustomFields++
		logger.Verbose(fmt.Sprintf("custom field %s added, ID %d", ld.reg.FieldName(id), id))
	}
	return nil
}

// Parses kind name or kind number
func parseKind(s string) (schema.Kind, bool) {
	if k, ok := schema.ParseKind(s); ok {
		return k, true
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return schema.Kind_null, false
	}
	k := schema.Kind(n)
	return k, k.IsValid()
}
