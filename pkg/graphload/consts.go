/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

// Defaults, see options
const (
	DefaultRootClass          = "LangProject"
	DefaultWritingSystemClass = "LgWritingSystem"
	DefaultWritingSystemCode  = "ICULocale"
	DefaultFieldCacheSize     = 4096
)

// Data document element names
const (
	elemAdditionalFields = "AdditionalFields"
	elemCustomField      = "CustomField"

	elemBoolean = "Boolean"
	elemInteger = "Integer"
	elemGenDate = "GenDate"
	elemTime    = "Time"
	elemNumeric = "Numeric"
	elemFloat   = "Float"
	elemGuid    = "Guid"
	elemBinary  = "Binary"
	elemUni     = "Uni"
	elemStr     = "Str"
	elemRun     = "Run"
	elemAStr    = "AStr"
	elemAUni    = "AUni"
	elemLink    = "Link"
)

// Data document attribute names
const (
	attrID        = "id"
	attrVal       = "val"
	attrWS        = "ws"
	attrTarget    = "target"
	attrClass     = "class"
	attrName      = "name"
	attrType      = "type"
	attrDestClass = "destclass"
)

// Accepted layouts of Time values
var timeLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
}

// Legacy guid prefix
const guidPrefix = "I"
