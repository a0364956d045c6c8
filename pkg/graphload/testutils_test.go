/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/voedger/objstore/pkg/schema"
)

const (
	testSchemaFile = "schema.xml"
	testDataFile   = "data.xml"
)

const (
	clsRoot  schema.ClassID = 7001
	clsChild schema.ClassID = 7002

	fldWSCode    schema.FieldID = 1001
	fldWSName    schema.FieldID = 1002
	fldName      schema.FieldID = 7001001
	fldKids      schema.FieldID = 7001002
	fldBest      schema.FieldID = 7001003
	fldFavorites schema.FieldID = 7001004
	fldWSs       schema.FieldID = 7001005
	fldTitle     schema.FieldID = 7001006
	fldPinned    schema.FieldID = 7001007
	fldRelated   schema.FieldID = 7001501
	fldText      schema.FieldID = 7002001
	fldCount     schema.FieldID = 7002002
	fldActive    schema.FieldID = 7002003
	fldCreated   schema.FieldID = 7002004
	fldWeight    schema.FieldID = 7002005
	fldData      schema.FieldID = 7002006
	fldSource    schema.FieldID = 7002007
	fldComment   schema.FieldID = 7002008
	fldLabel     schema.FieldID = 7002009
	fldBig       schema.FieldID = 7002010
	fldDated     schema.FieldID = 7002011
	fldFriend    schema.FieldID = 7002012
	fldNote      schema.FieldID = 7002501
)

var (
	guidRoot    = uuid.MustParse("11111111-0000-0000-0000-000000000001")
	guidKid0    = uuid.MustParse("11111111-0000-0000-0000-000000000002")
	guidKid1    = uuid.MustParse("11111111-0000-0000-0000-000000000003")
	guidLoose   = uuid.MustParse("11111111-0000-0000-0000-000000000004")
	guidWSEn    = uuid.MustParse("11111111-0000-0000-0000-000000000010")
	guidWSFr    = uuid.MustParse("11111111-0000-0000-0000-000000000011")
	guidUnknown = uuid.MustParse("99999999-0000-0000-0000-000000000000")
)

func testSchema(t *testing.T) string {
	b, err := os.ReadFile(filepath.Join("testdata", testSchemaFile))
	require.NoError(t, err)
	return string(b)
}

func testLoader(opts ...Option) *Loader {
	return New(append([]Option{WithRootClass("Root")}, opts...)...)
}

// Loads data document against test schema
func testLoad(t *testing.T, data string, opts ...Option) (*Result, error) {
	return testLoader(opts...).Load(strings.NewReader(testSchema(t)), strings.NewReader(data))
}

// Wraps objects into data document with «en» writing system
func testDoc(objects ...string) string {
	b := strings.Builder{}
	b.WriteString("<FwDatabase>\n")
	b.WriteString(`<LgWritingSystem id="22222222-0000-0000-0000-000000000001"><ICULocale><Uni>en</Uni></ICULocale></LgWritingSystem>` + "\n")
	for _, o := range objects {
		b.WriteString(o)
		b.WriteString("\n")
	}
	b.WriteString("</FwDatabase>\n")
	return b.String()
}
