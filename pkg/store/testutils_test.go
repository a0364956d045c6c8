/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/voedger/objstore/pkg/schema"
)

const testSchema = `<EntireModel>
  <CellarModule num="0">
    <class num="1" id="LgWritingSystem" base="CmObject">
      <props>
        <basic num="1" id="Code" sig="Unicode"/>
      </props>
    </class>
  </CellarModule>
  <LingModule num="5">
    <class num="1" id="LangProject" base="CmObject">
      <props>
        <owning num="1" id="Entries" card="col" sig="LexEntry"/>
        <owning num="2" id="WritingSystems" card="col" sig="LgWritingSystem"/>
        <owning num="3" id="Featured" card="atomic" sig="LexEntry"/>
      </props>
    </class>
    <class num="2" id="LexEntry" base="CmObject">
      <props>
        <basic num="1" id="Form" sig="Unicode"/>
        <owning num="2" id="Senses" card="seq" sig="LexSense"/>
        <rel num="3" id="Main" card="atomic" sig="LexEntry"/>
        <basic num="4" id="Homograph" sig="Integer"/>
        <basic num="5" id="Excluded" sig="Boolean"/>
        <basic num="6" id="Comment" sig="String"/>
        <basic num="7" id="Created" sig="Time"/>
        <basic num="8" id="Weight" sig="Float"/>
        <basic num="9" id="Photo" sig="Binary"/>
        <basic num="10" id="Source" sig="Guid"/>
        <rel num="11" id="Variants" card="seq" sig="LexEntry"/>
        <basic num="12" id="Citation" sig="MultiUnicode"/>
        <basic num="13" id="Frequency" sig="Numeric"/>
        <basic num="14" id="Dated" sig="GenDate"/>
      </props>
    </class>
    <class num="3" id="LexSense" base="CmObject">
      <props>
        <basic num="1" id="Gloss" sig="Unicode"/>
        <owning num="2" id="Subsenses" card="seq" sig="LexSense"/>
      </props>
    </class>
    <class num="4" id="LexSubentry" base="LexEntry"/>
  </LingModule>
</EntireModel>`

const (
	clsWS         schema.ClassID = 1
	clsProject    schema.ClassID = 5001
	clsEntry      schema.ClassID = 5002
	clsSense      schema.ClassID = 5003
	clsSubentry   schema.ClassID = 5004
	fldWSCode     schema.FieldID = 1001
	fldEntries    schema.FieldID = 5001001
	fldWSs        schema.FieldID = 5001002
	fldFeatured   schema.FieldID = 5001003
	fldForm       schema.FieldID = 5002001
	fldSenses     schema.FieldID = 5002002
	fldMain       schema.FieldID = 5002003
	fldHomograph  schema.FieldID = 5002004
	fldExcluded   schema.FieldID = 5002005
	fldComment    schema.FieldID = 5002006
	fldCreated    schema.FieldID = 5002007
	fldWeight     schema.FieldID = 5002008
	fldPhoto      schema.FieldID = 5002009
	fldSource     schema.FieldID = 5002010
	fldVariants   schema.FieldID = 5002011
	fldCitation   schema.FieldID = 5002012
	fldFrequency  schema.FieldID = 5002013
	fldDated      schema.FieldID = 5002014
	fldGloss      schema.FieldID = 5003001
	fldSubsenses  schema.FieldID = 5003002
	fldUnknownFld schema.FieldID = 999999
)

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	r := schema.New()
	require.NoError(t, r.Load(strings.NewReader(testSchema), false))
	return r
}

func testStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	return New(testRegistry(t), opts...)
}

// Creates ownerless object of class with random guid
func newObject(t *testing.T, s *Store, class schema.ClassID) ObjectID {
	t.Helper()
	obj := s.Allocate()
	require.NoError(t, s.SetInt(obj, schema.Field_Class, int32(class)))
	require.NoError(t, s.SetGuid(obj, schema.Field_Guid, uuid.New()))
	return obj
}
