/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Schema document.
//
//	<EntireModel>
//	  <CellarModule id="Ling" num="5">
//	    <class num="2" id="LexEntry" abstract="false" base="CmObject">
//	      <props>
//	        <basic num="1" id="Form" sig="Unicode"/>
//	        <owning num="2" id="Senses" card="seq" sig="LexSense"/>
//	        <rel num="3" id="Links" card="col" sig="LexEntry"/>
//	      </props>
//	    </class>
//	  </CellarModule>
//	</EntireModel>
//
// Module element name is not significant.
type xmlModel struct {
	Modules []xmlModule `xml:",any"`
}

type xmlModule struct {
	XMLName xml.Name
	ID      string     `xml:"id,attr"`
	Num     string     `xml:"num,attr"`
	Classes []xmlClass `xml:"class"`
}

type xmlClass struct {
	Num      string   `xml:"num,attr"`
	ID       string   `xml:"id,attr"`
	Abstract string   `xml:"abstract,attr"`
	Base     string   `xml:"base,attr"`
	Props    xmlProps `xml:"props"`
}

type xmlProps struct {
	Items []xmlProp `xml:",any"`
}

// Field element: «basic», «owning» or «rel»
type xmlProp struct {
	XMLName    xml.Name
	Num        string `xml:"num,attr"`
	ID         string `xml:"id,attr"`
	Sig        string `xml:"sig,attr"`
	Card       string `xml:"card,attr"`
	Big        string `xml:"big,attr"`
	UserLabel  string `xml:"userlabel,attr"`
	HelpString string `xml:"helpstring,attr"`
	XMLUI      string `xml:"xmlui,attr"`
	ListRoot   string `xml:"listroot,attr"`
	WSSelector string `xml:"wsselector,attr"`
}

const (
	propBasic  = "basic"
	propOwning = "owning"
	propRel    = "rel"
)

func decodeModel(rd io.Reader) (*xmlModel, error) {
	m := &xmlModel{}
	if err := xml.NewDecoder(rd).Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSchema, err)
	}
	return m, nil
}
