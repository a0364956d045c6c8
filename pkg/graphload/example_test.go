/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload_test

import (
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objstore/pkg/graphload"
	"github.com/voedger/objstore/pkg/schema"
)

func ExampleLoader_Load() {
	logger.SetLogLevel(logger.LogLevelNone)
	defer logger.SetLogLevel(logger.LogLevelInfo)

	schemaDoc := `<EntireModel>
  <TestModule num="7">
    <class num="1" id="Root" base="CmObject">
      <props>
        <basic num="1" id="Name" sig="Unicode"/>
        <owning num="2" id="Kids" card="seq" sig="Child"/>
      </props>
    </class>
    <class num="2" id="Child" base="CmObject">
      <props>
        <basic num="1" id="Text" sig="Unicode"/>
      </props>
    </class>
  </TestModule>
</EntireModel>`

	dataDoc := `<FwDatabase>
  <Root id="33333333-0000-0000-0000-000000000001">
    <Name1><Uni>root</Uni></Name1>
    <Kids2>
      <Child id="33333333-0000-0000-0000-000000000002"><Text1><Uni>first</Uni></Text1></Child>
      <Child id="33333333-0000-0000-0000-000000000003"><Text1><Uni>second</Uni></Text1></Child>
    </Kids2>
  </Root>
</FwDatabase>`

	res, err := graphload.New(graphload.WithRootClass("Root")).Load(strings.NewReader(schemaDoc), strings.NewReader(dataDoc))
	if err != nil {
		panic(err)
	}

	reg, st := res.Registry, res.Store
	kidsField, _ := reg.FieldID("Root", "Kids", false)
	textField, _ := reg.FieldID("Child", "Text", false)

	kids, _ := st.Refs(res.Root, kidsField)
	for _, kid := range kids {
		text, _ := st.Unicode(kid, textField)
		ord, _ := st.Int(kid, schema.Field_OwnOrd)
		fmt.Println(kid, text, ord)
	}
	fmt.Println(res.Stats)

	// Output:
	// object «2» first 0
	// object «3» second 1
	// objects: 3, writing systems: 0, custom fields: 0, atomic refs: 0, vector refs: 0, dangling: 0
}
