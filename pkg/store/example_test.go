/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/store"
)

func ExampleStore_CreateOwned() {
	reg := schema.New()
	if err := reg.Load(strings.NewReader(`<EntireModel><Ling num="5">
		<class num="1" id="Root" base="CmObject"><props>
			<basic num="1" id="Name" sig="Unicode"/>
			<owning num="2" id="Kids" card="seq" sig="Child"/>
		</props></class>
		<class num="2" id="Child" base="CmObject"><props>
			<basic num="1" id="Text" sig="Unicode"/>
		</props></class>
	</Ling></EntireModel>`), false); err != nil {
		panic(err)
	}

	rootClass, _ := reg.ClassID("Root")
	childClass, _ := reg.ClassID("Child")
	kids, _ := reg.FieldID("Root", "Kids", false)
	name, _ := reg.FieldID("Root", "Name", false)

	s := store.New(reg)

	root := s.Allocate()
	_ = s.SetInt(root, schema.Field_Class, int32(rootClass))
	_ = s.SetGuid(root, schema.Field_Guid, uuid.New())
	_ = s.SetUnicode(root, name, "root")

	second, _ := s.CreateOwned(childClass, root, kids, store.PositionAppend)
	first, _ := s.CreateOwned(childClass, root, kids, 0)

	v, _ := s.Refs(root, kids)
	fmt.Println("kids in order:", v[0] == first, v[1] == second)

	for _, kid := range v {
		ord, _ := s.Int(kid, schema.Field_OwnOrd)
		fmt.Println("OwnOrd:", ord)
	}

	err := s.SetInt(root, name, 1)
	fmt.Println("wrong kind rejected:", errors.Is(err, store.ErrTypeMismatch))

	// Output:
	// kids in order: true true
	// OwnOrd: 0
	// OwnOrd: 1
	// wrong kind rejected: true
}
