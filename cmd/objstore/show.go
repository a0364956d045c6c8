/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/voedger/objstore/pkg/graphload"
	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/store"
	"github.com/voedger/objstore/pkg/tsstrings"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <guid>",
		Short: "Loads documents and prints stored fields of object with specified guid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}

			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}
			res, err := loadDocuments(cfg)
			if err != nil {
				return err
			}

			obj, ok := res.Store.ObjectByGuid(g)
			if !ok {
				return fmt.Errorf("guid %v: %w", g, ErrObjectNotFound)
			}
			printObject(cmd.OutOrStdout(), res, obj, cfg.WSCodeField)
			return nil
		},
	}
}

func printObject(out io.Writer, res *graphload.Result, obj store.ObjectID, wsCodeField string) {
	reg, st := res.Registry, res.Store

	class, _ := st.ClassOf(obj)
	name, _ := reg.ClassName(class)
	fmt.Fprintf(out, "%v %s\n", obj, cyan(name))

	st.Values(obj, func(field schema.FieldID, v store.Value) {
		fmt.Fprintf(out, "  %s: %v\n", reg.FieldName(field), v)
	})

	for _, field := range reg.FieldsOf(class, true, schema.MaskMulti) {
		alts := st.Alternatives(obj, field)
		wss := make([]tsstrings.WS, 0, len(alts))
		for ws := range alts {
			wss = append(wss, ws)
		}
		slices.Sort(wss)
		for _, ws := range wss {
			fmt.Fprintf(out, "  %s[%s]: %q\n", reg.FieldName(field), wsName(res, ws, wsCodeField), alts[ws].Text())
		}
	}
}

// Returns code of writing system. Returns writing system ID if code is not available
func wsName(res *graphload.Result, ws tsstrings.WS, wsCodeField string) string {
	obj := store.ObjectID(ws)
	if class, ok := res.Store.ClassOf(obj); ok {
		if f, ok := res.Registry.FieldIDByClass(class, wsCodeField, true); ok {
			if code, err := res.Store.Unicode(obj, f); err == nil {
				return code
			}
		}
	}
	return strconv.Itoa(int(ws))
}
