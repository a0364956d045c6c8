/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/voedger/objstore/pkg/schema"
)

func newFieldsCmd() *cobra.Command {
	var (
		inherited bool
		kinds     string
	)
	cmd := &cobra.Command{
		Use:   "fields <class>",
		Short: "Prints fields of class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, ok := schema.ParseKindMask(kinds)
			if !ok {
				return fmt.Errorf("«%s»: %w", kinds, ErrInvalidKindMask)
			}

			reg, err := loadSchema(cmd)
			if err != nil {
				return err
			}
			class, ok := reg.ClassID(args[0])
			if !ok {
				return fmt.Errorf("«%s»: %w", args[0], ErrClassNotFound)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tName\tKind\tDestination\tProvenance")
			for _, id := range reg.FieldsOf(class, inherited, mask) {
				f, _ := reg.Field(id)
				dest := ""
				if f.Kind().IsObject() {
					dest = f.DestinationName()
				}
				fmt.Fprintf(w, "%d\t%s\t%v\t%s\t%v\n", id, reg.FieldName(id), f.Kind(), dest, f.Provenance())
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&inherited, "inherited", false, "Include fields of superclasses")
	cmd.Flags().StringVar(&kinds, "kind", "all", "Comma separated kind masks (basic, strings, multi, owning, reference, object, atomic, vector) or kind names")
	return cmd
}
