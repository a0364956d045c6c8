/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/objstore/pkg/graphload"
)

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Loads schema and data documents and prints load statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}
			res, err := loadDocuments(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, green("loaded"))
			fmt.Fprintf(out, "classes:         %d\n", res.Registry.ClassCount())
			fmt.Fprintf(out, "fields:          %d\n", res.Registry.FieldCount())
			fmt.Fprintf(out, "objects:         %d\n", res.Stats.Objects)
			fmt.Fprintf(out, "writing systems: %d\n", res.Stats.WritingSystems)
			fmt.Fprintf(out, "custom fields:   %d\n", res.Stats.CustomFields)
			fmt.Fprintf(out, "atomic refs:     %d\n", res.Stats.AtomicRefs)
			fmt.Fprintf(out, "vector refs:     %d\n", res.Stats.VectorRefs)
			if res.Stats.Dangling > 0 {
				fmt.Fprintf(out, "dangling refs:   %s\n", yellow(res.Stats.Dangling))
			} else {
				fmt.Fprintf(out, "dangling refs:   %d\n", res.Stats.Dangling)
			}
			if res.Root != 0 {
				fmt.Fprintf(out, "root:            %v\n", res.Root)
			}
			return nil
		},
	}
}

func loadDocuments(cfg *config) (*graphload.Result, error) {
	if err := cfg.requireData(); err != nil {
		return nil, err
	}
	return cfg.loader().LoadFiles(cfg.Schema, cfg.Data)
}
