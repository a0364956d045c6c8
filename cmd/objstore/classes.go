/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voedger/objstore/pkg/schema"
)

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes [class]",
		Short: "Prints class hierarchy of schema document, starting from the root class or specified class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadSchema(cmd)
			if err != nil {
				return err
			}

			top := schema.RootClassID
			if len(args) > 0 {
				c, ok := reg.ClassID(args[0])
				if !ok {
					return fmt.Errorf("«%s»: %w", args[0], ErrClassNotFound)
				}
				top = c
			}

			printHierarchy(cmd.OutOrStdout(), reg, top, 0)
			return nil
		},
	}
}

func printHierarchy(out io.Writer, reg *schema.Registry, id schema.ClassID, depth int) {
	c, _ := reg.Class(id)
	line := fmt.Sprintf("%s%s (%d)", strings.Repeat("  ", depth), c.Name(), c.ID())
	if c.Abstract() {
		line += " " + cyan("abstract")
	}
	fmt.Fprintln(out, line)
	for _, sub := range reg.DirectSubclasses(id) {
		printHierarchy(out, reg, sub, depth+1)
	}
}

// Reads configuration and loads schema document
func loadSchema(cmd *cobra.Command) (*schema.Registry, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.requireSchema(); err != nil {
		return nil, err
	}

	f, err := os.Open(cfg.Schema)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reg := schema.New()
	if err := reg.Load(f, true); err != nil {
		return nil, err
	}
	return reg, reg.CheckComplete()
}
