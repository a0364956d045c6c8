/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"
	"github.com/untillpro/goutils/logger"
)

//go:embed version
var version string

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func main() {
	logger.PrintLine = printLogLine
	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return cobrau.ExecCommandAndCatchInterrupt(newRootCmd(args, ver))
}

func newRootCmd(args []string, ver string) *cobra.Command {
	rootCmd := cobrau.PrepareRootCmd(
		"objstore",
		"Loads and inspects schema and data documents of the object store",
		args,
		ver,
		newLoadCmd(),
		newClassesCmd(),
		newFieldsCmd(),
		newShowCmd(),
	)
	addConfigFlags(rootCmd)
	return rootCmd
}

func printLogLine(level logger.TLogLevel, line string) {
	switch level {
	case logger.LogLevelError:
		fmt.Fprintln(os.Stderr, red(line))
	case logger.LogLevelWarning:
		fmt.Fprintln(os.Stderr, yellow(line))
	default:
		fmt.Fprintln(os.Stderr, line)
	}
}
