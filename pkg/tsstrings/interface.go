/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package tsstrings

import "fmt"

// Writing system identifier: hvo of writing system object in property store
type WS int32

// Formatted string: sequence of text runs, each with writing system and formatting properties.
//
// ITsString is immutable.
type ITsString interface {
	fmt.Stringer

	// Returns text of all runs
	Text() string

	// Returns length of text in UTF-16 code units
	Length() int

	RunCount() int

	// Returns copy of run by index. Panics if index is out of range
	Run(int) Run

	// Returns writing system of first run. Returns zero if string has no runs
	WS() WS
}

// Resolves writing system code to writing system
type WSResolver func(code string) (WS, bool)

// Builds formatted strings from serialized run descriptions
type IRunBuilder interface {
	// Builds formatted string from runs.
	//
	// Writing system codes of runs are resolved by resolver. Returns ErrUnknownWritingSystem
	// if code is not resolved.
	BuildFromRuns(WSResolver, []RunElement) (ITsString, error)
}
