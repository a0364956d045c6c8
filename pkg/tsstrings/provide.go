/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package tsstrings

import "golang.org/x/text/unicode/norm"

// Returns default run builder. Run text is normalized to NFD
func New() IRunBuilder {
	return runBuilder{}
}

// Returns single-run string. Text is normalized to NFD
func FromString(text string, ws WS) ITsString {
	return newTsString([]Run{{Text: norm.NFD.String(text), WS: ws}})
}
