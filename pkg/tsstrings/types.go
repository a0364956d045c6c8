/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package tsstrings

// Text run of formatted string
type Run struct {
	Text  string
	WS    WS
	Props map[string]string
}

// Serialized run description.
//
// WSCode is writing system code as it is written in document, Props are all other run attributes.
type RunElement struct {
	WSCode string
	Text   string
	Props  map[string]string
}
