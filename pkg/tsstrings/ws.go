/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package tsstrings

import (
	"strings"

	"golang.org/x/text/language"
)

// Returns canonical form of writing system code.
//
// Codes which are valid BCP 47 tags are canonicalized, so «en_US», «EN-us» and «en-US» are the same.
// Other codes are returned trimmed.
func CanonicalWSCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return code
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}
