/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"errors"
	"fmt"
	"strings"
)

// Umbrella error, wrapped by every data document error
var ErrLoad = errors.New("load error")

var ErrMalformedDocument = fmt.Errorf("%w: malformed document", ErrLoad)

var ErrMissingMandatoryAttribute = fmt.Errorf("%w: missing mandatory attribute", ErrLoad)

// Load error with context: stage, processed class and field, element and source line.
//
// Unwraps to cause, which may be schema, store or data document error.
type LoadError struct {
	Stage   Stage
	Class   string
	Field   string
	Element string
	Line    int
	Err     error
}

func (e *LoadError) Error() string {
	b := strings.Builder{}
	b.WriteString(e.Stage.String())
	if e.Line > 0 {
		fmt.Fprintf(&b, ", line %d", e.Line)
	}
	if e.Element != "" {
		fmt.Fprintf(&b, ", element «%s»", e.Element)
	}
	if e.Class != "" {
		fmt.Fprintf(&b, ", class «%s»", e.Class)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ", field «%s»", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

func errMissingAttr(attr string) error {
	return fmt.Errorf("attribute «%s»: %w", attr, ErrMissingMandatoryAttribute)
}

func errMalformed(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedDocument)
}
