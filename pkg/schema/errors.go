/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

import (
	"errors"
	"fmt"
)

// Umbrella error, wrapped by every schema error
var ErrSchema = errors.New("schema error")

var ErrDuplicateClass = fmt.Errorf("%w: duplicate class", ErrSchema)

var ErrMissingClassListing = fmt.Errorf("%w: document declares no classes", ErrSchema)

var ErrMissingAttribute = fmt.Errorf("%w: missing attribute", ErrSchema)

var ErrInvalidAttribute = fmt.Errorf("%w: invalid attribute", ErrSchema)

var ErrUnresolvedSuperclass = fmt.Errorf("%w: unresolved superclass", ErrSchema)

var ErrInheritanceCycle = fmt.Errorf("%w: inheritance cycle", ErrUnresolvedSuperclass)

var ErrNameCollision = fmt.Errorf("%w: field name collision", ErrSchema)

var ErrIDCollision = fmt.Errorf("%w: field id collision", ErrSchema)

var ErrInvalidKind = fmt.Errorf("%w: invalid field kind", ErrSchema)

var ErrClassNotFound = fmt.Errorf("%w: class not found", ErrSchema)

var ErrMalformedSchema = fmt.Errorf("%w: malformed document", ErrSchema)

// Enriches err with formatted message
func enrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

func errMissingAttr(attr, elem string, args ...any) error {
	return enrichError(ErrMissingAttribute, "attribute «%s» of %s", attr, fmt.Sprintf(elem, args...))
}

func errInvalidAttr(attr, value, elem string, args ...any) error {
	return enrichError(ErrInvalidAttribute, "attribute «%s» value «%s» of %s", attr, value, fmt.Sprintf(elem, args...))
}
