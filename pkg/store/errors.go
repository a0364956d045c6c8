/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"errors"
	"fmt"
)

// Umbrella error, wrapped by every store error
var ErrStore = errors.New("store error")

var ErrUnknownField = fmt.Errorf("%w: unknown field", ErrStore)

var ErrTypeMismatch = fmt.Errorf("%w: type mismatch", ErrStore)

var ErrInvalidReference = fmt.Errorf("%w: invalid reference", ErrStore)

var ErrNotOwned = fmt.Errorf("%w: inconsistent ownership", ErrStore)

var ErrGuidImmutable = fmt.Errorf("%w: guid is immutable", ErrStore)

var ErrDuplicateGuid = fmt.Errorf("%w: guid is used by other object", ErrStore)

var ErrNotFound = fmt.Errorf("%w: value not found", ErrStore)

var ErrInvalidDestination = fmt.Errorf("%w: class is not assignable to owning field", ErrStore)

var ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrStore)

var ErrVirtualRedefined = fmt.Errorf("%w: virtual field hook can not be redefined", ErrStore)

// Returned by edit-time operations, which are not implemented by store
var ErrUnsupported = fmt.Errorf("%w: %w", ErrStore, errors.ErrUnsupported)

const (
	errUnknownFieldID        = "field «%d» is unknown: %w"
	errFieldNotInClass       = "%v of class «%d» has no field «%s»: %w"
	errNoClass               = "%v has no class, field «%s» can not be set: %w"
	errNoGuid                = "%v has no guid, field «%s» can not be set: %w"
	errWrongVariant          = "%v field «%s» of kind %v can not store %v value: %w"
	errUnknownClass          = "%v class «%d» is not registered: %w"
	errRefInvalidObject      = "%v field «%s» refers to %v, which is not valid object: %w"
	errRefNotAssignable      = "%v field «%s» refers to %v of class «%d», which is not assignable: %w"
	errOwnerInvalid          = "%v owner %v is not valid object: %w"
	errOwnFlidNotOwning      = "%v owned by field «%s» of kind %v, which is not owning kind: %w"
	errOwnFlidNotInClass     = "%v owned by %v of class «%d» by field «%s», which is not declared by the class: %w"
	errOwnFlidNotAssignable  = "%v of class «%d» can not be owned by field «%s»: %w"
	errOwnedElsewhere        = "%v is already owned by %v field «%s»: %w"
	errOwnedTwice            = "%v is already in %v field «%s»: %w"
	errGuidChange            = "%v guid «%v» can not be set again to «%v»: %w"
	errGuidUsed              = "%v guid «%v» is used by %v: %w"
	errValueNotFound         = "%v field «%s» has no value: %w"
	errNotVectorField        = "%v field «%s» of kind %v is not vector: %w"
	errReplaceRange          = "%v field «%s» replace range [%d, %d) is out of range [0, %d]: %w"
	errPositionMismatch      = "position %d does not fit field «%s» of kind %v: %w"
	errNotMultiField         = "%v field «%s» of kind %v is not multi-string: %w"
	errMultiOnly             = "%v field «%s» of kind %v stores alternatives, use multi-string methods: %w"
	errInvalidWS             = "%v field «%s» writing system %v is not valid object: %w"
	errNotWSClass            = "%v field «%s» writing system %v is of class «%d», which is not writing system class: %w"
	errNotOwningField        = "field «%s» of kind %v is not owning: %w"
	errCreateOwnerInvalid    = "owner %v is not valid object: %w"
	errCreateUnknownClass    = "class «%d» is not registered: %w"
	errCreateNotAssignable   = "class «%d» is not assignable to field «%s»: %w"
	errPositionRange         = "position %d is out of field «%s» range [0, %d]: %w"
	errUnsupportedOperation  = "%s: %w"
	errVirtualFieldCompute   = "%v virtual field «%s»: %w"
	errVirtualHookRegistered = "virtual field «%s» hook is already registered: %w"
)
