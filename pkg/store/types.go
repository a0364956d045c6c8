/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"fmt"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/tsstrings"
)

// Object identifier (hvo). Process local, allocated by store, never reused within a store
type ObjectID int32

func (id ObjectID) String() string {
	return fmt.Sprintf("object «%d»", int32(id))
}

// Computes virtual field value.
//
// ws is writing system for multi-string fields and zero for others.
type VirtualFunc func(obj ObjectID, field schema.FieldID, ws tsstrings.WS) (Value, error)

// Change notification receiver. Registered receivers are never notified, see AddNotification
type INotifyChange interface {
	PropChanged(obj ObjectID, field schema.FieldID, ivMin, cvIns, cvDel int)
}

type propKey struct {
	obj   ObjectID
	field schema.FieldID
}

type virtualHook struct {
	compute            VirtualFunc
	recomputeEveryRead bool
}
