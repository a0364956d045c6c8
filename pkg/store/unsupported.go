/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

import (
	"fmt"

	"github.com/voedger/objstore/pkg/schema"
)

// Edit-time operations. Store does not implement them, all return ErrUnsupported

func (s *Store) DeleteObject(ObjectID) error {
	return fmt.Errorf(errUnsupportedOperation, "delete object", ErrUnsupported)
}

func (s *Store) DeleteOwned(owner ObjectID, field schema.FieldID, obj ObjectID) error {
	return fmt.Errorf(errUnsupportedOperation, "delete owned object", ErrUnsupported)
}

func (s *Store) MoveOwned(src ObjectID, srcField schema.FieldID, start, end int, dst ObjectID, dstField schema.FieldID, dstStart int) error {
	return fmt.Errorf(errUnsupportedOperation, "move owned objects", ErrUnsupported)
}

func (s *Store) Undo() error {
	return fmt.Errorf(errUnsupportedOperation, "undo", ErrUnsupported)
}

func (s *Store) Redo() error {
	return fmt.Errorf(errUnsupportedOperation, "redo", ErrUnsupported)
}

func (s *Store) PropChanged(obj ObjectID, field schema.FieldID, ivMin, cvIns, cvDel int) error {
	return fmt.Errorf(errUnsupportedOperation, "change notification", ErrUnsupported)
}

// Subscribes to change notifications. Store never sends notifications, so this is no-op
func (s *Store) AddNotification(INotifyChange) {}

// Unsubscribes from change notifications. No-op, see AddNotification
func (s *Store) RemoveNotification(INotifyChange) {}
