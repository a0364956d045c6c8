/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author Denis Gribanov
 */

package store

// Null object ID. Means «no reference» in atomic object-valued fields
const NullObjectID ObjectID = 0

// First allocated object ID
const FirstObjectID ObjectID = 1

// Positions for CreateOwned
const (
	// Owning atomic field slot
	PositionAtomic = -1

	// End of owning collection or sequence
	PositionAppend = -2
)
