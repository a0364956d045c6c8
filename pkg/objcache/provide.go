/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

import "github.com/voedger/objstore/pkg/objcache/internal/hashicorp"

// Creates and returns new LRU cache with K key type and V value type.
//
// Maximum cache size is limited by size param. Optional onEvicted cb is called when some value is evicted.
// Panics if size is not positive.
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	return hashicorp.New[K, V](size, onEvicted)
}
