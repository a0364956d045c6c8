/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

// Bounded objects cache.
//
// Least recently used values are evicted when cache is full.
type ICache[K comparable, V any] interface {
	// Returns value by key. Returns false and zero value if key is not cached
	Get(K) (value V, ok bool)

	// Puts value with key. Returns true if some value was evicted
	Put(K, V) (evicted bool)

	// Returns count of cached values
	Len() int
}
