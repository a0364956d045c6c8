/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

// Creates and returns new registry, which contains only the root class with bookkeeping fields
func New() *Registry {
	return newRegistry()
}
