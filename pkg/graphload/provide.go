/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

// Creates and returns new graph loader.
//
// Loader is reusable: every Load call runs on its own state and produces new registry and store.
func New(opts ...Option) *Loader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Loader{opts: o}
}
