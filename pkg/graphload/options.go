/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"github.com/voedger/objstore/pkg/store"
	"github.com/voedger/objstore/pkg/tsstrings"
)

type Option func(*options)

type options struct {
	rootClass      string
	wsClass        string
	wsCodeField    string
	runBuilder     tsstrings.IRunBuilder
	fieldCacheSize int
	storeOpts      []store.Option
}

func defaultOptions() options {
	return options{
		rootClass:      DefaultRootClass,
		wsClass:        DefaultWritingSystemClass,
		wsCodeField:    DefaultWritingSystemCode,
		runBuilder:     tsstrings.New(),
		fieldCacheSize: DefaultFieldCacheSize,
	}
}

// Class of designated root object, loaded last
func WithRootClass(name string) Option {
	return func(o *options) { o.rootClass = name }
}

// Class of writing system objects, loaded first
func WithWritingSystemClass(name string) Option {
	return func(o *options) { o.wsClass = name }
}

// Unicode field of writing system class, which keeps writing system code
func WithWritingSystemCodeField(name string) Option {
	return func(o *options) { o.wsCodeField = name }
}

// Builder of formatted strings from runs
func WithRunBuilder(b tsstrings.IRunBuilder) Option {
	return func(o *options) { o.runBuilder = b }
}

// Size of (class, field name) lookup cache
func WithFieldCacheSize(size int) Option {
	return func(o *options) { o.fieldCacheSize = size }
}

// Options of created property store
func WithStoreOptions(opts ...store.Option) Option {
	return func(o *options) { o.storeOpts = append(o.storeOpts, opts...) }
}
