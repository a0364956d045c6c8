/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objstore/pkg/objcache"
	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/store"
	"github.com/voedger/objstore/pkg/tsstrings"
)

// Graph loader. Builds schema registry and property store from schema and data documents
type Loader struct {
	opts options
}

// Loads schema document into new registry, then loads data document into new store.
//
// Schema errors and malformed data document errors are fatal: no result is returned.
// References to unknown guids are omitted.
//
// Returned store has validation on.
func (l *Loader) Load(schemaDoc, dataDoc io.Reader) (*Result, error) {
	return newLoad(l.opts).run(schemaDoc, dataDoc)
}

// Loads schema and data documents from files, see Load
func (l *Loader) LoadFiles(schemaPath, dataPath string) (*Result, error) {
	sf, err := os.Open(schemaPath)
	if err != nil {
		return nil, err
	}
	defer sf.Close()

	df, err := os.Open(dataPath)
	if err != nil {
		return nil, err
	}
	defer df.Close()

	return l.Load(sf, df)
}

// State of single load
type load struct {
	opts  options
	stage Stage

	reg *schema.Registry
	st  *store.Store

	fields objcache.ICache[fieldKey, schema.FieldID]

	wsClass     schema.ClassID
	wsCodeField schema.FieldID
	wsByCode    map[string]tsstrings.WS
	wsObjects   map[*element]store.ObjectID
	resolveWS   tsstrings.WSResolver

	atomic    []deferredRef
	vectors   []deferredRef
	vectorIdx map[fieldRef]int

	root  store.ObjectID
	stats Stats
}

type fieldRef struct {
	obj   store.ObjectID
	field schema.FieldID
}

func newLoad(opts options) *load {
	ld := &load{
		opts:      opts,
		fields:    objcache.New[fieldKey, schema.FieldID](opts.fieldCacheSize, nil),
		wsByCode:  make(map[string]tsstrings.WS),
		wsObjects: make(map[*element]store.ObjectID),
		vectorIdx: make(map[fieldRef]int),
	}
	ld.resolveWS = func(code string) (tsstrings.WS, bool) {
		ws, ok := ld.wsByCode[tsstrings.CanonicalWSCode(code)]
		return ws, ok
	}
	return ld
}

func (ld *load) run(schemaDoc, dataDoc io.Reader) (*Result, error) {
	ld.enter(Stage_SchemaLoading)
	if err := ld.loadSchema(schemaDoc); err != nil {
		return nil, err
	}

	ld.enter(Stage_TreeBuilding)
	doc, err := parseDocument(dataDoc)
	if err != nil {
		return nil, err
	}

	storeOpts := ld.opts.storeOpts
	if ld.wsCodeField != schema.NullFieldID {
		storeOpts = append([]store.Option{store.WithWritingSystemClass(ld.wsClass)}, storeOpts...)
	}
	ld.st = store.New(ld.reg, storeOpts...)
	if err := ld.populate(doc); err != nil {
		return nil, err
	}

	ld.enter(Stage_Done)
	logger.Info("graph loaded:", ld.stats)

	return &Result{
		Registry: ld.reg,
		Store:    ld.st,
		Root:     ld.root,
		Stats:    ld.stats,
	}, nil
}

// Switches to next stage. Panics if stage is not next to current one
func (ld *load) enter(stage Stage) {
	if stage != ld.stage+1 {
		panic(fmt.Sprintf("graph loader can not switch from %v to %v", ld.stage, stage))
	}
	ld.stage = stage
	logger.Verbose("graph loader stage", stage)
}

func (ld *load) loadSchema(rd io.Reader) error {
	reg := schema.New()
	if err := reg.Load(rd, true); err != nil {
		return &LoadError{Stage: ld.stage, Err: err}
	}
	if err := reg.CheckComplete(); err != nil {
		return &LoadError{Stage: ld.stage, Err: err}
	}
	ld.reg = reg

	if c, ok := reg.ClassID(ld.opts.wsClass); ok {
		ld.wsClass = c
		if f, ok := reg.FieldIDByClass(c, ld.opts.wsCodeField, true); ok {
			ld.wsCodeField = f
		} else {
			logger.Warning(fmt.Sprintf("writing system class «%s» has no code field «%s», writing system codes are not available",
				ld.opts.wsClass, ld.opts.wsCodeField))
		}
	} else {
		logger.Verbose(fmt.Sprintf("schema has no writing system class «%s»", ld.opts.wsClass))
	}

	logger.Verbose(fmt.Sprintf("schema: %d classes, %d fields", reg.ClassCount(), reg.FieldCount()))
	return nil
}

// Builds tree and resolves references with validation suspended. Validation is restored on every exit
func (ld *load) populate(doc *element) error {
	defer ld.st.SuspendValidation()()

	if err := ld.buildTree(doc); err != nil {
		return err
	}

	ld.enter(Stage_ReferenceResolution)
	return ld.resolveRefs()
}

// Wraps err with context. Errors which already have context are returned as is
func (ld *load) fail(e *element, class, field string, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		return err
	}
	le = &LoadError{Stage: ld.stage, Class: class, Field: field, Err: err}
	if e != nil {
		le.Element, le.Line = e.name, e.line
	}
	return le
}
