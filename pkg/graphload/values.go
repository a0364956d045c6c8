/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voedger/objstore/pkg/schema"
	"github.com/voedger/objstore/pkg/store"
	"github.com/voedger/objstore/pkg/tsstrings"
)

// Returns single value holder of field element. Returns nil if field element is empty.
// Holder name must be expected
func (ld *load) holder(fe *element, expected string) (*element, error) {
	switch len(fe.children) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, errMalformed("field has %d value elements", len(fe.children))
	}
	h := fe.children[0]
	if h.name != expected {
		return nil, errMalformed("unexpected value element «%s», expected «%s»", h.name, expected)
	}
	return h, nil
}

// Returns «val» attribute of holder
func val(h *element) (string, error) {
	v, ok := h.attr(attrVal)
	if !ok {
		return "", errMissingAttr(attrVal)
	}
	return v, nil
}

// Value holder element name by field kind
var holders = map[schema.Kind]string{
	schema.Kind_Boolean:    elemBoolean,
	schema.Kind_Integer:    elemInteger,
	schema.Kind_GenDate:    elemGenDate,
	schema.Kind_Numeric:    elemNumeric,
	schema.Kind_Time:       elemTime,
	schema.Kind_Float:      elemFloat,
	schema.Kind_Guid:       elemGuid,
	schema.Kind_Binary:     elemBinary,
	schema.Kind_Image:      elemBinary,
	schema.Kind_Unicode:    elemUni,
	schema.Kind_BigUnicode: elemUni,
	schema.Kind_String:     elemStr,
	schema.Kind_BigString:  elemStr,
}

// Loads basic or string field
func (ld *load) loadScalar(obj store.ObjectID, field schema.FieldID, kind schema.Kind, fe *element) error {
	name, ok := holders[kind]
	if !ok {
		return errMalformed("field of kind %v can not be loaded", kind)
	}
	h, err := ld.holder(fe, name)
	if err != nil || h == nil {
		return err
	}

	v, err := ld.scalar(kind, h)
	if err != nil {
		return err
	}
	return ld.st.Set(obj, field, v)
}

func (ld *load) scalar(kind schema.Kind, h *element) (store.Value, error) {
	switch kind {
	case schema.Kind_Unicode, schema.Kind_BigUnicode:
		return store.Unicode(h.text.String()), nil
	case schema.Kind_String, schema.Kind_BigString:
		s, err := ld.runs(h)
		if err != nil {
			return nil, err
		}
		return store.Text{ITsString: s}, nil
	case schema.Kind_Binary, schema.Kind_Image:
		b, err := hex.DecodeString(strings.Join(strings.Fields(h.text.String()), ""))
		if err != nil {
			return nil, errMalformed("invalid binary: %v", err)
		}
		return store.Binary(b), nil
	}

	s, err := val(h)
	if err != nil {
		return nil, err
	}
	switch kind {
	case schema.Kind_Boolean:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, errMalformed("invalid boolean «%s»", s)
		}
		return store.Bool(b), nil
	case schema.Kind_Integer, schema.Kind_GenDate:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, errMalformed("invalid integer «%s»", s)
		}
		return store.Int(n), nil
	case schema.Kind_Numeric:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errMalformed("invalid numeric «%s»", s)
		}
		return store.Int64(n), nil
	case schema.Kind_Time:
		t, err := parseTime(s)
		if err != nil {
			return nil, err
		}
		return store.Int64(t.UnixMilli()), nil
	case schema.Kind_Float:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errMalformed("invalid float «%s»", s)
		}
		return store.Float(f), nil
	case schema.Kind_Guid:
		g, err := parseGuid(s)
		if err != nil {
			return nil, err
		}
		return store.Guid(g), nil
	}
	return nil, errMalformed("field of kind %v can not be loaded", kind)
}

// Loads multi-string alternatives: «AStr» for formatted kinds, «AUni» for plain ones
func (ld *load) loadAlternatives(obj store.ObjectID, field schema.FieldID, kind schema.Kind, fe *element) error {
	expected := elemAStr
	if kind == schema.Kind_MultiUnicode || kind == schema.Kind_MultiBigUnicode {
		expected = elemAUni
	}
	for _, ae := range fe.children {
		if ae.name != expected {
			return errMalformed("unexpected alternative element «%s», expected «%s»", ae.name, expected)
		}
		code, ok := ae.attr(attrWS)
		if !ok {
			return errMissingAttr(attrWS)
		}
		ws, err := ld.ws(code)
		if err != nil {
			return err
		}

		var s tsstrings.ITsString
		if expected == elemAUni {
			s = tsstrings.FromString(ae.text.String(), ws)
		} else if s, err = ld.runs(ae); err != nil {
			return err
		}
		if err := ld.st.SetMultiString(obj, field, ws, s); err != nil {
			return err
		}
	}
	return nil
}

// Builds formatted string from «Run» children of element
func (ld *load) runs(e *element) (tsstrings.ITsString, error) {
	runs := make([]tsstrings.RunElement, 0, len(e.children))
	for _, re := range e.children {
		if re.name != elemRun {
			return nil, errMalformed("unexpected element «%s», expected «%s»", re.name, elemRun)
		}
		r := tsstrings.RunElement{Text: re.text.String()}
		for name, v := range re.attrs {
			if name == attrWS {
				r.WSCode = v
				continue
			}
			if r.Props == nil {
				r.Props = make(map[string]string)
			}
			r.Props[name] = v
		}
		if r.WSCode == "" {
			return nil, errMissingAttr(attrWS)
		}
		runs = append(runs, r)
	}

	s, err := ld.opts.runBuilder.BuildFromRuns(ld.resolveWS, runs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, ErrMalformedDocument)
	}
	return s, nil
}

// Resolves writing system code
func (ld *load) ws(code string) (tsstrings.WS, error) {
	if ws, ok := ld.resolveWS(code); ok {
		return ws, nil
	}
	return 0, fmt.Errorf("«%s»: %w: %w", code, tsstrings.ErrUnknownWritingSystem, ErrMalformedDocument)
}

// Parses guid. Legacy «I» prefix is accepted
func parseGuid(s string) (uuid.UUID, error) {
	g, err := uuid.Parse(strings.TrimPrefix(s, guidPrefix))
	if err != nil {
		return uuid.Nil, errMalformed("invalid guid «%s»", s)
	}
	return g, nil
}

// Parses time in one of accepted layouts. Time without zone is UTC
func parseTime(s string) (time.Time, error) {
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errMalformed("invalid time «%s»", s)
}
