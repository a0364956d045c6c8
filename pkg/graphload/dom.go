/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Data document element
type element struct {
	name     string
	attrs    map[string]string
	children []*element
	text     strings.Builder
	line     int
}

func (e *element) attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Returns element text with surrounding whitespace trimmed
func (e *element) trimmedText() string {
	return strings.TrimSpace(e.text.String())
}

// Reads whole document into element tree. Returns document root element
func parseDocument(rd io.Reader) (*element, error) {
	d := xml.NewDecoder(rd)

	var (
		root  *element
		stack []*element
	)
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line, _ := d.InputPos()
			return nil, &LoadError{Stage: Stage_TreeBuilding, Line: line, Err: errMalformed("%v", err)}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := d.InputPos()
			e := &element{name: t.Name.Local, line: line}
			if len(t.Attr) > 0 {
				e.attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					e.attrs[a.Name.Local] = a.Value
				}
			}
			if n := len(stack); n > 0 {
				stack[n-1].children = append(stack[n-1].children, e)
			} else if root == nil {
				root = e
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if n := len(stack); n > 0 {
				stack[n-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, &LoadError{Stage: Stage_TreeBuilding, Err: errMalformed("document has no root element")}
	}
	return root, nil
}
