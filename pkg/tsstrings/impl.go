/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package tsstrings

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/exp/maps"
	"golang.org/x/text/unicode/norm"
)

type tsString struct {
	runs   []Run
	text   string
	length int
}

func newTsString(runs []Run) *tsString {
	s := &tsString{}
	for _, r := range runs {
		if r.Text == "" && len(runs) > 1 {
			continue
		}
		if n := len(s.runs); n > 0 && s.runs[n-1].WS == r.WS && maps.Equal(s.runs[n-1].Props, r.Props) {
			s.runs[n-1].Text += r.Text
			continue
		}
		s.runs = append(s.runs, r)
	}

	b := strings.Builder{}
	for _, r := range s.runs {
		b.WriteString(r.Text)
	}
	s.text = b.String()
	s.length = utf16Len(s.text)
	return s
}

func (s *tsString) Text() string { return s.text }

func (s *tsString) Length() int { return s.length }

func (s *tsString) RunCount() int { return len(s.runs) }

func (s *tsString) Run(i int) Run {
	r := s.runs[i]
	r.Props = maps.Clone(r.Props)
	return r
}

func (s *tsString) WS() WS {
	if len(s.runs) == 0 {
		return 0
	}
	return s.runs[0].WS
}

func (s *tsString) String() string {
	if len(s.runs) == 1 {
		return fmt.Sprintf("%q (ws %d)", s.text, s.runs[0].WS)
	}
	return fmt.Sprintf("%q (%d runs)", s.text, len(s.runs))
}

func utf16Len(s string) (n int) {
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

type runBuilder struct{}

func (runBuilder) BuildFromRuns(resolve WSResolver, elems []RunElement) (ITsString, error) {
	runs := make([]Run, 0, len(elems))
	for i, e := range elems {
		ws, ok := resolve(e.WSCode)
		if !ok {
			return nil, fmt.Errorf("run %d writing system «%s»: %w", i, e.WSCode, ErrUnknownWritingSystem)
		}
		runs = append(runs, Run{
			Text:  norm.NFD.String(e.Text),
			WS:    ws,
			Props: maps.Clone(e.Props),
		})
	}
	return newTsString(runs), nil
}
