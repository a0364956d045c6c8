/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testWSClass      ClassID = 1
	testPossibility  ClassID = 2
	testSemDomain    ClassID = 3
	testLangProject  ClassID = 5001
	testLexEntry     ClassID = 5002
	testLexSense     ClassID = 5003
	testEntrySenses  FieldID = 5002002
	testEntryMain    FieldID = 5002003
	testEntryComment FieldID = 5002007
	testSenseDomains FieldID = 5003002
	testPossSubs     FieldID = 2002
)

// Returns registry loaded from testdata files
func loadTestRegistry(t *testing.T, files ...string) *Registry {
	t.Helper()
	r := New()
	for _, f := range files {
		fh, err := os.Open(filepath.Join("testdata", f))
		require.NoError(t, err)
		err = r.Load(fh, false)
		fh.Close()
		require.NoError(t, err, f)
	}
	return r
}

func openTestFile(t *testing.T, name string) *os.File {
	t.Helper()
	fh, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	t.Cleanup(func() { fh.Close() })
	return fh
}
