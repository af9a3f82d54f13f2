// SPDX-License-Identifier: MIT
// Package: diagramkit/cmd/diagramgen

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagramkit/diagram"
	"github.com/katalvlaran/diagramkit/render"
)

func TestBackendFor(t *testing.T) {
	b, err := backendFor("svg", 1)
	require.NoError(t, err)
	assert.Equal(t, "svg", b.Ext())

	b, err = backendFor("png", 2)
	require.NoError(t, err)
	assert.Equal(t, render.PNG{Scale: 2}, b)

	_, err = backendFor("png", 9)
	assert.Error(t, err)
	_, err = backendFor("pdf", 1)
	assert.Error(t, err)
}

func TestSweepEntries(t *testing.T) {
	for name, want := range map[string]int{"incline": 17, "parabola": 8, "elements": 30} {
		entries, err := sweepEntries(name)
		require.NoError(t, err, name)
		assert.Len(t, entries, want, name)
	}
	_, err := sweepEntries("spirals")
	assert.Error(t, err)
}

func TestReadEntriesAndWrite(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(in, []byte("- family: benzene\n- family: wave\n"), 0o644))

	entries, err := readEntries(in)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "001-wave", entries[1].Name)

	path := filepath.Join(dir, entries[0].Name+".svg")
	require.NoError(t, writeFile(path, diagram.Assemble(entries[0].Descriptor), render.SVG{}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
}
