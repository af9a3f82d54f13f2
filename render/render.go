// SPDX-License-Identifier: MIT
// Package: diagramkit/render
//
// render.go - the backend contract and shared helpers.

package render

import (
	"bytes"
	"errors"
	"io"

	"github.com/katalvlaran/diagramkit/scene"
)

// ErrNilScene is returned when a backend is handed no scene.
var ErrNilScene = errors.New("render: nil scene")

// Backend serialises a scene.
type Backend interface {
	// Render writes s to w.
	Render(w io.Writer, s *scene.Scene) error
	// Ext returns the file extension without the dot ("svg", "png").
	Ext() string
	// MediaType returns the MIME type of the output.
	MediaType() string
}

// Bytes renders s with b into memory.
func Bytes(b Backend, s *scene.Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Render(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// errWriter remembers the first write error so that callers of APIs without
// error returns can check it once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
