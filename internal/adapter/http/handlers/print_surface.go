package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
)

var errSurfaceNotAcceptable = errors.New("client does not accept text/html")

// bufferedSurface is the HTTP stand-in for a print window. The page is held in
// memory so the client receives nothing unless the emission completes.
type bufferedSurface struct {
	acceptsHTML bool
	title       string
	buf         bytes.Buffer
}

func newBufferedSurface(acceptsHTML bool) *bufferedSurface {
	return &bufferedSurface{acceptsHTML: acceptsHTML}
}

func (s *bufferedSurface) Open(_ context.Context, title string) (io.WriteCloser, error) {
	if !s.acceptsHTML {
		return nil, errSurfaceNotAcceptable
	}
	s.title = title
	s.buf.Reset()
	return nopWriteCloser{Writer: &s.buf}, nil
}

func (s *bufferedSurface) Bytes() []byte {
	return s.buf.Bytes()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
