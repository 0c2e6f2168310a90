package impl

import (
	"errors"
	interf "github.com/SchnorcherSepp/bufreaderat/interfaces"
	"io"
)

var _ io.ReaderAt = (*_SubReaderAt)(nil)

// SubReaderAt restricts the ReadAt method to a window of the source.
// Offsets are relative to the window start.
type _SubReaderAt struct {
	inner  io.ReaderAt
	window interf.ByteRange
}

// NewSubReaderAt returns a source that exposes only the given window of the
// inner source. Reads behind the window end with io.EOF. The window can be
// empty, such a source never returns data.
//
// SubReaderAt composes with BufReaderAt on either side: buffer the window or
// window a buffered reader.
func NewSubReaderAt(inner io.ReaderAt, window interf.ByteRange) (io.ReaderAt, error) {
	// check input
	if inner == nil {
		return nil, errors.New("can't create new SubReaderAt with inner=nil")
	}

	// build SubReaderAt
	return &_SubReaderAt{
		inner:  inner,
		window: window,
	}, nil
}

func (r *_SubReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	// check off
	if off < 0 {
		return 0, errors.New("impl.SubReaderAt.ReadAt: negative offset")
	}

	// inner call
	n, err = r.inner.ReadAt(p, r.window.Start+off)

	// check n (enforce limit)
	startP := r.window.Start + off
	endPos := startP + int64(n)
	maxEPos := r.window.End
	if endPos > maxEPos {
		// update n
		endPos = maxEPos
		n = int(endPos - startP)
		// enforce min n = 0
		if n < 0 {
			n = 0
		}
		// fix EOF for limit: err is nil AND buffer is NOT full!
		if len(p) > n && err == nil {
			err = io.EOF
		}
	}

	// fix EOF for no data
	if n == 0 && err == nil && len(p) > 0 {
		err = io.EOF
	}

	// return
	return
}
