package impl

import (
	"io"
)

var _ io.ReaderAt = (*_ZeroReaderAt)(nil)

type _ZeroReaderAt struct {
	// nope
}

// NewZeroReaderAt is a dummy source with no data.
func NewZeroReaderAt() io.ReaderAt {
	return new(_ZeroReaderAt)
}

//--------------------------------------------------------------------------------------------------------------------//

func (r *_ZeroReaderAt) ReadAt(_ []byte, _ int64) (n int, err error) {
	return 0, io.EOF
}
