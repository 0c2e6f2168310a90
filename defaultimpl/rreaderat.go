package impl

import (
	"errors"
	"io"
)

var _ io.ReaderAt = (*_RamReaderAt)(nil)

type _RamReaderAt struct {
	data []byte
}

// NewRamReaderAt returns a source that provides data from the ram ([]byte).
// The slice is not copied: changes to the backing array are visible to later
// reads, which makes this source useful to test cache staleness.
func NewRamReaderAt(data []byte) io.ReaderAt {
	// check nil
	if data == nil {
		data = make([]byte, 0)
	}
	// return
	return &_RamReaderAt{
		data: data,
	}
}

//--------------------------------------------------------------------------------------------------------------------//

func (r *_RamReaderAt) ReadAt(b []byte, off int64) (n int, err error) {
	// check off
	if off < 0 {
		return 0, errors.New("impl.RamReaderAt.ReadAt: negative offset")
	}
	// no data
	if off >= int64(len(r.data)) {
		return 0, io.EOF
	}
	// copy & return
	n = copy(b, r.data[off:])
	if n < len(b) {
		err = io.EOF
	}
	return
}
