package impl_test

import (
	impl "github.com/SchnorcherSepp/bufreaderat/defaultimpl"
	"io"
	"testing"
)

func Test_ZeroReaderAt_ReadAt(t *testing.T) {
	r := impl.NewZeroReaderAt()

	tmp := make([]byte, 4)
	if n, e := r.ReadAt(tmp, 0); e != io.EOF || n != 0 {
		t.Fatalf("test error: n=%d, e=%v", n, e)
	}
	if n, e := r.ReadAt(tmp, 1234); e != io.EOF || n != 0 {
		t.Fatalf("test error: n=%d, e=%v", n, e)
	}
	if n, e := r.ReadAt(nil, 0); e != io.EOF || n != 0 {
		t.Fatalf("test error: n=%d, e=%v", n, e)
	}
}
