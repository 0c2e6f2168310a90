package impl_test

import (
	"bytes"
	impl "github.com/SchnorcherSepp/bufreaderat/defaultimpl"
	interf "github.com/SchnorcherSepp/bufreaderat/interfaces"
	"io"
	"testing"
)

func Test_SubReaderAt_New(t *testing.T) {
	if _, err := impl.NewSubReaderAt(nil, interf.NewByteRange(0, 10)); err == nil {
		t.Fatal("test error: no error")
	}
}

func Test_SubReaderAt_ReadAt_empty(t *testing.T) {
	src := impl.NewRamReaderAt(testData(200))

	// empty windows never return data
	ra, err := impl.NewSubReaderAt(src, interf.NewByteRange(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	rb, err := impl.NewSubReaderAt(src, interf.NewByteRange(50, 50))
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 3)
	for _, r := range []io.ReaderAt{ra, rb} {
		if n, e := r.ReadAt(buf, 0); e != io.EOF || n != 0 {
			t.Fatalf("test error: n=%d, e=%v", n, e)
		}
		if n, e := r.ReadAt(buf, 1); e != io.EOF || n != 0 {
			t.Fatalf("test error: n=%d, e=%v", n, e)
		}
	}
}

func Test_SubReaderAt_ReadAt(t *testing.T) {
	src := impl.NewRamReaderAt(testData(200))

	// window [100, 115)
	r, err := impl.NewSubReaderAt(src, interf.NewByteRange(100, 115))
	if err != nil {
		t.Fatal(err)
	}

	// a big buffer stops at the window end
	buf := make([]byte, 100)
	if n, e := r.ReadAt(buf, 0); e != io.EOF || n != 15 || buf[0] != 100 || buf[14] != 114 {
		t.Fatalf("test error: n=%d, e=%v", n, e)
	}
	if n, e := r.ReadAt(buf, 14); e != io.EOF || n != 1 || buf[0] != 114 {
		t.Fatalf("test error: n=%d, e=%v", n, e)
	}
	if n, e := r.ReadAt(buf, 15); e != io.EOF || n != 0 {
		t.Fatalf("test error: n=%d, e=%v", n, e)
	}
	if n, e := r.ReadAt(buf, 16); e != io.EOF || n != 0 {
		t.Fatalf("test error: n=%d, e=%v", n, e)
	}

	// a small buffer inside the window reads without EOF
	buf = make([]byte, 3)
	if n, e := r.ReadAt(buf, 0); e != nil || n != 3 || !bytes.Equal(buf, []byte{100, 101, 102}) {
		t.Fatalf("test error: n=%d, e=%v, b=%v", n, e, buf)
	}
	if n, e := r.ReadAt(buf, 12); e != nil || n != 3 || !bytes.Equal(buf, []byte{112, 113, 114}) {
		t.Fatalf("test error: n=%d, e=%v, b=%v", n, e, buf)
	}

	// negative offset
	if _, e := r.ReadAt(buf, -1); e == nil {
		t.Fatal("test error: no error")
	}
}

func Test_SubReaderAt_ReadAt_buffered(t *testing.T) {
	// a window over a buffered reader
	inner, err := impl.NewBufReaderAtSize(impl.NewRamReaderAt(testData(200)), 64, impl.DebugOff)
	if err != nil {
		t.Fatal(err)
	}
	r, err := impl.NewSubReaderAt(inner, interf.NewByteRange(20, 30))
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 4)
	if n, e := r.ReadAt(buf, 0); e != nil || n != 4 || !bytes.Equal(buf, []byte{20, 21, 22, 23}) {
		t.Fatalf("test error: n=%d, e=%v, b=%v", n, e, buf)
	}
	if n, e := r.ReadAt(buf, 8); e != io.EOF || n != 2 || !bytes.Equal(buf[:2], []byte{28, 29}) {
		t.Fatalf("test error: n=%d, e=%v, b=%v", n, e, buf)
	}

	// the window reads are buffered by the inner reader
	if v := inner.Stat()["BufLoad"]; v != 1 {
		t.Fatalf("test error: stat=%v", inner.Stat())
	}
}
