package interf

import "io"

// BufferedReaderAt allows random read access to a source with an internal page
// buffer. One page of the source is held in RAM and requests inside this page
// are answered without a new read from the source.
//
// The source must be a plain io.ReaderAt: a positional read that does not
// depend on or change a seek offset of the handle, returns fewer bytes than
// requested only at the end of the source (with io.EOF) and can be called
// over a shared reference by parallel users (like pread() on a file).
//
// BufferedReaderAt extends io.ReaderAt with a Closer and is the interface
// that wraps the ReadAt method and the Close method.
//
// ReadAt reads len(p) bytes into p starting at offset off in the
// underlying input source. It returns the number of bytes
// read (0 <= n <= len(p)) and any error encountered.
//
// When ReadAt returns n < len(p), it returns a non-nil error
// explaining why more bytes were not returned. A request that runs over
// the end of the source returns the available bytes and io.EOF; this is
// a normal outcome, not a failure.
//
// If the n = len(p) bytes returned by ReadAt are at the end of the
// input source, ReadAt returns err == nil.
//
// A single BufferedReaderAt mutates its page buffer in place and is NOT safe
// for parallel calls. Independent instances over the same source can be used
// in parallel without coordination, each with its own private page.
//
// Implementations must not retain p.
type BufferedReaderAt interface {
	io.ReaderAt // ReadAt(p []byte, off int64) (n int, err error)
	io.Closer   // Close() error

	// Capacity returns the fixed size of the page buffer in bytes.
	// The value is constant for the lifetime of the reader.
	Capacity() int

	// Contains reports whether the given source range is completely held in
	// the resident page. This is an observation only and never triggers a
	// read from the source.
	Contains(r ByteRange) bool

	// Invalidate drops the resident page so the next ReadAt loads fresh data.
	// The reader never invalidates on its own: after an external write to the
	// source, calling Invalidate is the job of the caller.
	Invalidate()

	// Stat returns the number of times internal processes have been run since initialization.
	// This method is relevant for testing and debugging purposes.
	// The KEY is the internal process, the VALUE is the count.
	Stat() map[string]uint64
}
