package impl

import (
	"errors"
	interf "github.com/SchnorcherSepp/bufreaderat/interfaces"
	"github.com/oxtoacart/bpool"
	"io"
)

// interface check: interf.BufferedReaderAt
var _ interf.BufferedReaderAt = (*_BufReaderAt)(nil)

// @see interf.BufferedReaderAt
//
// BufReaderAt allows random read access to a source with an internal page buffer.
// Exactly one page is held: on every miss the full page is reloaded, starting at
// the requested offset. This works well for generally forward reads; scattered
// or backward access degrades to one page load per call.
type _BufReaderAt struct {
	src      io.ReaderAt      // underlying source (backbone)
	resident interf.ByteRange // source range currently held in buffer
	buffer   []byte           // page buffer (len == capacity; nil after Close)
	pool     *bpool.BytePool  // origin of a pooled page buffer, can be nil !
	stat     *_ReaderStat     // collects statistical data about internal processes
}

// NewBufReaderAt creates a new interf.BufferedReaderAt with the default page
// capacity (see interf.DefaultPageSize). No read happens before the first
// call of ReadAt().
func NewBufReaderAt(src io.ReaderAt, debugLvl uint8) (interf.BufferedReaderAt, error) {
	return NewBufReaderAtSize(src, interf.DefaultPageSize, debugLvl)
}

// NewBufReaderAtSize creates a new interf.BufferedReaderAt with the given page
// capacity. capacity 0 is a degenerate but valid configuration: every read
// misses and falls through to a direct source read.
func NewBufReaderAtSize(src io.ReaderAt, capacity int, debugLvl uint8) (interf.BufferedReaderAt, error) {
	// check input
	if src == nil {
		return nil, errors.New("can't create new BufReaderAt with src=nil")
	}
	if capacity < 0 {
		return nil, errors.New("can't create new BufReaderAt with capacity < 0")
	}

	// reader statistic
	stat := &_ReaderStat{
		debugLvl:    debugLvl, // enable debug logging [0, 1, 2] (level: high=2)
		packageName: "impl",   // text for debug logging
	}

	// return new BufReaderAt
	stat.BufNew(capacity, false) // DEBUG
	return &_BufReaderAt{
		src:      src,
		resident: interf.ByteRange{}, // nothing cached
		buffer:   make([]byte, capacity),
		stat:     stat,
	}, nil
}

// NewBufReaderAtPool creates a new interf.BufferedReaderAt whose page buffer is
// taken from the given byte pool. The capacity is the buffer width of the pool.
// Close() returns the page to the pool, so short-lived readers over one shared
// pool avoid allocating a fresh page each (see interf.MinPoolBuffers).
func NewBufReaderAtPool(src io.ReaderAt, pool *bpool.BytePool, debugLvl uint8) (interf.BufferedReaderAt, error) {
	// check input
	if src == nil || pool == nil {
		return nil, errors.New("can't create new BufReaderAt with src=nil or pool=nil")
	}

	// reader statistic
	stat := &_ReaderStat{
		debugLvl:    debugLvl, // enable debug logging [0, 1, 2] (level: high=2)
		packageName: "impl",   // text for debug logging
	}

	// page from pool
	buffer := pool.Get()

	// return new BufReaderAt
	stat.BufNew(len(buffer), true) // DEBUG
	return &_BufReaderAt{
		src:      src,
		resident: interf.ByteRange{}, // nothing cached
		buffer:   buffer,
		pool:     pool,
		stat:     stat,
	}, nil
}

// @see interf.BufferedReaderAt
//
// Close drops the resident page. A pooled page buffer is returned to its pool.
// Has no effect after the first call. A closed reader keeps working with
// capacity 0, every read falls through to the source.
func (r *_BufReaderAt) Close() error {
	r.stat.BufClose(r.pool != nil) // DEBUG

	r.resident = interf.ByteRange{}
	if r.pool != nil && r.buffer != nil {
		r.pool.Put(r.buffer)
	}
	r.buffer = nil

	r.stat.PrintStatAfterClose() // DEBUG
	return nil
}

// @see interf.BufferedReaderAt
func (r *_BufReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	if len(p) == 0 {
		return 0, nil // read nothing -> return nothing
	}
	if off < 0 {
		return 0, errors.New("impl.BufReaderAt.ReadAt: negative offset")
	}

	r.stat.BufReq(off, len(p)) // DEBUG

	// A request bigger than the page can't be buffered in one piece:
	// skip the buffer and read from the source into p directly.
	if len(p) > r.Capacity() {
		r.stat.BufBypass(off, len(p), r.Capacity()) // DEBUG
		return r.src.ReadAt(p, off)
	}

	requested := interf.NewByteRange(off, off+int64(len(p)))
	available := r.resident.Intersect(requested)

	if available.Len() < int64(len(p)) {
		// miss (full or partial): reload the whole page at the requested
		// offset and replace the resident range.
		r.stat.BufMiss(off, len(p)) // DEBUG
		if err := r.loadPageAtOffset(off); err != nil {
			return 0, err
		}
		available = r.resident.Intersect(requested)
	} else {
		r.stat.BufHit(off, len(p)) // DEBUG
	}

	r.copyRangeToSlice(available, p, requested.Start)

	// available is empty only when off is at or past the end of the source
	n = int(available.Len())
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}

// @see interf.BufferedReaderAt
//
// Capacity returns the fixed size of the page buffer in bytes.
func (r *_BufReaderAt) Capacity() int {
	return len(r.buffer)
}

// @see interf.BufferedReaderAt
//
// Contains reports whether the given source range is completely resident.
func (r *_BufReaderAt) Contains(q interf.ByteRange) bool {
	return r.resident.Intersect(q) == q
}

// @see interf.BufferedReaderAt
//
// Invalidate drops the resident page. The next ReadAt loads fresh data from
// the source. Call it after the source was changed externally.
func (r *_BufReaderAt) Invalidate() {
	r.stat.BufInval() // DEBUG
	r.resident = interf.ByteRange{}
}

// @see interf.BufferedReaderAt
//
// Stat returns the number of times internal processes have been run since initialization.
// This method is relevant for testing and debugging purposes.
// The KEY is the internal process, the VALUE is the count.
func (r *_BufReaderAt) Stat() map[string]uint64 {
	return r.stat.Stat()
}

//--------  HELPER  --------------------------------------------------------------------------------------------------//

// loadPageAtOffset reads a full page from the source, starting at off.
// On success the resident range is replaced with off..off+n; a short read
// (io.EOF) bounds the range and is not a failure. On any other error the old
// resident range stays valid and untouched.
func (r *_BufReaderAt) loadPageAtOffset(off int64) error {
	n, err := r.src.ReadAt(r.buffer, off)
	if err == io.EOF {
		err = nil // short page at the end of the source
	}
	r.stat.BufLoad(off, n, err) // DEBUG
	if err != nil {
		return err
	}
	r.resident = interf.NewByteRange(off, off+int64(n))
	return nil
}

// copyRangeToSlice copies the source range cr from the resident buffer into p.
// cr must be a subset of the resident range; reqStart is the absolute offset
// of p[0].
func (r *_BufReaderAt) copyRangeToSlice(cr interf.ByteRange, p []byte, reqStart int64) {
	if cr.Len() > 0 {
		src := cr.ShiftLeft(r.resident.Start)
		dst := cr.ShiftLeft(reqStart)
		copy(p[dst.Start:dst.End], r.buffer[src.Start:src.End])
	}
}
