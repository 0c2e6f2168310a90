package interf

// DefaultPageSize is the default capacity in bytes of the internal page buffer
// (see impl.NewBufReaderAt). Requests inside the resident page are served from
// RAM without a new read from the underlying source.
const DefaultPageSize = 8192 // 8 kiB

// MinPoolBuffers is the minimum number of pre-allocated page buffers for a byte
// pool that is shared between several buffered readers (see impl.NewBufReaderAtPool).
const MinPoolBuffers = 25
