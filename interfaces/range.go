package interf

// ByteRange is a half-open interval [Start, End) of byte offsets in a source.
// ByteRange is an immutable value object and all methods are free of I/O and
// side effects.
//
// A range with End <= Start holds no bytes. The canonical representation of
// such an empty range is 0..0. Use NewByteRange to build ranges: it normalizes
// every empty input to the canonical form, so empty ranges are always equal to
// each other with ==.
type ByteRange struct {
	Start int64 // first byte offset (inclusive)
	End   int64 // last byte offset (exclusive)
}

// NewByteRange returns the range [start, end).
// Any input with end <= start is normalized to the canonical empty range 0..0.
func NewByteRange(start, end int64) ByteRange {
	if end <= start {
		return ByteRange{} // 0..0
	}
	return ByteRange{Start: start, End: end}
}

// Empty returns true if the range holds no bytes (Start >= End).
func (r ByteRange) Empty() bool {
	return r.Start >= r.End
}

// Len returns the number of bytes in the range. Empty ranges have length 0.
func (r ByteRange) Len() int64 {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

// Intersect returns the overlap of r and b.
// Disjoint ranges yield the canonical empty range 0..0.
// The operation is commutative and r.Intersect(r) == r for non-empty r.
func (r ByteRange) Intersect(b ByteRange) ByteRange {
	start := r.Start
	if b.Start > start {
		start = b.Start
	}
	end := r.End
	if b.End < end {
		end = b.End
	}
	return NewByteRange(start, end)
}

// ShiftLeft translates the range down by n.
// n must not be greater than Start, a violation panics.
// It is used to convert an absolute source range into a 0-based buffer range.
func (r ByteRange) ShiftLeft(n int64) ByteRange {
	if n > r.Start {
		panic("interf.ByteRange.ShiftLeft: shift greater than range start")
	}
	return NewByteRange(r.Start-n, r.End-n)
}

// ShiftRight translates the range up by n. Inverse of ShiftLeft.
func (r ByteRange) ShiftRight(n int64) ByteRange {
	return NewByteRange(r.Start+n, r.End+n)
}
