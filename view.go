package bytestr

import (
	"bytes"
	"io"
)

// A View is a string-like, non-owning window onto a byte slice.
//
// A View references the bytes it was constructed over; it never copies
// them. Mutating operations such as [View.ToUpper] write through to
// the underlying storage, and their effect is visible through every
// View and [Buffer] that shares that storage. Narrowing operations
// such as [View.Trim] and [View.Slice] return new views and leave the
// receiver unchanged.
//
// Views are cheap to copy and to pass by value. The zero value is an
// empty view. A View performs no synchronization; callers must
// serialize access to views that share storage.
type View struct {
	b []byte
}

// Wrap returns a View over all of p. The view aliases p rather than
// copying it.
func Wrap(p []byte) View {
	return View{b: p}
}

// Slice returns the sub-view of v that starts at offset off and spans
// n bytes. The result aliases the same storage as v. If the requested
// range does not fit within v, Slice returns a zero View and a
// [*RangeError].
func (v View) Slice(off, n int) (View, error) {
	// off > len(v.b)-n is the overflow-safe form of off+n > len(v.b)
	if off < 0 || n < 0 || off > len(v.b)-n {
		return View{}, &RangeError{Func: "Slice", Off: off, N: n, Len: len(v.b)}
	}
	return View{b: v.b[off : off+n]}, nil
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return len(v.b)
}

// Bytes returns the bytes referenced by v, aliased rather than copied.
// Writes to the result are visible through v and through every other
// view of the same storage.
func (v View) Bytes() []byte {
	return v.b
}

// String returns a copy of the view's bytes as a string. It is the
// only View accessor that allocates.
func (v View) String() string {
	return string(v.b)
}

// Equal reports whether v and w reference byte-for-byte identical
// contents. Views over distinct storage are equal as long as their
// bytes are.
func (v View) Equal(w View) bool {
	return bytes.Equal(v.b, w.b)
}

// Compare orders v and w lexicographically, byte-wise: the result is
// 0 if v == w, -1 if v < w, and +1 if v > w. A view that is a proper
// prefix of another orders first.
func (v View) Compare(w View) int {
	return bytes.Compare(v.b, w.b)
}

// IndexByte returns the index of the first occurrence of c in v at or
// after position from, or -1 if c does not occur there. A from outside
// [0, v.Len()) yields -1 rather than an error.
func (v View) IndexByte(c byte, from int) int {
	if from < 0 || from >= len(v.b) {
		return -1
	}
	if i := bytes.IndexByte(v.b[from:], c); i >= 0 {
		return from + i
	}
	return -1
}

// WriteTo writes the view's bytes to w, unaltered. It implements
// [io.WriterTo].
func (v View) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.b)
	return int64(n), err
}
