package bytestr

import "io"

// A Buffer is a byte window with a read cursor, for tokenizing
// delimited content with [Buffer.NextInt] and [Buffer.NextFloat].
//
// The window spans positions [0, Len()). The cursor starts at 0 and is
// advanced only by the Next* methods, [Buffer.WriteTo] and
// [Buffer.SetPos]; every other operation ([Buffer.Trim],
// [Buffer.ToUpper], [Buffer.ParseInt] and so on) applies to the whole
// window and ignores the cursor.
//
// A Buffer aliases the storage it was constructed over and never grows
// or reallocates it. Like a [View], it performs no synchronization;
// callers must serialize access to a shared buffer.
type Buffer struct {
	data []byte
	pos  int // cursor; 0 <= pos <= len(data)
}

// NewBuffer returns a Buffer over all of p, with the cursor at 0. The
// buffer aliases p rather than copying it.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{data: p}
}

// NewBufferString returns a Buffer over a fresh, mutable copy of s.
func NewBufferString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// View returns a View over the buffer's whole window. The view aliases
// the buffer's storage.
func (b *Buffer) View() View {
	return View{b: b.data}
}

// Len returns the length of the buffer's window.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the capacity of the buffer's backing storage.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Pos returns the cursor position.
func (b *Buffer) Pos() int {
	return b.pos
}

// Remaining returns the number of bytes between the cursor and the end
// of the window.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// Bytes returns the buffer's window, aliased rather than copied.
// Writes to the result are visible through the buffer and through
// every view of the same storage.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns a copy of the buffer's window as a string.
func (b *Buffer) String() string {
	return string(b.data)
}

// SetPos moves the cursor to position i. It fails with a
// [*RangeError] if i lies outside [0, Len()].
func (b *Buffer) SetPos(i int) error {
	if i < 0 || i > len(b.data) {
		return &RangeError{Func: "SetPos", Off: i, Len: len(b.data), Cursor: true}
	}
	b.pos = i
	return nil
}

// Trim narrows the buffer's window past its leading and trailing space
// and tab bytes and resets the cursor to 0. No bytes are copied or
// modified; see [View.Trim].
func (b *Buffer) Trim() {
	b.data = trim(b.data)
	b.pos = 0
}

// ToUpper converts every lowercase ASCII letter in the window to its
// uppercase counterpart, in place.
func (b *Buffer) ToUpper() {
	b.View().ToUpper()
}

// ToLower converts every uppercase ASCII letter in the window to its
// lowercase counterpart, in place.
func (b *Buffer) ToLower() {
	b.View().ToLower()
}

// IndexByte returns the index of the first occurrence of c in the
// window at or after position from, or -1 if c does not occur there;
// see [View.IndexByte].
func (b *Buffer) IndexByte(c byte, from int) int {
	return b.View().IndexByte(c, from)
}

// Equal reports whether the windows of b and o hold byte-for-byte
// identical contents.
func (b *Buffer) Equal(o *Buffer) bool {
	return b.View().Equal(o.View())
}

// Compare orders the windows of b and o lexicographically, byte-wise;
// see [View.Compare].
func (b *Buffer) Compare(o *Buffer) int {
	return b.View().Compare(o.View())
}

// ParseInt parses the whole window as one integer, ignoring the
// cursor; see [View.ParseInt] for the accepted format.
func (b *Buffer) ParseInt() (int, error) {
	return b.View().ParseInt()
}

// ParseFloat parses the whole window as one decimal number, ignoring
// the cursor; see [View.ParseFloat] for the accepted format.
func (b *Buffer) ParseFloat() (float64, error) {
	return b.View().ParseFloat()
}

// NextInt scans for the integer token at or after the cursor, skipping
// any non-numeric bytes before it, and advances the cursor just past
// the token. Repeated calls read a delimited list such as
// "-1, 2, 33, 5" one integer at a time.
//
// The cursor advances on failure too: to the end of the window if no
// token was found, or past the offending token if it was malformed;
// see [ScanInt].
func (b *Buffer) NextInt() (int, error) {
	n, next, err := ScanInt(b.data, b.pos)
	b.pos = next
	return n, err
}

// NextFloat scans for the decimal token at or after the cursor and
// advances the cursor just past it, like [Buffer.NextInt]; fractional
// tokens such as ".33" are recognized as well.
func (b *Buffer) NextFloat() (float64, error) {
	f, next, err := ScanFloat(b.data, b.pos)
	b.pos = next
	return f, err
}

// WriteTo writes the bytes between the cursor and the end of the
// window to w, unaltered, and advances the cursor past the bytes
// written. It implements [io.WriterTo].
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data[b.pos:])
	b.pos += n
	return int64(n), err
}
