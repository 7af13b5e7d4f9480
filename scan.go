package bytestr

import "bytestr/internal/ascii"

// Byte sets recognized by the scanners. A numeric token both starts
// with and consists of bytes from the relevant set; the position rules
// for the minus sign are enforced later, during accumulation.
var (
	intSet   = ascii.MakeSet("-0123456789")
	floatSet = ascii.MakeSet("-.0123456789")
)

// ScanInt scans p for the next integer token at or after position pos.
//
// Bytes from pos onward that cannot start a number are skipped; the
// token then runs up to the first byte that cannot be part of a
// number, or to the end of p. ScanInt returns the parsed value and
// next, the position of the first byte past the token. Calling ScanInt
// again with that position reads a delimited list one number at a
// time; the bytes between numbers are skipped, not validated.
//
// The returned position is meaningful on failure too: if p holds no
// further number, next is len(p) and the error a [*FormatError]; if
// the located token is malformed (such as "1-2", whose interior sign
// is consumed but rejected), next lies past that token. A pos outside
// [0, len(p)] fails with a [*RangeError] and next == pos.
func ScanInt(p []byte, pos int) (n int, next int, err error) {
	start, next, err := scan(p, pos, &intSet, "ScanInt")
	if err != nil {
		return 0, next, err
	}
	n, err = parseInt(p[start:next], "ScanInt")
	return n, next, err
}

// ScanFloat scans p for the next decimal token at or after position
// pos. It behaves like [ScanInt] with the decimal point added to the
// recognized bytes, so fractional tokens such as ".33" are found as
// well.
func ScanFloat(p []byte, pos int) (f float64, next int, err error) {
	start, next, err := scan(p, pos, &floatSet, "ScanFloat")
	if err != nil {
		return 0, next, err
	}
	f, err = parseFloat(p[start:next], "ScanFloat")
	return f, next, err
}

// scan locates the next run of set bytes at or after pos: it first
// skips bytes outside the set, then consumes the run. It returns the
// token bounds as [start, next).
func scan(p []byte, pos int, set *ascii.Set, fn string) (start, next int, err error) {
	if pos < 0 || pos > len(p) {
		return 0, pos, &RangeError{Func: fn, Off: pos, Len: len(p), Cursor: true}
	}
	for start = pos; start < len(p); start++ {
		if set.Contains(p[start]) {
			break
		}
	}
	if start == len(p) {
		return 0, len(p), &FormatError{Func: fn, Reason: "no number"}
	}
	for next = start + 1; next < len(p); next++ {
		if !set.Contains(p[next]) {
			break
		}
	}
	trace(fn, start, next-1)
	return start, next, nil
}
