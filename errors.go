package bytestr

import "fmt"

// A FormatError indicates that a byte range could not be parsed as a
// number. The Reason field may take one of four values:
//   - "empty input": the range contains no bytes;
//   - "no number": the scan reached the end of the buffer without
//     finding a byte that could start a number;
//   - "misplaced sign": a minus sign occurs somewhere other than the
//     first byte of the number;
//   - "invalid byte": the range contains a byte that is not allowed
//     in a number.
type FormatError struct {
	Func   string // the failing operation: ParseInt, ParseFloat, ScanInt or ScanFloat
	Value  string // a copy of the offending bytes, if any
	Reason string // empty input | no number | misplaced sign | invalid byte
}

func (err *FormatError) Error() string {
	if err.Value == "" {
		const tmpl = "bytestr: %s: %s"
		return fmt.Sprintf(tmpl, err.Func, err.Reason)
	}
	const tmpl = "bytestr: %s: %s in %q"
	return fmt.Sprintf(tmpl, err.Func, err.Reason, err.Value)
}

// A RangeError indicates a requested sub-range or cursor position that
// lies outside the bounds of a view or buffer.
type RangeError struct {
	Func   string // the failing operation: Slice, SetPos, ScanInt or ScanFloat
	Off    int    // the requested start offset or cursor position
	N      int    // the requested length; meaningless when Cursor is true
	Len    int    // the length (or limit) of the view or buffer
	Cursor bool   // whether the request is a cursor position rather than a sub-range
}

func (err *RangeError) Error() string {
	if err.Cursor {
		const tmpl = "bytestr: %s: position %d out of bounds for limit %d"
		return fmt.Sprintf(tmpl, err.Func, err.Off, err.Len)
	}
	if err.N < 0 {
		const tmpl = "bytestr: %s: negative length %d"
		return fmt.Sprintf(tmpl, err.Func, err.N)
	}
	const tmpl = "bytestr: %s: range [%d:%d] out of bounds for length %d"
	return fmt.Sprintf(tmpl, err.Func, err.Off, err.Off+err.N, err.Len)
}
