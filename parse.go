package bytestr

import "bytestr/internal/ascii"

// ParseInt parses the entire view as one integer: ASCII digits with an
// optional leading minus sign, nothing else. Any other byte anywhere
// in the view fails with a [*FormatError], as does an empty view.
// Leading zeros are accepted ("-0012" parses to -12), and a lone minus
// sign parses to 0.
//
// ParseInt does not detect overflow; the value is assumed to fit in an
// int.
func (v View) ParseInt() (int, error) {
	return parseInt(v.b, "ParseInt")
}

// ParseFloat parses the entire view as one decimal number: ASCII
// digits, an optional leading minus sign, and the decimal point '.'.
// Any other byte anywhere in the view fails with a [*FormatError], as
// does an empty view. The integer part may be absent ("-.001" parses
// to -0.001). There is no exponent notation.
//
// Only the first decimal point met during parsing is significant;
// additional points are ignored, so "1.2.3" parses to 12.3.
func (v View) ParseFloat() (float64, error) {
	return parseFloat(v.b, "ParseFloat")
}

// parseInt accumulates digits from the last byte to the first: the
// final byte contributes at place value 1 and the place value rises
// tenfold per digit. The minus sign is valid only at index 0 and flips
// the sign of the accumulated value at the end.
func parseInt(p []byte, fn string) (int, error) {
	if len(p) == 0 {
		return 0, &FormatError{Func: fn, Reason: "empty input"}
	}
	var (
		result int
		base   = 1
		neg    bool
	)
	for i := len(p) - 1; i >= 0; i-- {
		switch c := p[i]; {
		case c == '-':
			if i != 0 {
				return 0, &FormatError{Func: fn, Value: string(p), Reason: "misplaced sign"}
			}
			neg = true
		case ascii.IsDigit(c):
			result += ascii.DigitValue(c) * base
			base *= 10
		default:
			return 0, &FormatError{Func: fn, Value: string(p), Reason: "invalid byte"}
		}
	}
	if neg {
		result = -result
	}
	return result, nil
}

// parseFloat accumulates like parseInt but also tracks the divisor for
// the fractional part: every digit consumed before the decimal point
// is met (that is, every digit to its right) grows the divisor
// tenfold; once the point is seen the divisor freezes.
func parseFloat(p []byte, fn string) (float64, error) {
	if len(p) == 0 {
		return 0, &FormatError{Func: fn, Reason: "empty input"}
	}
	var (
		result      float64
		base        float64 = 1
		decimalBase float64 = 1
		hasDecimal  bool
		neg         bool
	)
	for i := len(p) - 1; i >= 0; i-- {
		switch c := p[i]; {
		case c == '-':
			if i != 0 {
				return 0, &FormatError{Func: fn, Value: string(p), Reason: "misplaced sign"}
			}
			neg = true
		case c == '.':
			hasDecimal = true
		case ascii.IsDigit(c):
			result += float64(ascii.DigitValue(c)) * base
			base *= 10
			if !hasDecimal {
				decimalBase *= 10
			}
		default:
			return 0, &FormatError{Func: fn, Value: string(p), Reason: "invalid byte"}
		}
	}
	if hasDecimal {
		result /= decimalBase
	}
	if neg {
		result = -result
	}
	return result, nil
}
