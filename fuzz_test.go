package bytestr_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"bytestr"
)

func FuzzParseIntAgreesWithStrconv(f *testing.F) {
	for _, c := range parseIntTests {
		f.Add(c.s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		n, err := bytestr.Wrap([]byte(s)).ParseInt()
		if err != nil {
			var ferr *bytestr.FormatError
			if !errors.As(err, &ferr) {
				const tmpl = "ParseInt(%q): got error %v; want a *FormatError"
				t.Fatalf(tmpl, s, err)
			}
			return
		}
		// a successful parse admits digits only, plus a sign at index 0
		for i := 0; i < len(s); i++ {
			c := s[i]
			if '0' <= c && c <= '9' || c == '-' && i == 0 {
				continue
			}
			const tmpl = "ParseInt(%q) succeeded despite byte %q at index %d"
			t.Fatalf(tmpl, s, c, i)
		}
		if !isSmallInt(s) {
			t.Skip() // the value may exceed the oracle's range
		}
		want, err := strconv.Atoi(s)
		if err != nil {
			t.Skip() // a 32-bit int cannot hold the value
		}
		if n != want {
			const tmpl = "ParseInt(%q): got %d; want %d"
			t.Errorf(tmpl, s, n, want)
		}
	})
}

// isSmallInt reports whether s is an optionally negated run of at most
// 15 digits, a form both ParseInt and strconv.Atoi accept without any
// possibility of overflow.
func isSmallInt(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if len(s) == 0 || len(s) > 15 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || '9' < s[i] {
			return false
		}
	}
	return true
}

func FuzzParseFloatNegation(f *testing.F) {
	for _, c := range parseFloatTests {
		f.Add(c.s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !strings.HasPrefix(s, "-") || len(s) == 1 {
			t.Skip()
		}
		neg, err := bytestr.Wrap([]byte(s)).ParseFloat()
		if err != nil {
			t.Skip()
		}
		pos, err := bytestr.Wrap([]byte(s[1:])).ParseFloat()
		if err != nil {
			const tmpl = "ParseFloat(%q) succeeded but ParseFloat(%q) failed: %v"
			t.Fatalf(tmpl, s, s[1:], err)
		}
		if math.IsNaN(pos) {
			t.Skip() // hundreds of digits overflow the accumulator
		}
		if neg != -pos {
			const tmpl = "got ParseFloat(%q) = %g and ParseFloat(%q) = %g; want negations"
			t.Errorf(tmpl, s, neg, s[1:], pos)
		}
	})
}

func FuzzTrimAgreesWithStringsTrim(f *testing.F) {
	for _, c := range trimTests {
		f.Add(c.s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		trimmed := bytestr.Wrap([]byte(s)).Trim()
		if want := strings.Trim(s, "\t "); trimmed.String() != want {
			const tmpl = "Trim of %q: got %q; want %q"
			t.Errorf(tmpl, s, trimmed.String(), want)
		}
		if again := trimmed.Trim(); !again.Equal(trimmed) {
			const tmpl = "Trim of %q is not idempotent: got %q after %q"
			t.Errorf(tmpl, s, again.String(), trimmed.String())
		}
	})
}

func FuzzScanFloatCursor(f *testing.F) {
	for _, c := range scanFloatTests {
		f.Add(c.s, c.pos)
	}
	f.Add("-1.1, 2.5, .33, 5", 0)
	f.Add("1-2", 0)
	f.Fuzz(func(t *testing.T, s string, pos int) {
		p := []byte(s)
		_, next, err := bytestr.ScanFloat(p, pos)
		if pos < 0 || pos > len(p) {
			var rerr *bytestr.RangeError
			if !errors.As(err, &rerr) {
				const tmpl = "ScanFloat(%q, %d): got error %v; want a *RangeError"
				t.Fatalf(tmpl, s, pos, err)
			}
			if next != pos {
				const tmpl = "ScanFloat(%q, %d): got next %d; want the position echoed back"
				t.Errorf(tmpl, s, pos, next)
			}
			return
		}
		if next < pos || next > len(p) {
			const tmpl = "ScanFloat(%q, %d): got next %d, outside [%d, %d]"
			t.Fatalf(tmpl, s, pos, next, pos, len(p))
		}
		// locating a token, well-formed or not, must advance the cursor
		if next == pos {
			var ferr *bytestr.FormatError
			if !errors.As(err, &ferr) || ferr.Reason != "no number" {
				const tmpl = "ScanFloat(%q, %d): cursor did not advance, yet the error is %v"
				t.Errorf(tmpl, s, pos, err)
			}
		}
	})
}
