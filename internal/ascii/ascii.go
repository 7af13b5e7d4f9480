// Package ascii provides byte-level classification, set membership,
// and case folding for ASCII content.
package ascii

// A Set represents a set of ASCII bytes.
type Set [8]uint32

// MakeSet creates a set of ASCII characters.
// All bytes in chars are assumed to be less < utf8.RuneSelf.
// This implementation is adapted from that of the strings package.
func MakeSet(chars string) Set {
	var s Set
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		s[c/32] |= 1 << (c % 32)
	}
	return s
}

// Contains reports whether c is inside the set.
func (s *Set) Contains(c byte) bool {
	return (s[c/32] & (1 << (c % 32))) != 0
}

// IsDigit returns true if b is in the 0x30-0x39 ASCII range,
// and false otherwise.
func IsDigit(b byte) bool {
	// see https://go.googlesource.com/go/+/refs/tags/go1.24.2/src/net/textproto/reader.go#678
	const mask = (1<<10 - 1) << '0'
	return ((uint64(1)<<b)&(mask&(1<<64-1)) |
		(uint64(1)<<(b-64))&(mask>>64)) != 0
}

// IsLower returns true if b is an (ASCII) lowercase letter,
// and false otherwise.
func IsLower(b byte) bool {
	// see https://go.googlesource.com/go/+/refs/tags/go1.24.2/src/net/textproto/reader.go#678
	const mask = (1<<26 - 1) << 'a'
	return ((uint64(1)<<b)&(mask&(1<<64-1)) |
		(uint64(1)<<(b-64))&(mask>>64)) != 0
}

// IsUpper returns true if b is an (ASCII) uppercase letter,
// and false otherwise.
func IsUpper(b byte) bool {
	// see https://go.googlesource.com/go/+/refs/tags/go1.24.2/src/net/textproto/reader.go#678
	const mask = (1<<26 - 1) << 'A'
	return ((uint64(1)<<b)&(mask&(1<<64-1)) |
		(uint64(1)<<(b-64))&(mask>>64)) != 0
}

// DigitValue returns the numerical value of ASCII digit b.
// For instance, if b is '9', the result is 9.
func DigitValue(b byte) int {
	return int(b) - '0'
}

// ToLower returns the [byte-lowercase] version of b.
//
// [byte-lowercase]: https://infra.spec.whatwg.org/#byte-lowercase
func ToLower(b byte) byte {
	if IsUpper(b) {
		return b + caseDelta
	}
	return b
}

// ToUpper returns the [byte-uppercase] version of b.
//
// [byte-uppercase]: https://infra.spec.whatwg.org/#byte-uppercase
func ToUpper(b byte) byte {
	if IsLower(b) {
		return b - caseDelta
	}
	return b
}

const caseDelta = 'a' - 'A'
