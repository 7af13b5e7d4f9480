package bytestr

import "bytestr/internal/ascii"

// ToUpper converts every lowercase ASCII letter in v to its uppercase
// counterpart, in place. All other bytes pass through unchanged. The
// change writes through to v's storage and is visible through every
// view that shares it. ToUpper is idempotent and allocates nothing.
func (v View) ToUpper() {
	for i, c := range v.b {
		v.b[i] = ascii.ToUpper(c)
	}
}

// ToLower converts every uppercase ASCII letter in v to its lowercase
// counterpart, in place. All other bytes pass through unchanged. The
// change writes through to v's storage and is visible through every
// view that shares it. ToLower is idempotent and allocates nothing.
func (v View) ToLower() {
	for i, c := range v.b {
		v.b[i] = ascii.ToLower(c)
	}
}
