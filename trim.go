package bytestr

import "bytestr/internal/ascii"

// wsSet holds the bytes that Trim removes: ASCII space (0x20) and
// horizontal tab (0x09).
var wsSet = ascii.MakeSet("\t ")

// Trim returns v narrowed past its leading and trailing space and tab
// bytes. Other whitespace bytes, such as '\n' and '\r', are not
// removed. The result aliases v's storage; no bytes are copied or
// modified. A view that contains only spaces and tabs trims to an
// empty view.
func (v View) Trim() View {
	return View{b: trim(v.b)}
}

func trim(p []byte) []byte {
	if len(p) == 0 {
		return p
	}
	var i int
	for ; i < len(p); i++ {
		if !wsSet.Contains(p[i]) {
			break
		}
	}
	// Clip start to the last index so that all-whitespace input still
	// yields an in-bounds empty range.
	start := min(i, len(p)-1)
	for i = len(p) - 1; i >= 0; i-- {
		if !wsSet.Contains(p[i]) {
			break
		}
		if i < start {
			break
		}
	}
	end := i
	if end < start {
		end = start - 1
	}
	return p[start : end+1]
}
