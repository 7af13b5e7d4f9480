package bytestr

import "sync/atomic"

// A TraceFunc observes the numeric tokens located by the scanning
// operations. It receives the name of the operation ("ScanInt" or
// "ScanFloat") and the inclusive bounds of the token within the
// scanned bytes.
type TraceFunc func(op string, start, end int)

var traceFn atomic.Pointer[TraceFunc]

// SetTrace installs fn as the hook invoked by [ScanInt], [ScanFloat],
// [Buffer.NextInt] and [Buffer.NextFloat] whenever they locate a
// token. A nil fn disables tracing, which is the default. The hook
// carries no semantic contract; it exists for diagnostics only.
//
// SetTrace may be called concurrently with scanning operations, but
// the installed hook must itself be safe for concurrent use if buffers
// are scanned from multiple goroutines.
func SetTrace(fn TraceFunc) {
	if fn == nil {
		traceFn.Store(nil)
		return
	}
	traceFn.Store(&fn)
}

func trace(op string, start, end int) {
	if fn := traceFn.Load(); fn != nil {
		(*fn)(op, start, end)
	}
}
