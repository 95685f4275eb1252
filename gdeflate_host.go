package gdeflate

import (
	"github.com/nulijiazaizhong/gdeflate/internal/pkg/hostargs"
)

// FuncT is a host-callable entry point.  Arguments arrive dynamically
// typed; on success the result is the numeric StatusT, on a validation
// or allocation failure the result is nil and the error is surfaced
// through the host's error path.
type FuncT func(args ...any) (any, error)

// Exports returns the entry-point table registered with the host:
// "deflate" and "gdeflate", each expecting exactly two []byte
// arguments (compressed input, pre-sized output).
func Exports() map[string]FuncT {
	return map[string]FuncT{
		"deflate":  hostDeflate,
		"gdeflate": hostGDeflate,
	}
}

func hostDeflate(args ...any) (any, error) {
	src, dst, err := hostargs.Buffers(args)
	if err != nil {
		return nil, err
	}
	st, err := Deflate(src, dst)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func hostGDeflate(args ...any) (any, error) {
	src, dst, err := hostargs.Buffers(args)
	if err != nil {
		return nil, err
	}
	st, err := GDeflate(src, dst)
	if err != nil {
		return nil, err
	}
	return st, nil
}
