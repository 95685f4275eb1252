// Package hostargs validates raw argument lists arriving over the host
// call boundary, where values are dynamically typed.
package hostargs

import (
	"github.com/nulijiazaizhong/gdeflate/internal/pkg/zerr"
)

// Buffers checks that args holds exactly two byte buffers and returns
// them as (input, output).  Pure check: no allocation, no writes.
//
// A nil []byte argument is accepted as a zero-length buffer; any other
// argument type fails with zerr.ErrArgument.
func Buffers(args []any) (src, dst []byte, err error) {

	if len(args) != 2 {
		return nil, nil, zerr.ErrArity
	}

	var ok bool
	if src, ok = args[0].([]byte); !ok {
		return nil, nil, zerr.ErrArgument
	}
	if dst, ok = args[1].([]byte); !ok {
		return nil, nil, zerr.ErrArgument
	}

	return src, dst, nil
}
