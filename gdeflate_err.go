package gdeflate

import (
	"errors"

	"github.com/nulijiazaizhong/gdeflate/internal/pkg/zerr"
)

//  Forward declare internal errors

const (
	ErrArity      = zerr.ErrArity
	ErrArgument   = zerr.ErrArgument
	ErrAlloc      = zerr.ErrAlloc
	ErrDecompress = zerr.ErrDecompress
	ErrDstSize    = zerr.ErrDstSize
)

// Returns true if 'err' indicates a rejected host call: wrong argument
// count or an argument that is not a byte buffer.
func BadCall(err error) bool {
	return errors.Is(err, ErrArity) || errors.Is(err, ErrArgument)
}
