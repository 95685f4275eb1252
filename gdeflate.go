// Package gdeflate exposes single-shot DEFLATE and GDeflate
// decompression to a host environment through a synchronous
// buffer-in/buffer-out calling convention.
//
// Both entry points take a caller-owned compressed input region and a
// caller-owned pre-sized output region, and return the decode status as
// a number.  Nonzero status is an ordinary result for the caller to
// interpret, not an error.  Each call allocates its own decompressor
// handle and releases it before returning; no state is retained between
// calls and no references to the caller's buffers outlive the call.
package gdeflate

import (
	"github.com/nulijiazaizhong/gdeflate/internal/pkg/codec"
)

// StatusT is the numeric decode result.  Zero is success.
type StatusT = codec.StatusT

const (
	StatusSuccess           = codec.StatusSuccess
	StatusBadData           = codec.StatusBadData
	StatusShortOutput       = codec.StatusShortOutput
	StatusInsufficientSpace = codec.StatusInsufficientSpace
)

// Deflate decompresses one raw DEFLATE stream from src into dst.
//
// dst must be sized to the exact decompressed length: no output-length
// reporting is requested, so a stream that decodes short of dst's
// capacity returns StatusShortOutput and one that overflows returns
// StatusInsufficientSpace.  Zero-length src or dst is passed through to
// the decoder, not special-cased.
//
// A non-nil error means the decompressor handle could not be allocated
// and no decode was attempted; the status is meaningless in that case.
func Deflate(src, dst []byte) (StatusT, error) {

	d, err := codec.AllocDecompressor()
	if err != nil {
		return 0, err
	}
	defer d.Free()

	return d.Decompress(src, dst, nil), nil
}

// GDeflate decompresses a single-page GDeflate stream from src into
// dst.  The whole of src is presented to the decoder as one page; the
// page-array capability of the underlying primitive is deliberately not
// exposed here.  Sizing and error semantics match Deflate.
func GDeflate(src, dst []byte) (StatusT, error) {

	g, err := codec.AllocGDeflate()
	if err != nil {
		return 0, err
	}
	defer g.Free()

	pages := [1]codec.PageT{{Data: src}}

	return g.Decompress(pages[:], dst, nil), nil
}
