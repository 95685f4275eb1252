package gdeflate

import (
	"fmt"

	"github.com/nulijiazaizhong/gdeflate/internal/pkg/codec"
	"github.com/nulijiazaizhong/gdeflate/internal/pkg/zerr"
)

const (
	maxTries     = 3
	initMultiple = 4
)

type onceFunc func(src, dst []byte) (int, StatusT, error)

// DecompressDeflate decompresses the raw DEFLATE stream in src and
// returns the decompressed bytes.  Unlike Deflate, output length is
// reported by the decoder, so the destination need not match the
// decompressed size exactly.
// If dst is not provided as an option, will allocate sufficient space.
func DecompressDeflate(src []byte, opts ...BlockOpt) ([]byte, error) {
	return decompressBlock(src, deflateOnce, opts...)
}

// DecompressGDeflate decompresses the single-page GDeflate stream in
// src and returns the decompressed bytes.  Sizing semantics match
// DecompressDeflate.
func DecompressGDeflate(src []byte, opts ...BlockOpt) ([]byte, error) {
	return decompressBlock(src, gdeflateOnce, opts...)
}

func deflateOnce(src, dst []byte) (n int, st StatusT, err error) {
	d, err := codec.AllocDecompressor()
	if err != nil {
		return 0, 0, err
	}
	defer d.Free()

	st = d.Decompress(src, dst, &n)
	return n, st, nil
}

func gdeflateOnce(src, dst []byte) (n int, st StatusT, err error) {
	g, err := codec.AllocGDeflate()
	if err != nil {
		return 0, 0, err
	}
	defer g.Free()

	pages := [1]codec.PageT{{Data: src}}

	st = g.Decompress(pages[:], dst, &n)
	return n, st, nil
}

func decompressBlock(src []byte, once onceFunc, opts ...BlockOpt) ([]byte, error) {

	o := parseBlockOpts(opts...)

	if o.dst != nil {
		n, st, err := once(src, o.dst)
		switch {
		case err != nil:
			return nil, err
		case st == StatusInsufficientSpace:
			return nil, fmt.Errorf("%w: %s", zerr.ErrDstSize, st)
		case st != StatusSuccess:
			return nil, fmt.Errorf("%w: %s", zerr.ErrDecompress, st)
		}
		return o.dst[:n], nil
	}

	// No dst provided, allocate a buffer.
	// Since we don't know the decompressed size, we start with
	// a multiple of the src and reallocate as necessary.
	var (
		nTry    = 1
		bufSize = len(src) * initMultiple
	)

	if bufSize == 0 {
		bufSize = initMultiple
	}

	for {
		dst := make([]byte, bufSize)
		n, st, err := once(src, dst)

		switch {
		case err != nil:
			return nil, err
		case st == StatusSuccess:
			return dst[:n], nil
		case st == StatusInsufficientSpace && nTry < maxTries:
			nTry += 1
			bufSize *= 2
		default:
			return nil, fmt.Errorf("%w: %s", zerr.ErrDecompress, st)
		}
	}
}
