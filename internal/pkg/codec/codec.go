// Package codec exposes the decompression primitives of the underlying
// inflate backend: alloc/free of decompressor handles plus single-shot
// DEFLATE and page-array GDeflate decode calls.  The stream formats are
// opaque at this layer; callers pass raw byte regions and receive a
// numeric status.
package codec

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"

	"github.com/klauspost/compress/flate"
	"github.com/nulijiazaizhong/gdeflate/internal/pkg/zerr"
)

// Handles are pooled to keep repeated alloc/free cycles cheap.
// cntLive tracks the alloc/free balance; it must read zero once
// all handles are released.
var (
	poolInflater = sync.Pool{New: func() any { return newInflater() }}
	cntLive      int64
)

func CntLive() int64 {
	return atomic.LoadInt64(&cntLive)
}

// inflaterT is one resettable raw-DEFLATE decode context.
type inflaterT struct {
	src bytes.Reader
	fr  io.ReadCloser
}

func newInflater() *inflaterT {
	ctx := &inflaterT{}
	ctx.fr = flate.NewReader(&ctx.src)
	return ctx
}

func allocInflater() (*inflaterT, error) {
	ctx, ok := poolInflater.Get().(*inflaterT)
	if !ok || ctx == nil {
		return nil, zerr.ErrAlloc
	}
	if _, ok := ctx.fr.(flate.Resetter); !ok {
		return nil, zerr.ErrAlloc
	}
	atomic.AddInt64(&cntLive, 1)
	return ctx, nil
}

func freeInflater(ctx *inflaterT) {
	if ctx == nil {
		return
	}
	atomic.AddInt64(&cntLive, -1)
	ctx.src.Reset(nil)
	poolInflater.Put(ctx)
}

// decompress inflates one raw-DEFLATE stream from src into dst and
// returns the number of bytes produced.  The stream must terminate at
// or before dst capacity; overflow reports insufficient space.
func (ctx *inflaterT) decompress(src, dst []byte) (int, StatusT) {

	ctx.src.Reset(src)
	if err := ctx.fr.(flate.Resetter).Reset(&ctx.src, nil); err != nil {
		return 0, StatusBadData
	}

	var n int
	for n < len(dst) {
		m, err := ctx.fr.Read(dst[n:])
		n += m
		switch {
		case err == io.EOF:
			return n, StatusSuccess
		case err != nil:
			return n, StatusBadData
		}
	}

	// dst is full; the stream must end exactly here.
	var probe [1]byte
	for {
		m, err := ctx.fr.Read(probe[:])
		switch {
		case m > 0:
			return n, StatusInsufficientSpace
		case err == io.EOF:
			return n, StatusSuccess
		case err != nil:
			return n, StatusBadData
		}
	}
}

//---

// DecompressorT is a single-stream DEFLATE decompressor handle.
// Not safe for concurrent use; allocate one per call.
type DecompressorT struct {
	ctx *inflaterT
}

func AllocDecompressor() (*DecompressorT, error) {
	ctx, err := allocInflater()
	if err != nil {
		return nil, err
	}
	return &DecompressorT{ctx: ctx}, nil
}

// Free releases the handle.  Double free is ok.
func (d *DecompressorT) Free() {
	freeInflater(d.ctx)
	d.ctx = nil
}

// Decompress inflates src into dst.  If outLen is nil the decoded
// stream must fill dst exactly; a shorter stream reports short output.
// If outLen is non-nil the decoded byte count is stored there and any
// dst size at or above the decoded length succeeds.
func (d *DecompressorT) Decompress(src, dst []byte, outLen *int) StatusT {
	n, st := d.ctx.decompress(src, dst)
	if st != StatusSuccess {
		return st
	}
	if outLen != nil {
		*outLen = n
	} else if n != len(dst) {
		return StatusShortOutput
	}
	return StatusSuccess
}

//---

// PageT describes one compressed GDeflate page: a pointer into the
// caller's input region and its byte length.
type PageT struct {
	Data []byte
}

// GDeflateT is a GDeflate decompressor handle.  Pages decode
// independently in page order; outputs concatenate into dst.
// Not safe for concurrent use; allocate one per call.
type GDeflateT struct {
	ctx *inflaterT
}

func AllocGDeflate() (*GDeflateT, error) {
	ctx, err := allocInflater()
	if err != nil {
		return nil, err
	}
	return &GDeflateT{ctx: ctx}, nil
}

// Free releases the handle.  Double free is ok.
func (g *GDeflateT) Free() {
	freeInflater(g.ctx)
	g.ctx = nil
}

// Decompress inflates the page array into dst.  outLen semantics match
// DecompressorT.Decompress, applied to the combined output length.
func (g *GDeflateT) Decompress(pages []PageT, dst []byte, outLen *int) StatusT {

	if len(pages) == 0 {
		return StatusBadData
	}

	var off int
	for _, pg := range pages {
		n, st := g.ctx.decompress(pg.Data, dst[off:])
		if st != StatusSuccess {
			return st
		}
		off += n
	}

	if outLen != nil {
		*outLen = off
	} else if off != len(dst) {
		return StatusShortOutput
	}
	return StatusSuccess
}
